package auth

// ImportUserRow fila cruda del archivo de import, ya separada en columnas.
// Factory llega como string del archivo; el use case la parsea al enum y
// registra el rechazo como fallo de esa fila.
type ImportUserRow struct {
	Username string
	Factory  string
	Password string // opcional; en blanco se genera una
}

// RowSource produce una secuencia perezosa de filas de import. La librería de
// parsing (XLSX/CSV) queda completamente fuera del core: aquí solo entran
// filas ya tipadas.
//
// Next devuelve la siguiente fila; ok=false marca el fin de la secuencia.
// Un err con ok=true indica una fila ilegible: se registra como fallo por
// fila y el consumo continúa con la siguiente.
type RowSource interface {
	Next() (row ImportUserRow, ok bool, err error)
}

package entity

import "time"

// User representa una cuenta del sistema, ligada a una Factory.
// El par (Username, Factory) es único: el mismo username puede existir de
// forma independiente en plantas distintas.
type User struct {
	ID           int64
	Username     string // máx. 50 caracteres
	PasswordHash string // hash bcrypt, nunca en claro fuera del registro inicial
	Factory      Factory
	IsAdmin      bool
	CreatedAt    time.Time
}

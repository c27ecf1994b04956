package dto

// Response envoltura uniforme de toda la API:
// {success, data?, message, errorCode?}.
type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message"`
	ErrorCode string      `json:"errorCode,omitempty"`
}

// OK construye una respuesta exitosa.
func OK(data interface{}, message string) Response {
	if message == "" {
		message = "operación exitosa"
	}
	return Response{Success: true, Data: data, Message: message}
}

// Fail construye una respuesta de error con código estable para el cliente.
func Fail(code, message string) Response {
	return Response{Success: false, Message: message, ErrorCode: code}
}

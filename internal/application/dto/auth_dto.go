package dto

import "time"

// LoginRequest entrada para login. Factory viaja como string y se parsea al
// enum en el use case (rechazo explícito de valores desconocidos).
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Factory  string `json:"factory"`
}

// LoginResponse salida con el token JWT y los datos de sesión.
type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Factory   string    `json:"factory"`
	ExpiresAt time.Time `json:"expiresAt"`
	IsAdmin   bool      `json:"isAdmin"`
}

// RegisterRequest entrada para registro. Password es opcional: en blanco, el
// backend genera una y la devuelve una única vez en la respuesta.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Factory  string `json:"factory"`
}

// RegisterResponse salida del registro. GeneratedPassword solo viene cuando el
// backend la generó; no es recuperable después.
type RegisterResponse struct {
	Username          string `json:"username"`
	Factory           string `json:"factory"`
	GeneratedPassword string `json:"generatedPassword,omitempty"`
	IsAdmin           bool   `json:"isAdmin"`
}

// UserResponse salida de un usuario (solo campos no sensibles).
type UserResponse struct {
	Username string `json:"username"`
	Factory  string `json:"factory"`
	IsAdmin  bool   `json:"isAdmin"`
}

// MeResponse identidad del llamador, extraída del token.
type MeResponse struct {
	Username string `json:"username"`
	Factory  string `json:"factory"`
}

// ImportUserResult resultado por fila del import masivo.
type ImportUserResult struct {
	Username          string `json:"username"`
	Factory           string `json:"factory"`
	Success           bool   `json:"success"`
	GeneratedPassword string `json:"generatedPassword,omitempty"`
	Error             string `json:"error,omitempty"`
}

// ImportUsersResponse resultados del import, una entrada por fila procesada.
type ImportUsersResponse struct {
	Results []ImportUserResult `json:"results"`
}

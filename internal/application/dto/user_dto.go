package dto

// LoginRequest credenciales del formulario de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse sesión emitida tras un login correcto.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// LoginState resultado de un intento de login para el formulario.
// Si Message no está vacío el intento fue rechazado y Session es nil.
type LoginState struct {
	Message string         `json:"message,omitempty"`
	Session *LoginResponse `json:"-"`
}

package auth

// ErrorType clasifica las fallas de la capa de autenticación.
type ErrorType string

const (
	// CredentialsSignin las credenciales fueron rechazadas.
	CredentialsSignin ErrorType = "CredentialsSignin"
	// CallbackRouteError falla de infraestructura dentro del flujo de login.
	CallbackRouteError ErrorType = "CallbackRouteError"
)

// AuthError error conocido de la capa de auth. Err es la causa y nunca se muestra al usuario.
type AuthError struct {
	Type ErrorType
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return string(e.Type)
	}
	return string(e.Type) + ": " + e.Err.Error()
}

func (e *AuthError) Unwrap() error { return e.Err }

// Package auth verifica credenciales de email/password y emite la sesión del dashboard.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/internal/domain"
	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
	"github.com/jhoicas/invoice-dashboard/pkg/jwt"
	"github.com/jhoicas/invoice-dashboard/pkg/logger"
)

// Mensajes que ve el usuario en el formulario de login.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWentWrong = "Something went wrong."
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación por credenciales.
type AuthUseCase struct {
	userRepo repository.UserRepository
	validate *validator.Validate
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		validate: validator.New(),
		jwtCfg:   jwtCfg,
		log:      log.Component("auth"),
	}
}

// Authorize devuelve el usuario si las credenciales son válidas.
//
// Credenciales mal formadas, email desconocido o password incorrecto devuelven
// domain.ErrInvalidCredentials. Una falla al buscar el usuario o un hash almacenado
// corrupto devuelven *AuthError de tipo CallbackRouteError.
func (uc *AuthUseCase) Authorize(ctx context.Context, in dto.LoginRequest) (*entity.User, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, &AuthError{Type: CallbackRouteError, Err: fmt.Errorf("failed to fetch user: %w", err)}
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password))
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return nil, domain.ErrInvalidCredentials
	default:
		return nil, &AuthError{Type: CallbackRouteError, Err: fmt.Errorf("stored password hash: %w", err)}
	}
}

// Authenticate procesa un envío del formulario de login. prevState no se usa: cada intento es independiente.
//
// Un rechazo o una falla conocida de la capa de auth se devuelven como LoginState con mensaje.
// Cualquier otro error (ej. no se pudo firmar la sesión) se devuelve tal cual.
func (uc *AuthUseCase) Authenticate(ctx context.Context, _ string, in dto.LoginRequest) (dto.LoginState, error) {
	session, err := uc.signIn(ctx, in)
	if err == nil {
		return dto.LoginState{Session: session}, nil
	}
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		return dto.LoginState{}, err
	}
	switch authErr.Type {
	case CredentialsSignin:
		return dto.LoginState{Message: MsgInvalidCredentials}, nil
	default:
		uc.log.Error().Err(authErr.Err).Str("type", string(authErr.Type)).Msg("login")
		return dto.LoginState{Message: MsgSomethingWentWrong}, nil
	}
}

func (uc *AuthUseCase) signIn(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.Authorize(ctx, in)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return nil, &AuthError{Type: CredentialsSignin, Err: err}
	}
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-dashboard/internal/application/auth"
	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/pkg/logger"
)

// SessionCookie opciones de la cookie de sesión.
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie SessionCookie
	log    *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie SessionCookie, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie, log: log}
}

// LoginForm godoc
// @Summary      Formulario de login
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.LoginState
// @Success      303  "ya hay sesión: redirige a /dashboard"
// @Router       /login [get]
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return c.JSON(dto.LoginState{})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        email     formData  string  true  "email"
// @Param        password  formData  string  true  "password (mín. 6)"
// @Success      303  "sesión creada: redirige a /dashboard"
// @Failure      401  {object}  dto.LoginState
// @Failure      500  {object}  dto.LoginState
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	state, err := h.uc.Authenticate(c.UserContext(), c.FormValue("prevState"), in)
	if err != nil {
		h.log.Error().Err(err).Msg("login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	switch state.Message {
	case "":
	case auth.MsgInvalidCredentials:
		return c.Status(fiber.StatusUnauthorized).JSON(state)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(state)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    state.Session.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookie.TTL),
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect(safeRedirect(c.FormValue("redirectTo")), fiber.StatusSeeOther)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      303  "redirige a /login"
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect(LoginPath, fiber.StatusSeeOther)
}

// safeRedirect solo acepta destinos dentro del dashboard.
func safeRedirect(to string) string {
	if to == DashboardPath || strings.HasPrefix(to, DashboardPath+"/") {
		return to
	}
	return DashboardPath
}

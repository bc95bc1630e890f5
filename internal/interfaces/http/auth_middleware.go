package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-dashboard/pkg/jwt"
)

// Locals keys para los datos de la sesión en Fiber.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
)

// Rutas de navegación de la sesión.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// SessionMiddleware exige una sesión válida (cookie de sesión o Bearer Token JWT).
// Sin sesión redirige a /login con 303; con sesión carga UserID y email en c.Locals.
func SessionMiddleware(jwtSecret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := sessionClaims(c, jwtSecret, cookieName)
		if claims == nil {
			return c.Redirect(LoginPath, fiber.StatusSeeOther)
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserEmail, claims.Email)
		return c.Next()
	}
}

// RedirectIfAuthenticated manda a /dashboard a quien ya tiene sesión (ej. al visitar /login).
func RedirectIfAuthenticated(jwtSecret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sessionClaims(c, jwtSecret, cookieName) != nil {
			return c.Redirect(DashboardPath, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// sessionClaims devuelve los claims del token de la petición o nil si no hay uno válido.
// La cookie tiene prioridad sobre el header Authorization.
func sessionClaims(c *fiber.Ctx, jwtSecret, cookieName string) *jwt.Claims {
	token := strings.TrimSpace(c.Cookies(cookieName))
	if token == "" {
		token = bearerToken(c.Get(fiber.HeaderAuthorization))
	}
	if token == "" {
		return nil
	}
	claims, err := jwt.Parse(jwtSecret, token)
	if err != nil {
		return nil
	}
	return claims
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUserID devuelve el UserID del contexto (después del middleware de sesión).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUserEmail devuelve el email del usuario de la sesión.
func GetUserEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserEmail).(string)
	return s
}

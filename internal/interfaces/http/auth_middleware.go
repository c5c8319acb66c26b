package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supplier-api/internal/application/dto"
	"github.com/jhoicas/supplier-api/internal/domain"
	"github.com/jhoicas/supplier-api/pkg/jwt"
)

// Locals keys para Username y Role en Fiber.
const (
	LocalUsername = "username"
	LocalRole     = "role"
)

// rejectAuth traduce los sentinels de dominio a la respuesta HTTP de rechazo:
// domain.ErrForbidden -> 403; cualquier otro (domain.ErrUnauthorized) -> 401.
// Así "sin token" y "rol insuficiente" quedan como resultados distintos.
func rejectAuth(c *fiber.Ctx, cause error, code, message string) error {
	status := fiber.StatusUnauthorized
	if errors.Is(cause, domain.ErrForbidden) {
		status = fiber.StatusForbidden
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// AuthMiddleware valida el Bearer Token JWT y extrae Username y Role a c.Locals.
// Rechaza con 401 antes de cualquier chequeo de rol: sin token válido no hay autorización.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return rejectAuth(c, domain.ErrUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return rejectAuth(c, domain.ErrUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return rejectAuth(c, domain.ErrUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		username, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return rejectAuth(c, domain.ErrUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole exige que el claim de rol del token sea uno de los permitidos.
// Debe usarse DESPUÉS de AuthMiddleware. Token sin rol -> 401; rol insuficiente -> 403.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return rejectAuth(c, domain.ErrUnauthorized, "MISSING_ROLE", "el token no incluye claim de rol")
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return rejectAuth(c, domain.ErrForbidden, "FORBIDDEN", "rol insuficiente para esta operación")
	}
}

// GetUsername devuelve el Username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el Role del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

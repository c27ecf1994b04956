package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mes-api/internal/application/dto"
	"github.com/tu-usuario/mes-api/internal/domain/entity"
	"github.com/tu-usuario/mes-api/pkg/jwt"
)

// Locals keys para Username y Factory en Fiber.
const (
	LocalUsername = "username"
	LocalFactory  = "factory"
)

// AuthConfig parámetros de validación del bearer token.
type AuthConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// AuthMiddleware valida el Bearer Token JWT (firma, expiración, issuer,
// audience, sin tolerancia de reloj) y deja Username y Factory en c.Locals.
// El claim Factory se re-parsea al enum de dominio: un valor desconocido
// invalida el token, nunca se asume un default.
func AuthMiddleware(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("MISSING_TOKEN", "Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("INVALID_TOKEN", "formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("MISSING_TOKEN", "token vacío"))
		}
		username, factoryClaim, err := jwt.Parse(cfg.Secret, cfg.Issuer, cfg.Audience, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("INVALID_TOKEN", "token inválido o expirado"))
		}
		factory, err := entity.ParseFactory(factoryClaim)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("INVALID_TOKEN", "token inválido o expirado"))
		}
		c.Locals(LocalUsername, username)
		c.Locals(LocalFactory, factory)
		return c.Next()
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

// GetFactory devuelve la Factory del contexto; ok=false si el middleware no corrió.
func GetFactory(c *fiber.Ctx) (entity.Factory, bool) {
	v := c.Locals(LocalFactory)
	if v == nil {
		return "", false
	}
	f, ok := v.(entity.Factory)
	return f, ok
}

package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mes-api/internal/application/dto"
	"github.com/tu-usuario/mes-api/internal/domain/entity"
)

// userGetter es el contrato mínimo que necesita el middleware para verificar
// el flag de admin. Lo implementa *auth.AuthUseCase; la interfaz evita el
// acople directo.
type userGetter interface {
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
}

// RequireAdmin devuelve un middleware Fiber que re-consulta el usuario del
// token y exige IsAdmin. Debe usarse DESPUÉS de AuthMiddleware (necesita
// LocalUsername).
//
// Comportamiento:
//   - 401 → no hay username en el contexto (AuthMiddleware no corrió).
//   - 403 → usuario inexistente o sin flag de admin.
//   - 500 → fallo de infraestructura al consultar la DB.
//
// La búsqueda es solo por username, sin fábrica, igual que el sistema
// original: si un username se repite entre plantas aplica la primera
// coincidencia.
func RequireAdmin(users userGetter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := GetUsername(c)
		if username == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("UNAUTHORIZED", "username no encontrado en el token"))
		}
		user, err := users.GetUserByUsername(c.Context(), username)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "no se pudo verificar el rol, intente más tarde"))
		}
		if user == nil || !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("FORBIDDEN", "se requiere rol de administrador"))
		}
		return c.Next()
	}
}

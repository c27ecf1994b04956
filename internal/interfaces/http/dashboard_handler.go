package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	appdashboard "github.com/tu-usuario/mes-api/internal/application/dashboard"
	"github.com/tu-usuario/mes-api/internal/application/dto"
)

// DashboardHandler maneja el resumen de la página inicial.
type DashboardHandler struct {
	uc *appdashboard.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appdashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los conteos globales de usuarios y entregas.
// GET /api/dashboard/summary
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("dashboard summary")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "error del sistema, intente más tarde"))
	}
	return c.JSON(dto.OK(out, "resumen obtenido"))
}

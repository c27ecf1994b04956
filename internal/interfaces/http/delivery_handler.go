package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	appdelivery "github.com/tu-usuario/mes-api/internal/application/delivery"
	"github.com/tu-usuario/mes-api/internal/application/dto"
	"github.com/tu-usuario/mes-api/internal/domain"
	"github.com/tu-usuario/mes-api/internal/domain/entity"
)

// DeliveryHandler maneja el CRUD de la tabla de entregas.
type DeliveryHandler struct {
	uc *appdelivery.DeliveryUseCase
}

// NewDeliveryHandler construye el handler de entregas.
func NewDeliveryHandler(uc *appdelivery.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// List devuelve las entregas ordenadas por ETA a planta descendente.
// Sin query ?factory= se usa la planta del token del llamador.
// GET /api/delivery?factory=
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	factory, err := h.scope(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error()))
	}
	out, err := h.uc.List(c.Context(), factory)
	if err != nil {
		log.Error().Err(err).Msg("list deliveries")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "error del sistema, intente más tarde"))
	}
	return c.JSON(dto.OK(out, "entregas obtenidas"))
}

// GetByID devuelve una entrega por id.
// GET /api/delivery/:id
func (h *DeliveryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "id inválido"))
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "no se encontró el registro de entrega"))
		}
		log.Error().Err(err).Int64("id", id).Msg("get delivery")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "error del sistema, intente más tarde"))
	}
	return c.JSON(dto.OK(out, ""))
}

// Create crea una entrega. La planta se estampa desde el token del llamador;
// cualquier factory del body se ignora.
// POST /api/delivery
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	factory, ok := GetFactory(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("UNAUTHORIZED", "planta no encontrada en el token"))
	}
	out, err := h.uc.Create(c.Context(), in, factory)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error()))
		}
		log.Error().Err(err).Msg("create delivery")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "error del sistema, intente más tarde"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out, "entrega creada"))
}

// Update reemplaza los campos mutables de una entrega; la planta nunca cambia.
// PUT /api/delivery/:id
func (h *DeliveryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "id inválido"))
	}
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "no se encontró el registro de entrega"))
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error()))
		}
		log.Error().Err(err).Int64("id", id).Msg("update delivery")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "error del sistema, intente más tarde"))
	}
	return c.JSON(dto.OK(out, "entrega actualizada"))
}

// Delete elimina una entrega. Un id inexistente responde 404, no error de sistema.
// DELETE /api/delivery/:id
func (h *DeliveryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "id inválido"))
	}
	deleted, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("delete delivery")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "error del sistema, intente más tarde"))
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "no se encontró el registro de entrega"))
	}
	return c.JSON(dto.OK(true, "entrega eliminada"))
}

// ExportPDF descarga la tabla actual como hoja imprimible.
// GET /api/delivery/export/pdf?factory=
func (h *DeliveryHandler) ExportPDF(c *fiber.Ctx) error {
	factory, err := h.scope(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error()))
	}
	data, err := h.uc.ExportPDF(c.Context(), factory)
	if err != nil {
		log.Error().Err(err).Msg("export deliveries pdf")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "error del sistema, intente más tarde"))
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="delivery-overview.pdf"`)
	return c.Send(data)
}

// scope resuelve el filtro de planta: query ?factory= si viene (con rechazo
// explícito de valores desconocidos), si no la planta del token.
func (h *DeliveryHandler) scope(c *fiber.Ctx) (*entity.Factory, error) {
	if q := c.Query("factory"); q != "" {
		f, err := entity.ParseFactory(q)
		if err != nil {
			return nil, err
		}
		return &f, nil
	}
	if f, ok := GetFactory(c); ok {
		return &f, nil
	}
	return nil, nil
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zentraqms/zentra-api/internal/application/dto"
	"github.com/zentraqms/zentra-api/internal/application/usecase"
	"github.com/zentraqms/zentra-api/internal/domain"
)

// CargoHandler maneja las peticiones HTTP para los cargos del organigrama.
type CargoHandler struct {
	uc *usecase.CargoUseCase
}

// NewCargoHandler construye el handler inyectando el caso de uso.
func NewCargoHandler(uc *usecase.CargoUseCase) *CargoHandler {
	return &CargoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cargo
// @Tags         cargos
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la organización"
// @Param        body  body  dto.CreateCargoRequest  true  "Datos del cargo"
// @Success      201   {object}  dto.CargoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/organizations/{id}/cargos [post]
func (h *CargoHandler) Create(c *fiber.Ctx) error {
	orgID := c.Params("id")
	var in dto.CreateCargoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Nivel == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y nivel son requeridos"})
	}
	out, err := h.uc.Create(orgID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nivel o cargo superior inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cargos de una organización
// @Tags         cargos
// @Produce      json
// @Param        id      path   string  true   "ID de la organización"
// @Param        limit   query  int     false  "Límite"   default(50)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.CargoListResponse
// @Router       /api/organizations/{id}/cargos [get]
func (h *CargoHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(c.Params("id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cargo por ID
// @Tags         cargos
// @Produce      json
// @Param        id   path  string  true  "ID del cargo"
// @Success      200  {object}  dto.CargoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cargos/{id} [get]
func (h *CargoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cargo no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cargo
// @Tags         cargos
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del cargo"
// @Param        body  body  dto.UpdateCargoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CargoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cargos/{id} [put]
func (h *CargoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCargoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cargo no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nivel o cargo superior inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cargo no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cargo
// @Tags         cargos
// @Param        id  path  string  true  "ID del cargo"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cargos/{id} [delete]
func (h *CargoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cargo no encontrado"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_SUBORDINATES", Message: "el cargo tiene subordinados; reasígnelos antes de eliminar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

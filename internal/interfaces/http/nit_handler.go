package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zentraqms/zentra-api/internal/application/dto"
	"github.com/zentraqms/zentra-api/pkg/nit"
)

// NITHandler expone la validación de NIT como servicio. No toca base de
// datos: el motor es puro y el endpoint es público.
type NITHandler struct{}

// NewNITHandler construye el handler.
func NewNITHandler() *NITHandler { return &NITHandler{} }

// Validate godoc
// @Summary      Validar NIT con dígito de verificación
// @Tags         nit
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateNITRequest  true  "nit y dígito (se aceptan puntos y guiones)"
// @Success      200   {object}  dto.ValidateNITResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/nit/validate [post]
func (h *NITHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateNITRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NIT == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nit es requerido"})
	}
	digits := nit.Normalize(in.NIT)
	dv := nit.Normalize(in.Digito)
	res := nit.Validate(digits, dv)
	return c.JSON(dto.ValidateNITResponse{
		IsValid:         res.IsValid,
		NIT:             digits,
		NITFormateado:   nit.Format(digits),
		DigitoRecibido:  dv,
		DigitoCalculado: res.ComputedDigit,
	})
}

// ComputeDigit godoc
// @Summary      Calcular el dígito de verificación de un NIT
// @Tags         nit
// @Produce      json
// @Param        nit  path  string  true  "NIT (se aceptan puntos y guiones)"
// @Success      200  {object}  dto.ComputeDigitResponse
// @Router       /api/nit/{nit}/digito [get]
func (h *NITHandler) ComputeDigit(c *fiber.Ctx) error {
	digits := nit.Normalize(c.Params("nit"))
	dv := nit.ComputeCheckDigit(digits)
	return c.JSON(dto.ComputeDigitResponse{
		NIT:             digits,
		NITFormateado:   nit.Format(digits),
		DigitoCalculado: dv,
		Calculable:      dv != "",
	})
}

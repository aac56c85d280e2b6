package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zentraqms/zentra-api/internal/application/dto"
	"github.com/zentraqms/zentra-api/internal/application/usecase"
	"github.com/zentraqms/zentra-api/internal/domain"
)

// OnboardingHandler maneja el asistente de registro inicial.
type OnboardingHandler struct {
	uc *usecase.OnboardingUseCase
}

// NewOnboardingHandler construye el handler.
func NewOnboardingHandler(uc *usecase.OnboardingUseCase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar organización con su sede principal
// @Description  Crea la organización y su sede principal en una sola transacción.
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardingRequest  true  "Organización + sede principal"
// @Success      201   {object}  dto.OnboardingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/onboarding [post]
func (h *OnboardingHandler) Register(c *fiber.Ctx) error {
	var in dto.OnboardingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Organization.RazonSocial == "" || in.Organization.NIT == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "organization.razon_social y organization.nit son requeridos"})
	}
	if in.SedePrincipal.Nombre == "" || in.SedePrincipal.CodigoHabilitacion == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sede_principal.nombre y sede_principal.codigo_habilitacion son requeridos"})
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidNIT:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_NIT", Message: "el NIT o su dígito de verificación no son válidos"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CODIGO", Message: "código de habilitación inválido o inconsistente con depto/municipio"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "organización con ese NIT ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

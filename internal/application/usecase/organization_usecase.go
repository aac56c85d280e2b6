package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/zentraqms/zentra-api/internal/application/dto"
	"github.com/zentraqms/zentra-api/internal/domain"
	"github.com/zentraqms/zentra-api/internal/domain/entity"
	"github.com/zentraqms/zentra-api/internal/domain/repository"
	"github.com/zentraqms/zentra-api/pkg/nit"
)

// OrganizationUseCase aplica reglas de negocio para organizaciones (casos de uso).
type OrganizationUseCase struct {
	repo      repository.OrganizationRepository
	validator *nit.Validator
}

// NewOrganizationUseCase construye el caso de uso con el puerto de persistencia.
// Para el registro formal de organizaciones se usa el rango estricto 9-10: un
// NIT colombiano asignado tiene 9 dígitos (o 10 en cédulas usadas como NIT);
// el rango permisivo 8-15 del motor queda para captura interactiva e imports.
func NewOrganizationUseCase(repo repository.OrganizationRepository) *OrganizationUseCase {
	return &OrganizationUseCase{
		repo:      repo,
		validator: nit.NewValidator(nit.WithLengthRange(9, 10)),
	}
}

// Create registra una organización. Normaliza el NIT, exige dígito de
// verificación correcto (domain.ErrInvalidNIT si no) y rechaza NIT duplicado.
func (uc *OrganizationUseCase) Create(in dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	digits := nit.Normalize(in.NIT)
	dv := nit.Normalize(in.DigitoVerificacion)
	if res := uc.validator.Validate(digits, dv); !res.IsValid {
		return nil, domain.ErrInvalidNIT
	}
	existing, _ := uc.repo.GetByNIT(digits)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	org := &entity.Organization{
		ID:                 uuid.New().String(),
		RazonSocial:        in.RazonSocial,
		NIT:                digits,
		DigitoVerificacion: dv,
		Naturaleza:         in.Naturaleza,
		Direccion:          in.Direccion,
		Telefono:           in.Telefono,
		Email:              in.Email,
		Estado:             "active",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// GetByID obtiene una organización por ID.
func (uc *OrganizationUseCase) GetByID(id string) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, nil
	}
	return toOrganizationResponse(org), nil
}

// GetByNIT obtiene una organización por NIT (acepta formato con puntos).
func (uc *OrganizationUseCase) GetByNIT(rawNIT string) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetByNIT(nit.Normalize(rawNIT))
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, nil
	}
	return toOrganizationResponse(org), nil
}

// Update actualiza una organización. El NIT no es editable: cambiar de NIT es
// un registro nuevo, no una actualización.
func (uc *OrganizationUseCase) Update(id string, in dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, nil
	}
	if in.RazonSocial != nil {
		org.RazonSocial = *in.RazonSocial
	}
	if in.Naturaleza != nil {
		org.Naturaleza = *in.Naturaleza
	}
	if in.Direccion != nil {
		org.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		org.Telefono = *in.Telefono
	}
	if in.Email != nil {
		org.Email = *in.Email
	}
	if in.Estado != nil {
		org.Estado = *in.Estado
	}
	org.UpdatedAt = time.Now()
	if err := uc.repo.Update(org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// List lista organizaciones con paginación.
func (uc *OrganizationUseCase) List(limit, offset int) (*dto.OrganizationListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrganizationResponse, 0, len(list))
	for _, org := range list {
		items = append(items, *toOrganizationResponse(org))
	}
	return &dto.OrganizationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una organización por ID.
func (uc *OrganizationUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toOrganizationResponse(o *entity.Organization) *dto.OrganizationResponse {
	if o == nil {
		return nil
	}
	formatted := nit.Format(o.NIT)
	if o.DigitoVerificacion != "" {
		formatted += "-" + o.DigitoVerificacion
	}
	return &dto.OrganizationResponse{
		ID:                 o.ID,
		RazonSocial:        o.RazonSocial,
		NIT:                o.NIT,
		DigitoVerificacion: o.DigitoVerificacion,
		NITFormateado:      formatted,
		Naturaleza:         o.Naturaleza,
		Direccion:          o.Direccion,
		Telefono:           o.Telefono,
		Email:              o.Email,
		Estado:             o.Estado,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/zentraqms/zentra-api/internal/application/dto"
	"github.com/zentraqms/zentra-api/internal/domain"
	"github.com/zentraqms/zentra-api/internal/domain/entity"
	"github.com/zentraqms/zentra-api/internal/domain/repository"
)

// SedeUseCase casos de uso CRUD para sedes de prestación.
type SedeUseCase struct {
	repo    repository.SedeRepository
	orgRepo repository.OrganizationRepository
}

// NewSedeUseCase construye el caso de uso.
func NewSedeUseCase(repo repository.SedeRepository, orgRepo repository.OrganizationRepository) *SedeUseCase {
	return &SedeUseCase{repo: repo, orgRepo: orgRepo}
}

// Create crea una sede para la organización. Valida la forma del código de
// habilitación (12 dígitos, prefijo depto+municipio coherente) y rechaza
// códigos duplicados a nivel nacional.
func (uc *SedeUseCase) Create(organizationID string, in dto.CreateSedeRequest) (*dto.SedeResponse, error) {
	org, err := uc.orgRepo.GetByID(organizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	if err := validarCodigoHabilitacion(in.CodigoHabilitacion, in.Departamento, in.Municipio); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByCodigoHabilitacion(in.CodigoHabilitacion)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	sede := &entity.Sede{
		ID:                 uuid.New().String(),
		OrganizationID:     organizationID,
		CodigoHabilitacion: in.CodigoHabilitacion,
		Nombre:             in.Nombre,
		Departamento:       in.Departamento,
		Municipio:          in.Municipio,
		Direccion:          in.Direccion,
		Telefono:           in.Telefono,
		EsPrincipal:        in.EsPrincipal,
		Estado:             "active",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(sede); err != nil {
		return nil, err
	}
	return toSedeResponse(sede), nil
}

// GetByID obtiene una sede por ID.
func (uc *SedeUseCase) GetByID(id string) (*dto.SedeResponse, error) {
	sede, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, nil
	}
	return toSedeResponse(sede), nil
}

// Update actualiza una sede. El código de habilitación no es editable.
func (uc *SedeUseCase) Update(id string, in dto.UpdateSedeRequest) (*dto.SedeResponse, error) {
	sede, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		sede.Nombre = *in.Nombre
	}
	if in.Direccion != nil {
		sede.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		sede.Telefono = *in.Telefono
	}
	if in.EsPrincipal != nil {
		sede.EsPrincipal = *in.EsPrincipal
	}
	if in.Estado != nil {
		sede.Estado = *in.Estado
	}
	sede.UpdatedAt = time.Now()
	if err := uc.repo.Update(sede); err != nil {
		return nil, err
	}
	return toSedeResponse(sede), nil
}

// List lista sedes por organización con paginación.
func (uc *SedeUseCase) List(organizationID string, limit, offset int) (*dto.SedeListResponse, error) {
	list, err := uc.repo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SedeResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSedeResponse(s))
	}
	return &dto.SedeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una sede por ID.
func (uc *SedeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// validarCodigoHabilitacion verifica que el código tenga 12 dígitos y que su
// prefijo coincida con los códigos DANE de departamento (2) y municipio (3).
func validarCodigoHabilitacion(codigo, departamento, municipio string) error {
	if len(codigo) != entity.CodigoHabilitacionLen {
		return domain.ErrInvalidInput
	}
	for i := 0; i < len(codigo); i++ {
		if codigo[i] < '0' || codigo[i] > '9' {
			return domain.ErrInvalidInput
		}
	}
	if codigo[:2] != departamento || codigo[2:5] != municipio {
		return domain.ErrInvalidInput
	}
	return nil
}

func toSedeResponse(s *entity.Sede) *dto.SedeResponse {
	if s == nil {
		return nil
	}
	return &dto.SedeResponse{
		ID:                 s.ID,
		OrganizationID:     s.OrganizationID,
		CodigoHabilitacion: s.CodigoHabilitacion,
		Nombre:             s.Nombre,
		Departamento:       s.Departamento,
		Municipio:          s.Municipio,
		Direccion:          s.Direccion,
		Telefono:           s.Telefono,
		EsPrincipal:        s.EsPrincipal,
		Estado:             s.Estado,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/zentraqms/zentra-api/internal/application/dto"
	"github.com/zentraqms/zentra-api/internal/domain"
	"github.com/zentraqms/zentra-api/internal/domain/entity"
	"github.com/zentraqms/zentra-api/internal/domain/repository"
)

// CargoUseCase casos de uso CRUD para cargos del organigrama.
type CargoUseCase struct {
	repo repository.CargoRepository
}

// NewCargoUseCase construye el caso de uso.
func NewCargoUseCase(repo repository.CargoRepository) *CargoUseCase {
	return &CargoUseCase{repo: repo}
}

// Create crea un cargo. Si se indica cargo superior, debe existir y pertenecer
// a la misma organización (la jerarquía no cruza organizaciones).
func (uc *CargoUseCase) Create(organizationID string, in dto.CreateCargoRequest) (*dto.CargoResponse, error) {
	if !entity.ValidCargoLevels[in.Nivel] {
		return nil, domain.ErrInvalidInput
	}
	if in.CargoSuperiorID != nil {
		superior, err := uc.repo.GetByID(*in.CargoSuperiorID)
		if err != nil {
			return nil, err
		}
		if superior == nil || superior.OrganizationID != organizationID {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	cargo := &entity.Cargo{
		ID:               uuid.New().String(),
		OrganizationID:   organizationID,
		Nombre:           in.Nombre,
		Nivel:            in.Nivel,
		CargoSuperiorID:  in.CargoSuperiorID,
		AsignacionBasica: in.AsignacionBasica,
		Estado:           "active",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(cargo); err != nil {
		return nil, err
	}
	return toCargoResponse(cargo), nil
}

// GetByID obtiene un cargo por ID.
func (uc *CargoUseCase) GetByID(id string) (*dto.CargoResponse, error) {
	cargo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cargo == nil {
		return nil, nil
	}
	return toCargoResponse(cargo), nil
}

// Update actualiza un cargo. Un cargo no puede ser su propio superior.
func (uc *CargoUseCase) Update(id string, in dto.UpdateCargoRequest) (*dto.CargoResponse, error) {
	cargo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cargo == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		cargo.Nombre = *in.Nombre
	}
	if in.Nivel != nil {
		if !entity.ValidCargoLevels[*in.Nivel] {
			return nil, domain.ErrInvalidInput
		}
		cargo.Nivel = *in.Nivel
	}
	if in.CargoSuperiorID != nil {
		if *in.CargoSuperiorID == cargo.ID {
			return nil, domain.ErrInvalidInput
		}
		superior, err := uc.repo.GetByID(*in.CargoSuperiorID)
		if err != nil {
			return nil, err
		}
		if superior == nil || superior.OrganizationID != cargo.OrganizationID {
			return nil, domain.ErrInvalidInput
		}
		cargo.CargoSuperiorID = in.CargoSuperiorID
	}
	if in.AsignacionBasica != nil {
		cargo.AsignacionBasica = *in.AsignacionBasica
	}
	if in.Estado != nil {
		cargo.Estado = *in.Estado
	}
	cargo.UpdatedAt = time.Now()
	if err := uc.repo.Update(cargo); err != nil {
		return nil, err
	}
	return toCargoResponse(cargo), nil
}

// List lista cargos por organización con paginación.
func (uc *CargoUseCase) List(organizationID string, limit, offset int) (*dto.CargoListResponse, error) {
	list, err := uc.repo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CargoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCargoResponse(c))
	}
	return &dto.CargoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un cargo. Devuelve domain.ErrConflict si otros cargos lo
// tienen como superior: primero hay que reubicar a los subordinados.
func (uc *CargoUseCase) Delete(id string) error {
	has, err := uc.repo.HasSubordinates(id)
	if err != nil {
		return err
	}
	if has {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toCargoResponse(c *entity.Cargo) *dto.CargoResponse {
	if c == nil {
		return nil
	}
	return &dto.CargoResponse{
		ID:               c.ID,
		OrganizationID:   c.OrganizationID,
		Nombre:           c.Nombre,
		Nivel:            c.Nivel,
		CargoSuperiorID:  c.CargoSuperiorID,
		AsignacionBasica: c.AsignacionBasica,
		Estado:           c.Estado,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

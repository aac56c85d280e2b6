package repository

import "github.com/zentraqms/zentra-api/internal/domain/entity"

// SedeRepository define el puerto de persistencia para Sede (DIP).
type SedeRepository interface {
	Create(sede *entity.Sede) error
	GetByID(id string) (*entity.Sede, error)
	GetByCodigoHabilitacion(codigo string) (*entity.Sede, error)
	Update(sede *entity.Sede) error
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Sede, error)
	Delete(id string) error
}

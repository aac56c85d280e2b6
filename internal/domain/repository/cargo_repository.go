package repository

import "github.com/zentraqms/zentra-api/internal/domain/entity"

// CargoRepository define el puerto de persistencia para Cargo (DIP).
type CargoRepository interface {
	Create(cargo *entity.Cargo) error
	GetByID(id string) (*entity.Cargo, error)
	Update(cargo *entity.Cargo) error
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Cargo, error)
	// HasSubordinates informa si algún cargo tiene a este como superior.
	HasSubordinates(id string) (bool, error)
	Delete(id string) error
}

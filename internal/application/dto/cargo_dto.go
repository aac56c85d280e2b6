package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCargoRequest entrada para crear un cargo del organigrama.
type CreateCargoRequest struct {
	Nombre           string          `json:"nombre" validate:"required,min=1,max=200"`
	Nivel            string          `json:"nivel" validate:"required,oneof=directivo profesional tecnico asistencial"`
	CargoSuperiorID  *string         `json:"cargo_superior_id" validate:"omitempty,uuid"`
	AsignacionBasica decimal.Decimal `json:"asignacion_basica"`
}

// UpdateCargoRequest entrada para actualizar un cargo (campos opcionales).
type UpdateCargoRequest struct {
	Nombre           *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Nivel            *string          `json:"nivel" validate:"omitempty,oneof=directivo profesional tecnico asistencial"`
	CargoSuperiorID  *string          `json:"cargo_superior_id" validate:"omitempty,uuid"`
	AsignacionBasica *decimal.Decimal `json:"asignacion_basica"`
	Estado           *string          `json:"estado" validate:"omitempty,oneof=active inactive"`
}

// CargoResponse salida de un cargo.
type CargoResponse struct {
	ID               string          `json:"id"`
	OrganizationID   string          `json:"organization_id"`
	Nombre           string          `json:"nombre"`
	Nivel            string          `json:"nivel"`
	CargoSuperiorID  *string         `json:"cargo_superior_id,omitempty"`
	AsignacionBasica decimal.Decimal `json:"asignacion_basica"`
	Estado           string          `json:"estado"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CargoListResponse lista paginada de cargos.
type CargoListResponse struct {
	Items []CargoResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

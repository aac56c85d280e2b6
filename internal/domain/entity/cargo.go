package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles jerárquicos válidos para Cargo.
const (
	NivelDirectivo   = "directivo"
	NivelProfesional = "profesional"
	NivelTecnico     = "tecnico"
	NivelAsistencial = "asistencial"
)

// ValidCargoLevels niveles aceptados al crear o actualizar un cargo.
var ValidCargoLevels = map[string]bool{
	NivelDirectivo:   true,
	NivelProfesional: true,
	NivelTecnico:     true,
	NivelAsistencial: true,
}

// Cargo representa un cargo del organigrama de una organización.
// CargoSuperiorID arma la jerarquía; nil para cargos raíz (gerencia).
type Cargo struct {
	ID               string
	OrganizationID   string
	Nombre           string
	Nivel            string  // ver constantes Nivel*
	CargoSuperiorID  *string // nil = cargo raíz
	AsignacionBasica decimal.Decimal // salario base mensual (NUMERIC en DB)
	Estado           string  // active, inactive
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

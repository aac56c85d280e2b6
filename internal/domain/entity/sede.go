package entity

import "time"

// Sede representa una sede de prestación de servicios de una organización.
// El código de habilitación REPS identifica la sede a nivel nacional:
// departamento (2) + municipio (3) + secuencia del prestador (5) + sede (2).
type Sede struct {
	ID                 string
	OrganizationID     string
	CodigoHabilitacion string // 12 dígitos
	Nombre             string
	Departamento       string // código DANE, 2 dígitos
	Municipio          string // código DANE, 3 dígitos
	Direccion          string
	Telefono           string
	EsPrincipal        bool
	Estado             string // active, inactive
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CodigoHabilitacionLen longitud exacta del código de habilitación de sede.
const CodigoHabilitacionLen = 12

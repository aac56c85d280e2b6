package entity

import "time"

// RepsRecord representa una fila del Registro Especial de Prestadores de
// Servicios de Salud (REPS) importada desde el export oficial. Se identifica
// por el código de habilitación del prestador (sin sufijo de sede).
type RepsRecord struct {
	ID                 string
	CodigoHabilitacion string // 10 dígitos: depto(2) + municipio(3) + secuencia(5)
	NIT                string // solo dígitos
	DigitoVerificacion string
	RazonSocial        string
	TipoPrestador      string // IPS, profesional independiente, transporte especial, objeto social diferente
	Departamento       string // nombre normalizado (sin tildes, minúsculas para matching)
	Municipio          string
	Naturaleza         string // publica, privada, mixta
	Email              string
	ImportedAt         time.Time
	UpdatedAt          time.Time
}

// CodigoPrestadorLen longitud del código de habilitación del prestador (sin sede).
const CodigoPrestadorLen = 10

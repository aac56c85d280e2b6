package entity

import "time"

// Naturalezas jurídicas válidas para Organization.
const (
	NaturalezaPublica = "publica"
	NaturalezaPrivada = "privada"
	NaturalezaMixta   = "mixta"
)

// Organization representa un prestador de servicios de salud registrado en el
// sistema (enfoque Colombia: se identifica por NIT + dígito de verificación).
type Organization struct {
	ID                 string
	RazonSocial        string
	NIT                string // solo dígitos, sin DV
	DigitoVerificacion string // un carácter 0-9
	Naturaleza         string // publica, privada, mixta
	Direccion          string
	Telefono           string
	Email              string
	Estado             string // active, suspended, inactive
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NITCompleto devuelve el NIT con su dígito de verificación ("900123456-8").
func (o *Organization) NITCompleto() string {
	if o.DigitoVerificacion == "" {
		return o.NIT
	}
	return o.NIT + "-" + o.DigitoVerificacion
}

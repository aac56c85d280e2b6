package reps

import "io"

// Row una fila cruda del export REPS, ya decodificada a UTF-8 por el parser.
// Departamento, Municipio y Naturaleza llegan normalizados (minúsculas, sin
// tildes) para que el matching no dependa de cómo tildó el registro nacional.
type Row struct {
	CodigoHabilitacion string
	NIT                string
	DigitoVerificacion string
	RazonSocial        string
	TipoPrestador      string
	Departamento       string
	Municipio          string
	Naturaleza         string
	Email              string
}

// FileParser puerto para los parsers de archivo REPS (CSV oficial, XML).
// El parser solo tokeniza y decodifica; la validación de negocio es del use case.
type FileParser interface {
	Parse(r io.Reader) ([]Row, error)
}

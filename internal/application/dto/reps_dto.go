package dto

import "time"

// RepsImportError describe una fila rechazada durante la importación REPS.
type RepsImportError struct {
	Fila    int    `json:"fila"` // número de fila en el archivo (1 = primera fila de datos)
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// RepsImportReport resumen de una importación REPS. La importación nunca se
// aborta por una fila mala: las filas válidas se aplican y las inválidas se
// reportan aquí.
type RepsImportReport struct {
	Total    int               `json:"total"`
	Inserted int               `json:"inserted"`
	Updated  int               `json:"updated"`
	Failed   int               `json:"failed"`
	Errors   []RepsImportError `json:"errors"`
}

// RepsRecordResponse salida de un registro REPS.
type RepsRecordResponse struct {
	ID                 string    `json:"id"`
	CodigoHabilitacion string    `json:"codigo_habilitacion"`
	NIT                string    `json:"nit"`
	DigitoVerificacion string    `json:"digito_verificacion"`
	RazonSocial        string    `json:"razon_social"`
	TipoPrestador      string    `json:"tipo_prestador"`
	Departamento       string    `json:"departamento"`
	Municipio          string    `json:"municipio"`
	Naturaleza         string    `json:"naturaleza"`
	Email              string    `json:"email"`
	ImportedAt         time.Time `json:"imported_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// RepsRecordListResponse lista paginada de registros REPS.
type RepsRecordListResponse struct {
	Items []RepsRecordResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

package reps

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	appreps "github.com/zentraqms/zentra-api/internal/application/reps"
)

// Encabezados reconocidos del export CSV oficial (se comparan ya normalizados
// con Fold, porque el registro los publica con tildes y mayúsculas variables).
const (
	colCodigo       = "codigo_habilitacion"
	colNIT          = "nit"
	colDV           = "dv"
	colRazonSocial  = "razon_social"
	colTipo         = "clase_prestador"
	colDepartamento = "departamento"
	colMunicipio    = "municipio"
	colNaturaleza   = "naturaleza"
	colEmail        = "email"
)

// headerAliases mapea variantes de encabezado vistas en exports reales al
// nombre canónico de columna.
var headerAliases = map[string]string{
	"codigo habilitacion":    colCodigo,
	"codigo_habilitacion":    colCodigo,
	"nit":                    colNIT,
	"numero documento":       colNIT,
	"dv":                     colDV,
	"digito verificacion":    colDV,
	"digito de verificacion": colDV,
	"razon social":           colRazonSocial,
	"razon_social":           colRazonSocial,
	"nombre prestador":       colRazonSocial,
	"clase prestador":        colTipo,
	"clase_prestador":        colTipo,
	"clpr nombre":            colTipo,
	"departamento":           colDepartamento,
	"depa nombre":            colDepartamento,
	"municipio":              colMunicipio,
	"muni nombre":            colMunicipio,
	"naturaleza":             colNaturaleza,
	"naju nombre":            colNaturaleza,
	"email":                  colEmail,
	"correo electronico":     colEmail,
}

// CSVParser parsea el export CSV del REPS: separado por ';', con fila de
// encabezados, típicamente en ISO-8859-1 (Encoding "latin1"). Implementa
// appreps.FileParser.
type CSVParser struct {
	latin1 bool
}

// NewCSVParser construye el parser. encoding: "latin1" (default del export
// oficial) o "utf8" para archivos re-guardados.
func NewCSVParser(encoding string) *CSVParser {
	return &CSVParser{latin1: !strings.EqualFold(encoding, "utf8")}
}

// Parse lee todas las filas de datos. Filas con menos columnas de las mapeadas
// se devuelven con los campos faltantes vacíos; decidir si eso las invalida es
// del use case, no del parser.
func (p *CSVParser) Parse(r io.Reader) ([]appreps.Row, error) {
	if p.latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1 // exports reales traen filas cojas
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("archivo vacío")
	}
	if err != nil {
		return nil, fmt.Errorf("leer encabezados: %w", err)
	}
	index := mapHeader(header)
	if _, ok := index[colCodigo]; !ok {
		return nil, fmt.Errorf("el archivo no tiene columna de código de habilitación")
	}

	var rows []appreps.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer fila %d: %w", len(rows)+2, err)
		}
		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		rows = append(rows, appreps.Row{
			CodigoHabilitacion: get(colCodigo),
			NIT:                get(colNIT),
			DigitoVerificacion: get(colDV),
			RazonSocial:        get(colRazonSocial),
			TipoPrestador:      get(colTipo),
			Departamento:       Fold(get(colDepartamento)),
			Municipio:          Fold(get(colMunicipio)),
			Naturaleza:         Fold(get(colNaturaleza)),
			Email:              get(colEmail),
		})
	}
	return rows, nil
}

func mapHeader(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		if canonical, ok := headerAliases[Fold(h)]; ok {
			if _, dup := index[canonical]; !dup {
				index[canonical] = i
			}
		}
	}
	return index
}

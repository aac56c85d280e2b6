package reps_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appreps "github.com/zentraqms/zentra-api/internal/application/reps"
	"github.com/zentraqms/zentra-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: repositorio en memoria y parser fijo
// ──────────────────────────────────────────────────────────────────────────────

// memRepsRepo implementa repository.RepsRepository sobre un map keyed por
// código de habilitación.
type memRepsRepo struct {
	records map[string]*entity.RepsRecord
	failOn  string // código que fuerza error de Upsert
}

func newMemRepsRepo() *memRepsRepo {
	return &memRepsRepo{records: make(map[string]*entity.RepsRecord)}
}

func (m *memRepsRepo) Upsert(_ context.Context, rec *entity.RepsRecord) (bool, error) {
	if rec.CodigoHabilitacion == m.failOn {
		return false, fmt.Errorf("error simulado de base de datos")
	}
	_, exists := m.records[rec.CodigoHabilitacion]
	m.records[rec.CodigoHabilitacion] = rec
	return !exists, nil
}

func (m *memRepsRepo) GetByCodigoHabilitacion(_ context.Context, codigo string) (*entity.RepsRecord, error) {
	return m.records[codigo], nil
}

func (m *memRepsRepo) List(_ context.Context, departamento string, limit, offset int) ([]*entity.RepsRecord, error) {
	var list []*entity.RepsRecord
	for _, rec := range m.records {
		if departamento == "" || rec.Departamento == departamento {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (m *memRepsRepo) Count(_ context.Context, departamento string) (int, error) {
	list, _ := m.List(context.Background(), departamento, 0, 0)
	return len(list), nil
}

// fixedParser devuelve filas predefinidas sin leer el reader.
type fixedParser struct {
	rows []appreps.Row
	err  error
}

func (p *fixedParser) Parse(io.Reader) ([]appreps.Row, error) { return p.rows, p.err }

// filaValida una fila REPS correcta de base para mutar en cada escenario.
func filaValida() appreps.Row {
	return appreps.Row{
		CodigoHabilitacion: "0500100001",
		NIT:                "900123456",
		DigitoVerificacion: "8",
		RazonSocial:        "IPS Ejemplo S.A.S.",
		TipoPrestador:      "instituciones prestadoras de servicios de salud",
		Departamento:       "antioquia",
		Municipio:          "medellin",
		Naturaleza:         entity.NaturalezaPrivada,
		Email:              "contacto@ipsejemplo.co",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de importación
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: todas las filas válidas → todas insertadas, reporte limpio.
func TestImport_FilasValidas_TodasInsertadas(t *testing.T) {
	repo := newMemRepsRepo()
	uc := appreps.NewImportUseCase(repo)

	otra := filaValida()
	otra.CodigoHabilitacion = "0500100002"
	otra.NIT = "800197268"
	otra.DigitoVerificacion = "4"

	report, err := uc.Import(context.Background(), strings.NewReader(""), &fixedParser{rows: []appreps.Row{filaValida(), otra}})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Inserted)
	assert.Equal(t, 0, report.Updated)
	assert.Equal(t, 0, report.Failed)
	assert.Empty(t, report.Errors)

	rec, _ := repo.GetByCodigoHabilitacion(context.Background(), "0500100001")
	require.NotNil(t, rec)
	assert.Equal(t, "900123456", rec.NIT)
	assert.Equal(t, "8", rec.DigitoVerificacion)
}

// Escenario: re-importar el mismo archivo → segunda pasada cuenta como Updated.
func TestImport_Reimportacion_CuentaComoUpdated(t *testing.T) {
	repo := newMemRepsRepo()
	uc := appreps.NewImportUseCase(repo)
	parser := &fixedParser{rows: []appreps.Row{filaValida()}}

	_, err := uc.Import(context.Background(), strings.NewReader(""), parser)
	require.NoError(t, err)

	report, err := uc.Import(context.Background(), strings.NewReader(""), parser)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Inserted)
	assert.Equal(t, 1, report.Updated)
}

// Escenario: NIT con dígito de verificación que no cuadra → fila rechazada,
// el resto de la importación sigue.
func TestImport_DVIncorrecto_RechazaSoloEsaFila(t *testing.T) {
	repo := newMemRepsRepo()
	uc := appreps.NewImportUseCase(repo)

	mala := filaValida()
	mala.CodigoHabilitacion = "0500100002"
	mala.DigitoVerificacion = "9" // el correcto para 900123456 es 8

	report, err := uc.Import(context.Background(), strings.NewReader(""), &fixedParser{rows: []appreps.Row{filaValida(), mala}})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Inserted)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 2, report.Errors[0].Fila, "el error debe apuntar a la segunda fila de datos")
	assert.Equal(t, "nit", report.Errors[0].Campo)
}

// Escenario: el registro nacional arrastra NITs históricos de 8 dígitos;
// la importación los acepta (rango permisivo, a diferencia de organizaciones).
func TestImport_NITHistoricoDe8Digitos_EsAceptado(t *testing.T) {
	repo := newMemRepsRepo()
	uc := appreps.NewImportUseCase(repo)

	fila := filaValida()
	fila.NIT = "12345678"
	fila.DigitoVerificacion = "8"

	report, err := uc.Import(context.Background(), strings.NewReader(""), &fixedParser{rows: []appreps.Row{fila}})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Inserted)
	assert.Equal(t, 0, report.Failed)
}

// Escenario: código de habilitación con longitud o caracteres malos.
func TestImport_CodigoHabilitacionInvalido_Rechaza(t *testing.T) {
	casos := []string{"05001", "0500100001X", "", "05001000011234"}
	for _, codigo := range casos {
		repo := newMemRepsRepo()
		uc := appreps.NewImportUseCase(repo)

		fila := filaValida()
		fila.CodigoHabilitacion = codigo

		report, err := uc.Import(context.Background(), strings.NewReader(""), &fixedParser{rows: []appreps.Row{fila}})
		require.NoError(t, err)
		assert.Equal(t, 1, report.Failed, "codigo %q debe ser rechazado", codigo)
		require.Len(t, report.Errors, 1)
		assert.Equal(t, "codigo_habilitacion", report.Errors[0].Campo)
	}
}

// Escenario: naturaleza fuera del catálogo → rechazada; vacía → aceptada.
func TestImport_Naturaleza(t *testing.T) {
	repo := newMemRepsRepo()
	uc := appreps.NewImportUseCase(repo)

	desconocida := filaValida()
	desconocida.CodigoHabilitacion = "0500100002"
	desconocida.Naturaleza = "cooperativa"

	vacia := filaValida()
	vacia.CodigoHabilitacion = "0500100003"
	vacia.Naturaleza = ""

	report, err := uc.Import(context.Background(), strings.NewReader(""), &fixedParser{rows: []appreps.Row{desconocida, vacia}})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Inserted)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "naturaleza", report.Errors[0].Campo)
}

// Escenario: error de base de datos en una fila → va al reporte, no aborta.
func TestImport_ErrorDeUpsert_NoAbortaLaImportacion(t *testing.T) {
	repo := newMemRepsRepo()
	repo.failOn = "0500100001"
	uc := appreps.NewImportUseCase(repo)

	otra := filaValida()
	otra.CodigoHabilitacion = "0500100002"

	report, err := uc.Import(context.Background(), strings.NewReader(""), &fixedParser{rows: []appreps.Row{filaValida(), otra}})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Inserted)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "db", report.Errors[0].Campo)
}

// Escenario: el archivo completo no se puede parsear → error, sin reporte.
func TestImport_ArchivoIlegible_RetornaError(t *testing.T) {
	uc := appreps.NewImportUseCase(newMemRepsRepo())

	report, err := uc.Import(context.Background(), strings.NewReader(""), &fixedParser{err: fmt.Errorf("encabezados rotos")})
	assert.Error(t, err)
	assert.Nil(t, report)
}

package reps_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	infrareps "github.com/zentraqms/zentra-api/internal/infrastructure/reps"
)

// toLatin1 codifica un string UTF-8 como ISO-8859-1, igual que el export oficial.
func toLatin1(t *testing.T, s string) []byte {
	t.Helper()
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewEncoder(), []byte(s))
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// CSV
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: export real en latin1, encabezados con tildes y mayúsculas, filas
// con tildes en departamento/municipio.
func TestCSVParser_ExportLatin1ConTildes(t *testing.T) {
	contenido := "Código Habilitación;NIT;DV;Razón Social;Clase Prestador;Departamento;Municipio;Naturaleza;Email\n" +
		"0500100001;900123456;8;IPS El Poblado S.A.S.;Instituciones Prestadoras;ANTIOQUIA;MEDELLÍN;Privada;info@poblado.co\n" +
		"1100100002;800197268;4;Clínica Bogotá;Instituciones Prestadoras;BOGOTÁ D.C.;BOGOTÁ;Pública;\n"

	// "Código Habilitación" no está en los alias, pero "codigo habilitacion"
	// normalizado sí: el parser debe reconocerlo tras Fold.
	parser := infrareps.NewCSVParser("latin1")
	rows, err := parser.Parse(bytes.NewReader(toLatin1(t, contenido)))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "0500100001", rows[0].CodigoHabilitacion)
	assert.Equal(t, "900123456", rows[0].NIT)
	assert.Equal(t, "8", rows[0].DigitoVerificacion)
	assert.Equal(t, "IPS El Poblado S.A.S.", rows[0].RazonSocial, "la razón social conserva mayúsculas y tildes")
	assert.Equal(t, "antioquia", rows[0].Departamento, "departamento llega normalizado")
	assert.Equal(t, "medellin", rows[0].Municipio, "municipio pierde la tilde")
	assert.Equal(t, "privada", rows[0].Naturaleza)

	assert.Equal(t, "bogota d.c.", rows[1].Departamento)
	assert.Equal(t, "publica", rows[1].Naturaleza)
	assert.Equal(t, "", rows[1].Email, "columna vacía queda vacía")
}

// Escenario: archivo re-guardado en UTF-8 con modo "utf8".
func TestCSVParser_ModoUTF8(t *testing.T) {
	contenido := "codigo_habilitacion;nit;dv;razon_social;departamento\n" +
		"0500100001;900123456;8;IPS Medellín;ANTIOQUIA\n"

	parser := infrareps.NewCSVParser("utf8")
	rows, err := parser.Parse(strings.NewReader(contenido))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "IPS Medellín", rows[0].RazonSocial)
	assert.Equal(t, "", rows[0].Municipio, "columna ausente queda vacía")
}

// Escenario: filas cojas (menos columnas que el encabezado) no rompen el parseo.
func TestCSVParser_FilasConColumnasFaltantes(t *testing.T) {
	contenido := "codigo_habilitacion;nit;dv;razon_social;departamento\n" +
		"0500100001;900123456\n"

	parser := infrareps.NewCSVParser("utf8")
	rows, err := parser.Parse(strings.NewReader(contenido))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "0500100001", rows[0].CodigoHabilitacion)
	assert.Equal(t, "", rows[0].RazonSocial)
}

// Escenario: sin columna de código de habilitación → error de archivo completo.
func TestCSVParser_SinColumnaCodigo_RetornaError(t *testing.T) {
	contenido := "nit;dv;razon_social\n900123456;8;IPS\n"

	parser := infrareps.NewCSVParser("utf8")
	_, err := parser.Parse(strings.NewReader(contenido))
	assert.Error(t, err)
}

// Escenario: archivo vacío → error.
func TestCSVParser_ArchivoVacio_RetornaError(t *testing.T) {
	parser := infrareps.NewCSVParser("utf8")
	_, err := parser.Parse(strings.NewReader(""))
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// XML
// ──────────────────────────────────────────────────────────────────────────────

func TestXMLParser_DocumentoBasico(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<prestadores>
  <prestador>
    <codigo_habilitacion>0500100001</codigo_habilitacion>
    <nit>900123456</nit>
    <dv>8</dv>
    <razon_social>IPS El Poblado S.A.S.</razon_social>
    <clase_prestador>Instituciones Prestadoras</clase_prestador>
    <departamento>ANTIOQUIA</departamento>
    <municipio>MEDELLÍN</municipio>
    <naturaleza>Privada</naturaleza>
    <email>info@poblado.co</email>
  </prestador>
  <prestador>
    <codigo_habilitacion>1100100002</codigo_habilitacion>
    <nit>800197268</nit>
    <dv>4</dv>
    <razon_social>Clínica Bogotá</razon_social>
    <departamento>BOGOTÁ D.C.</departamento>
  </prestador>
</prestadores>`

	parser := infrareps.NewXMLParser()
	rows, err := parser.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "0500100001", rows[0].CodigoHabilitacion)
	assert.Equal(t, "medellin", rows[0].Municipio)
	assert.Equal(t, "privada", rows[0].Naturaleza)

	assert.Equal(t, "bogota d.c.", rows[1].Departamento)
	assert.Equal(t, "", rows[1].Municipio, "elemento ausente queda vacío")
}

func TestXMLParser_DocumentoInvalido_RetornaError(t *testing.T) {
	parser := infrareps.NewXMLParser()
	_, err := parser.Parse(strings.NewReader("esto no es xml <"))
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fold
// ──────────────────────────────────────────────────────────────────────────────

func TestFold_NormalizaParaMatching(t *testing.T) {
	casos := map[string]string{
		"BOGOTÁ D.C.":      "bogota d.c.",
		"  Medellín  ":     "medellin",
		"San  Andrés":      "san andres",
		"NARIÑO":           "narino",
		"choco":            "choco",
		"":                 "",
		"Pública":          "publica",
		"VALLE DEL CAUCA":  "valle del cauca",
		"Atlántico\tNorte": "atlantico norte",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, infrareps.Fold(entrada), "Fold(%q)", entrada)
	}
}

package nit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zentraqms/zentra-api/pkg/nit"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores de referencia del dígito de verificación DIAN.
//
// Este test es el "canario en la mina" del motor: si alguien altera los pesos,
// el orden de aplicación o la reducción módulo 11, falla de inmediato.
//
// Los pares NIT→DV se contrastaron con dígitos publicados reales:
//   - 800197268-4 es el NIT de la propia DIAN.
//   - 890903938-8 es un NIT bancario de conocimiento público.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeCheckDigit_VectoresConocidos(t *testing.T) {
	vectors := map[string]string{
		"800197268":       "4", // DIAN
		"890903938":       "8",
		"900123456":       "8",
		"830020154":       "2",
		"860518614":       "7",
		"900359991":       "0",
		"12345678":        "8", // longitud mínima (8)
		"123456789012345": "2", // longitud máxima (15)
		"10000006":        "0", // residuo 0: DV = residuo
		"10000014":        "1", // residuo 1: DV = residuo
	}
	for digits, expected := range vectors {
		assert.Equal(t, expected, nit.ComputeCheckDigit(digits),
			"DV incorrecto para el NIT %s", digits)
	}
}

func TestComputeCheckDigit_Determinista(t *testing.T) {
	first := nit.ComputeCheckDigit("860518614")
	second := nit.ComputeCheckDigit("860518614")
	assert.Equal(t, first, second, "el mismo NIT siempre produce el mismo DV")
}

// El DV es siempre un solo carácter 0-9, o vacío fuera del rango [8,15].
func TestComputeCheckDigit_RangoDeSalida(t *testing.T) {
	for _, digits := range []string{"12345678", "999999999999999", "80012345", "900359991"} {
		dv := nit.ComputeCheckDigit(digits)
		require.Len(t, dv, 1, "NIT %s debe producir exactamente un dígito", digits)
		assert.GreaterOrEqual(t, dv[0], byte('0'))
		assert.LessOrEqual(t, dv[0], byte('9'))
	}

	// Fuera del dominio: vacío, no error.
	assert.Empty(t, nit.ComputeCheckDigit(""), "sin dígitos no hay DV")
	assert.Empty(t, nit.ComputeCheckDigit("1234567"), "7 dígitos: demasiado corto")
	assert.Empty(t, nit.ComputeCheckDigit("1234567890123456"), "16 dígitos: demasiado largo")
}

// ── Normalización ─────────────────────────────────────────────────────────────

func TestNormalize_DescartaNoDigitos(t *testing.T) {
	assert.Equal(t, "900123456", nit.Normalize("9a0b0.1-2c3d4e5f6"))
	assert.Equal(t, "900123456", nit.Normalize("900.123.456"))
	assert.Equal(t, "9001234568", nit.Normalize("900.123.456-8"))
	assert.Equal(t, "", nit.Normalize("sin dígitos"))
	assert.Equal(t, "", nit.Normalize(""))
}

func TestNormalize_Idempotente(t *testing.T) {
	inputs := []string{"", "abc", "900.123.456-8", "  12 34 ", strings.Repeat("9", 100)}
	for _, in := range inputs {
		once := nit.Normalize(in)
		assert.Equal(t, once, nit.Normalize(once), "Normalize(Normalize(%q))", in)
	}
}

func TestNormalize_TruncaA15(t *testing.T) {
	long := strings.Repeat("1234567890", 10)
	assert.Len(t, nit.Normalize(long), nit.MaxDigits)

	// El truncado conserva los primeros 15 dígitos encontrados.
	assert.Equal(t, "123456789012345", nit.Normalize("1-2-3-4-5-6-7-8-9-0-1-2-3-4-5-6-7"))
}

// ── Formato ───────────────────────────────────────────────────────────────────

func TestFormat_AgrupaDeATresDesdeLaIzquierda(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"9":               "9",
		"900":             "900",
		"9001":            "900.1",
		"900123":          "900.123",
		"900123456":       "900.123.456",
		"9001234567":      "900.123.456.7",
		"123456789012345": "123.456.789.012.345",
	}
	for digits, expected := range cases {
		assert.Equal(t, expected, nit.Format(digits), "Format(%q)", digits)
	}
}

// Formatear nunca cambia los dígitos subyacentes, solo agrega separadores.
func TestFormat_RoundTripConNormalize(t *testing.T) {
	inputs := []string{"900123456", "9001234567", "1", "", "12345678901234599999"}
	for _, in := range inputs {
		digits := nit.Normalize(in)
		assert.Equal(t, digits, nit.Normalize(nit.Format(digits)))
	}
}

// ── Validación ────────────────────────────────────────────────────────────────

func TestValidate_ParCorrecto(t *testing.T) {
	res := nit.Validate("900123456", "8")
	assert.True(t, res.IsValid)
	assert.Equal(t, "8", res.ComputedDigit)
	assert.Equal(t, "900123456", res.NIT)
}

func TestValidate_ParIncorrecto(t *testing.T) {
	res := nit.Validate("900123456", "9")
	assert.False(t, res.IsValid)
	assert.Equal(t, "8", res.ComputedDigit,
		"aun con DV errado se reporta el dígito calculado")
}

// Por debajo del piso de 8 dígitos ningún DV vale.
func TestValidate_FronteraDeLongitud(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		res := nit.Validate("9001234", string(d))
		assert.False(t, res.IsValid, "7 dígitos nunca validan (DV %c)", d)
		assert.Empty(t, res.ComputedDigit)
	}
}

func TestValidate_DVMalformado(t *testing.T) {
	assert.False(t, nit.Validate("900123456", "").IsValid, "DV vacío")
	assert.False(t, nit.Validate("900123456", "88").IsValid, "DV de dos caracteres")
	assert.False(t, nit.Validate("900123456", "x").IsValid, "DV no numérico")
}

func TestValidate_NuncaPanic(t *testing.T) {
	// Entradas hostiles: el motor es total sobre cualquier string.
	inputs := []string{"", "\x00\xff", strings.Repeat("9", 1000), "９００", "nit-900"}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			nit.Validate(in, in)
			nit.ComputeCheckDigit(in)
			nit.Format(nit.Normalize(in))
		})
	}
}

// Rango estricto para formularios de registro (9-10 dígitos).
func TestValidator_RangoEstricto(t *testing.T) {
	v := nit.NewValidator(nit.WithLengthRange(9, 10))

	assert.True(t, v.Validate("900123456", "8").IsValid, "9 dígitos dentro del rango estricto")
	assert.False(t, v.Validate("12345678", "8").IsValid,
		"8 dígitos: válido para el motor permisivo pero no para el rango estricto")
	assert.True(t, nit.Validate("12345678", "8").IsValid, "el default permisivo sí lo acepta")
}

// ── Escenario de extremo a extremo (§ captura de formulario) ─────────────────

func TestFlujoCompleto_PegarNITFormateado(t *testing.T) {
	raw := "9a00.123-456"

	digits := nit.Normalize(raw)
	require.Equal(t, "900123456", digits)

	assert.Equal(t, "900.123.456", nit.Format(digits))

	dv := nit.ComputeCheckDigit(digits)
	require.Equal(t, "8", dv)

	ok := nit.Validate(digits, dv)
	assert.True(t, ok.IsValid)
	assert.Equal(t, "8", ok.ComputedDigit)

	bad := nit.Validate(digits, "9")
	assert.False(t, bad.IsValid)
	assert.Equal(t, "8", bad.ComputedDigit)
}

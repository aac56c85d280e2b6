// Package nit implementa la validación del NIT colombiano (Número de
// Identificación Tributaria): normalización de entrada, formato con puntos de
// miles, y cálculo/validación del dígito de verificación según el algoritmo
// módulo 11 de la DIAN (Orden Administrativa 4 de 1989).
//
// Todas las funciones son totales sobre cualquier string de entrada: una
// entrada incompleta o con basura es el estado normal mientras el usuario
// digita, así que nunca se retorna error ni se hace panic — el valor centinela
// es el string vacío ("dígito aún no calculable").
package nit

import "strings"

// MaxDigits longitud máxima de un NIT en la práctica (incluye prefijos y
// extensiones usados por la DIAN).
const MaxDigits = 15

// MinDigits longitud mínima para que el dígito de verificación sea calculable.
const MinDigits = 8

// nitWeights pesos del algoritmo DIAN, indexados desde el dígito MENOS
// significativo (derecha) del NIT. Un peso por posición posible.
var nitWeights = [MaxDigits]int{3, 7, 13, 17, 19, 23, 29, 37, 41, 43, 47, 53, 59, 67, 71}

// Normalize deja solo dígitos ASCII 0-9 y trunca a MaxDigits.
// Puntos, guiones, letras y espacios se descartan en silencio: así el usuario
// puede pegar valores formateados copiados de documentos oficiales (RUT, REPS).
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == MaxDigits {
				break
			}
		}
	}
	return b.String()
}

// Format agrupa los dígitos de a 3 desde la IZQUIERDA con punto separador,
// siguiendo la convención colombiana de escritura del NIT: "900123456" →
// "900.123.456". Entrada vacía produce salida vacía.
func Format(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	for i := 0; i < len(digits); i += 3 {
		if i > 0 {
			b.WriteByte('.')
		}
		end := i + 3
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[i:end])
	}
	return b.String()
}

// ComputeCheckDigit calcula el dígito de verificación DIAN para un NIT ya
// normalizado. Retorna "" si la longitud está fuera de [MinDigits, MaxDigits]:
// el número es demasiado corto o largo para ser un NIT plausible. Eso no es un
// error, es "todavía no calculable".
//
// Algoritmo: cada dígito, contado desde la derecha, se multiplica por el primo
// de nitWeights en su posición; la suma se reduce módulo 11. Si el residuo es
// 0 o 1 el dígito es el residuo; en otro caso es 11 menos el residuo.
func ComputeCheckDigit(digits string) string {
	n := len(digits)
	if n < MinDigits || n > MaxDigits {
		return ""
	}
	var sum int
	for i := 0; i < n; i++ {
		d := digits[n-1-i]
		if d < '0' || d > '9' {
			return ""
		}
		sum += int(d-'0') * nitWeights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return string(rune('0' + remainder))
	}
	return string(rune('0' + (11 - remainder)))
}

// Result resultado de validar un par (NIT, dígito de verificación).
type Result struct {
	IsValid       bool   `json:"is_valid"`
	ComputedDigit string `json:"computed_digit"` // "" si no es calculable
	NIT           string `json:"nit"`            // dígitos normalizados evaluados
}

// Validator valida pares NIT + dígito de verificación. El rango de longitud
// por defecto es el permisivo del motor [8, 15]; los consumidores estrictos
// (formularios de registro, por ejemplo) pueden acotarlo con WithLengthRange.
type Validator struct {
	minLen int
	maxLen int
}

// Option opción de configuración del Validator.
type Option func(*Validator)

// WithLengthRange acota el rango de longitudes aceptadas como válidas.
// Valores fuera de [MinDigits, MaxDigits] se recortan al rango del motor.
func WithLengthRange(min, max int) Option {
	return func(v *Validator) {
		if min >= MinDigits {
			v.minLen = min
		}
		if max <= MaxDigits && max >= min {
			v.maxLen = max
		}
	}
}

// NewValidator construye un Validator con el rango permisivo por defecto.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{minLen: MinDigits, maxLen: MaxDigits}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate compara el dígito de verificación recibido contra el calculado.
// Es válido solo si: la longitud está dentro del rango configurado, checkDigit
// es exactamente un carácter 0-9, y coincide con el dígito calculado.
// Estados incompletos o inválidos resuelven a IsValid=false con el mejor
// dígito calculado disponible; nunca se retorna error.
func (v *Validator) Validate(digits, checkDigit string) Result {
	computed := ComputeCheckDigit(digits)
	res := Result{ComputedDigit: computed, NIT: digits}
	if len(digits) < v.minLen || len(digits) > v.maxLen {
		return res
	}
	if len(checkDigit) != 1 || checkDigit[0] < '0' || checkDigit[0] > '9' {
		return res
	}
	res.IsValid = computed != "" && computed == checkDigit
	return res
}

// Validate valida con el rango permisivo por defecto del motor.
func Validate(digits, checkDigit string) Result {
	return NewValidator().Validate(digits, checkDigit)
}

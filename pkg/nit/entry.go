package nit

// State estado observable de una captura interactiva de NIT.
type State int

const (
	// StateEmpty sin entrada: ausencia de NIT, distinto de "NIT incorrecto".
	StateEmpty State = iota
	// StateTyping hay dígitos pero aún no alcanzan para calcular el DV.
	StateTyping
	// StateSettledValid el DV mostrado es el calculado y el par es válido.
	StateSettledValid
	// StateSettledInvalid hay dígitos suficientes pero el par no es válido.
	StateSettledInvalid
	// StateManualValid el usuario escribió el DV a mano y coincide con el calculado.
	StateManualValid
	// StateManualInvalid el usuario escribió el DV a mano y NO coincide.
	StateManualInvalid
)

// String representación legible del estado (para logs y aserciones).
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateTyping:
		return "typing"
	case StateSettledValid:
		return "settled_valid"
	case StateSettledInvalid:
		return "settled_invalid"
	case StateManualValid:
		return "manual_valid"
	case StateManualInvalid:
		return "manual_invalid"
	}
	return "unknown"
}

// Entry modela la captura interactiva de un NIT con su dígito de verificación:
// el contrato de comportamiento que cualquier formulario debe cumplir.
//
// Reglas:
//   - Cada cambio del NIT re-normaliza, re-formatea y recalcula el DV.
//   - Mientras el usuario no haya tocado el campo DV, este sigue al calculado.
//   - Si el usuario edita el DV a mano, ese valor NUNCA se sobreescribe con el
//     calculado; solo se compara contra él y se señala el desacuerdo.
//   - Limpiar el NIT regresa a StateEmpty, no a "inválido".
//
// Entry no es seguro para uso concurrente; cada formulario mantiene el suyo.
type Entry struct {
	validator  *Validator
	digits     string
	checkDigit string
	manual     bool
}

// NewEntry construye una captura vacía. Las opciones se aplican al Validator
// subyacente (por ejemplo WithLengthRange para formularios estrictos).
func NewEntry(opts ...Option) *Entry {
	return &Entry{validator: NewValidator(opts...)}
}

// InputNIT procesa un cambio en el campo NIT (texto crudo, con o sin formato).
// Si el campo DV no está en modo manual, se actualiza al dígito calculado.
func (e *Entry) InputNIT(raw string) {
	e.digits = Normalize(raw)
	if e.digits == "" {
		// Limpiar el NIT resetea todo, incluido un DV manual.
		e.checkDigit = ""
		e.manual = false
		return
	}
	if !e.manual {
		e.checkDigit = ComputeCheckDigit(e.digits)
	}
}

// InputCheckDigit procesa una edición manual del campo DV. Un valor vacío
// devuelve el campo al modo automático (vuelve a seguir al calculado).
func (e *Entry) InputCheckDigit(raw string) {
	d := Normalize(raw)
	if d == "" {
		e.manual = false
		e.checkDigit = ComputeCheckDigit(e.digits)
		return
	}
	e.manual = true
	e.checkDigit = d[:1]
}

// Clear descarta toda la captura.
func (e *Entry) Clear() {
	e.digits = ""
	e.checkDigit = ""
	e.manual = false
}

// Digits dígitos normalizados actuales del NIT.
func (e *Entry) Digits() string { return e.digits }

// CheckDigit DV mostrado actualmente (calculado o manual).
func (e *Entry) CheckDigit() string { return e.checkDigit }

// Display NIT formateado con puntos de miles para mostrar en pantalla.
func (e *Entry) Display() string { return Format(e.digits) }

// Manual informa si el DV actual fue digitado por el usuario.
func (e *Entry) Manual() bool { return e.manual }

// Validate evalúa el par actual con el validador de la captura.
func (e *Entry) Validate() Result {
	return e.validator.Validate(e.digits, e.checkDigit)
}

// State estado observable actual de la captura.
func (e *Entry) State() State {
	if e.digits == "" {
		return StateEmpty
	}
	if len(e.digits) < e.validator.minLen {
		return StateTyping
	}
	valid := e.Validate().IsValid
	switch {
	case e.manual && valid:
		return StateManualValid
	case e.manual:
		return StateManualInvalid
	case valid:
		return StateSettledValid
	}
	return StateSettledInvalid
}

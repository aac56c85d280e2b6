package dto

// ValidateNITRequest entrada para validar un par NIT + dígito de verificación.
// Ambos campos aceptan texto crudo (con puntos/guiones); se normalizan en el handler.
type ValidateNITRequest struct {
	NIT    string `json:"nit" validate:"required,max=25"`
	Digito string `json:"digito" validate:"omitempty,max=3"`
}

// ValidateNITResponse resultado de la validación.
type ValidateNITResponse struct {
	IsValid        bool   `json:"is_valid"`
	NIT            string `json:"nit"`             // dígitos normalizados
	NITFormateado  string `json:"nit_formateado"`  // con puntos de miles
	DigitoRecibido string `json:"digito_recibido"`
	DigitoCalculado string `json:"digito_calculado"` // "" si no es calculable
}

// ComputeDigitResponse resultado del cálculo del dígito de verificación.
type ComputeDigitResponse struct {
	NIT             string `json:"nit"`
	NITFormateado   string `json:"nit_formateado"`
	DigitoCalculado string `json:"digito_calculado"` // "" si la longitud está fuera de [8,15]
	Calculable      bool   `json:"calculable"`
}

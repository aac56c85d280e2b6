package dto

import "time"

// CreateOrganizationRequest entrada para registrar una organización.
// El NIT puede venir formateado ("900.123.456"); se normaliza en el use case.
type CreateOrganizationRequest struct {
	RazonSocial        string `json:"razon_social" validate:"required,min=1,max=250"`
	NIT                string `json:"nit" validate:"required,min=1,max=20"`
	DigitoVerificacion string `json:"digito_verificacion" validate:"required,len=1"`
	Naturaleza         string `json:"naturaleza" validate:"required,oneof=publica privada mixta"`
	Direccion          string `json:"direccion"`
	Telefono           string `json:"telefono"`
	Email              string `json:"email" validate:"omitempty,email"`
}

// UpdateOrganizationRequest entrada para actualizar una organización (campos opcionales).
type UpdateOrganizationRequest struct {
	RazonSocial *string `json:"razon_social" validate:"omitempty,min=1,max=250"`
	Naturaleza  *string `json:"naturaleza" validate:"omitempty,oneof=publica privada mixta"`
	Direccion   *string `json:"direccion"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Estado      *string `json:"estado" validate:"omitempty,oneof=active suspended inactive"`
}

// OrganizationResponse salida de una organización.
type OrganizationResponse struct {
	ID                 string    `json:"id"`
	RazonSocial        string    `json:"razon_social"`
	NIT                string    `json:"nit"`
	DigitoVerificacion string    `json:"digito_verificacion"`
	NITFormateado      string    `json:"nit_formateado"` // "900.123.456-8"
	Naturaleza         string    `json:"naturaleza"`
	Direccion          string    `json:"direccion"`
	Telefono           string    `json:"telefono"`
	Email              string    `json:"email"`
	Estado             string    `json:"estado"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// OrganizationListResponse lista paginada de organizaciones.
type OrganizationListResponse struct {
	Items []OrganizationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

package dto

import "time"

// CreateSedeRequest entrada para crear una sede de prestación.
type CreateSedeRequest struct {
	CodigoHabilitacion string `json:"codigo_habilitacion" validate:"required,len=12,numeric"`
	Nombre             string `json:"nombre" validate:"required,min=1,max=250"`
	Departamento       string `json:"departamento" validate:"required,len=2,numeric"`
	Municipio          string `json:"municipio" validate:"required,len=3,numeric"`
	Direccion          string `json:"direccion"`
	Telefono           string `json:"telefono"`
	EsPrincipal        bool   `json:"es_principal"`
}

// UpdateSedeRequest entrada para actualizar una sede (campos opcionales).
type UpdateSedeRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=250"`
	Direccion   *string `json:"direccion"`
	Telefono    *string `json:"telefono"`
	EsPrincipal *bool   `json:"es_principal"`
	Estado      *string `json:"estado" validate:"omitempty,oneof=active inactive"`
}

// SedeResponse salida de una sede.
type SedeResponse struct {
	ID                 string    `json:"id"`
	OrganizationID     string    `json:"organization_id"`
	CodigoHabilitacion string    `json:"codigo_habilitacion"`
	Nombre             string    `json:"nombre"`
	Departamento       string    `json:"departamento"`
	Municipio          string    `json:"municipio"`
	Direccion          string    `json:"direccion"`
	Telefono           string    `json:"telefono"`
	EsPrincipal        bool      `json:"es_principal"`
	Estado             string    `json:"estado"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SedeListResponse lista paginada de sedes.
type SedeListResponse struct {
	Items []SedeResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

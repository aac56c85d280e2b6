package dto

// OnboardingRequest entrada del asistente de registro: organización + sede
// principal en un solo paso atómico.
type OnboardingRequest struct {
	Organization  CreateOrganizationRequest `json:"organization" validate:"required"`
	SedePrincipal CreateSedeRequest         `json:"sede_principal" validate:"required"`
}

// OnboardingResponse salida del asistente de registro.
type OnboardingResponse struct {
	Organization  OrganizationResponse `json:"organization"`
	SedePrincipal SedeResponse         `json:"sede_principal"`
}

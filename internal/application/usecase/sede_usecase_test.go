package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zentraqms/zentra-api/internal/application/dto"
	"github.com/zentraqms/zentra-api/internal/application/usecase"
	"github.com/zentraqms/zentra-api/internal/domain"
)

// crearSedeValida request base: código 12 dígitos, prefijo 05001 (Medellín).
func crearSedeValida() dto.CreateSedeRequest {
	return dto.CreateSedeRequest{
		CodigoHabilitacion: "050010000101",
		Nombre:             "Sede Principal El Poblado",
		Departamento:       "05",
		Municipio:          "001",
		Direccion:          "Cra 43A # 1-50",
		EsPrincipal:        true,
	}
}

// registrarOrg helper: crea una organización y devuelve su ID.
func registrarOrg(t *testing.T, orgUC *usecase.OrganizationUseCase) string {
	t.Helper()
	out, err := orgUC.Create(crearOrgValida())
	require.NoError(t, err)
	return out.ID
}

// Escenario: sede con código coherente para una organización existente.
func TestSedeCreate_CodigoCoherente(t *testing.T) {
	orgRepo := newMemOrgRepo()
	orgID := registrarOrg(t, usecase.NewOrganizationUseCase(orgRepo))
	uc := usecase.NewSedeUseCase(newMemSedeRepo(), orgRepo)

	out, err := uc.Create(orgID, crearSedeValida())
	require.NoError(t, err)

	assert.Equal(t, orgID, out.OrganizationID)
	assert.Equal(t, "050010000101", out.CodigoHabilitacion)
	assert.True(t, out.EsPrincipal)
	assert.Equal(t, "active", out.Estado)
}

// Escenario: la organización no existe → ErrNotFound.
func TestSedeCreate_OrganizacionInexistente(t *testing.T) {
	uc := usecase.NewSedeUseCase(newMemSedeRepo(), newMemOrgRepo())

	_, err := uc.Create("no-existe", crearSedeValida())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Escenario: el prefijo del código no coincide con depto/municipio declarados.
func TestSedeCreate_PrefijoIncoherente_Rechaza(t *testing.T) {
	orgRepo := newMemOrgRepo()
	orgID := registrarOrg(t, usecase.NewOrganizationUseCase(orgRepo))
	uc := usecase.NewSedeUseCase(newMemSedeRepo(), orgRepo)

	in := crearSedeValida()
	in.Departamento = "11" // el código empieza por 05
	in.Municipio = "001"

	_, err := uc.Create(orgID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Escenario: códigos con longitud o caracteres malos.
func TestSedeCreate_CodigoMalformado_Rechaza(t *testing.T) {
	orgRepo := newMemOrgRepo()
	orgID := registrarOrg(t, usecase.NewOrganizationUseCase(orgRepo))
	uc := usecase.NewSedeUseCase(newMemSedeRepo(), orgRepo)

	casos := []string{"05001", "05001000010", "0500100001012", "05001000010X"}
	for _, codigo := range casos {
		in := crearSedeValida()
		in.CodigoHabilitacion = codigo
		_, err := uc.Create(orgID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "codigo %q debe ser rechazado", codigo)
	}
}

// Escenario: el código de habilitación es único a nivel nacional.
func TestSedeCreate_CodigoDuplicado_Rechaza(t *testing.T) {
	orgRepo := newMemOrgRepo()
	orgID := registrarOrg(t, usecase.NewOrganizationUseCase(orgRepo))
	uc := usecase.NewSedeUseCase(newMemSedeRepo(), orgRepo)

	_, err := uc.Create(orgID, crearSedeValida())
	require.NoError(t, err)

	otra := crearSedeValida()
	otra.Nombre = "Sede repetida"
	_, err = uc.Create(orgID, otra)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zentraqms/zentra-api/internal/application/dto"
	"github.com/zentraqms/zentra-api/internal/application/usecase"
	"github.com/zentraqms/zentra-api/internal/domain"
)

func onboardingValido() dto.OnboardingRequest {
	return dto.OnboardingRequest{
		Organization:  crearOrgValida(),
		SedePrincipal: crearSedeValida(),
	}
}

// Escenario: asistente completo → organización y sede principal quedan
// creadas y enlazadas.
func TestOnboarding_CreaOrganizacionYSedePrincipal(t *testing.T) {
	orgRepo := newMemOrgRepo()
	sedeRepo := newMemSedeRepo()
	uc := usecase.NewOnboardingUseCase(&memTxRunner{orgRepo: orgRepo, sedeRepo: sedeRepo}, orgRepo)

	out, err := uc.Register(context.Background(), onboardingValido())
	require.NoError(t, err)

	assert.Equal(t, "900123456", out.Organization.NIT)
	assert.Equal(t, out.Organization.ID, out.SedePrincipal.OrganizationID)
	assert.True(t, out.SedePrincipal.EsPrincipal, "la sede del asistente siempre queda como principal")

	sedes, _ := sedeRepo.ListByOrganization(out.Organization.ID, 10, 0)
	require.Len(t, sedes, 1)
}

// Escenario: el asistente fuerza es_principal aunque el request diga lo contrario.
func TestOnboarding_FuerzaSedePrincipal(t *testing.T) {
	orgRepo := newMemOrgRepo()
	sedeRepo := newMemSedeRepo()
	uc := usecase.NewOnboardingUseCase(&memTxRunner{orgRepo: orgRepo, sedeRepo: sedeRepo}, orgRepo)

	in := onboardingValido()
	in.SedePrincipal.EsPrincipal = false

	out, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.SedePrincipal.EsPrincipal)
}

// Escenario: DV incorrecto → nada se crea.
func TestOnboarding_NITInvalido_NoCreaNada(t *testing.T) {
	orgRepo := newMemOrgRepo()
	sedeRepo := newMemSedeRepo()
	uc := usecase.NewOnboardingUseCase(&memTxRunner{orgRepo: orgRepo, sedeRepo: sedeRepo}, orgRepo)

	in := onboardingValido()
	in.Organization.DigitoVerificacion = "5"

	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidNIT)
	assert.Empty(t, orgRepo.byID)
	assert.Empty(t, sedeRepo.byID)
}

// Escenario: código de sede incoherente → se rechaza antes de abrir la tx.
func TestOnboarding_CodigoSedeInvalido_NoCreaNada(t *testing.T) {
	orgRepo := newMemOrgRepo()
	sedeRepo := newMemSedeRepo()
	uc := usecase.NewOnboardingUseCase(&memTxRunner{orgRepo: orgRepo, sedeRepo: sedeRepo}, orgRepo)

	in := onboardingValido()
	in.SedePrincipal.CodigoHabilitacion = "110010000101" // prefijo 11 ≠ depto 05

	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, orgRepo.byID)
}

// Escenario: NIT ya registrado → ErrDuplicate.
func TestOnboarding_NITDuplicado_Rechaza(t *testing.T) {
	orgRepo := newMemOrgRepo()
	sedeRepo := newMemSedeRepo()
	uc := usecase.NewOnboardingUseCase(&memTxRunner{orgRepo: orgRepo, sedeRepo: sedeRepo}, orgRepo)

	_, err := uc.Register(context.Background(), onboardingValido())
	require.NoError(t, err)

	otra := onboardingValido()
	otra.SedePrincipal.CodigoHabilitacion = "050010000102"
	_, err = uc.Register(context.Background(), otra)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

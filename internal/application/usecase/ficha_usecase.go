package usecase

import (
	"context"

	"github.com/zentraqms/zentra-api/internal/domain"
	"github.com/zentraqms/zentra-api/internal/domain/entity"
	"github.com/zentraqms/zentra-api/internal/domain/repository"
)

// FichaPDFGenerator puerto para la generación de la ficha de organización en PDF.
// Lo implementa pdf.MarotoPDFGenerator.
type FichaPDFGenerator interface {
	GenerateFichaPDF(ctx context.Context, org *entity.Organization, sedes []*entity.Sede) ([]byte, error)
}

// FichaUseCase genera la ficha de la organización (PDF imprimible con sus
// datos de identificación y sedes habilitadas).
type FichaUseCase struct {
	orgRepo   repository.OrganizationRepository
	sedeRepo  repository.SedeRepository
	generator FichaPDFGenerator
}

// NewFichaUseCase construye el caso de uso.
func NewFichaUseCase(orgRepo repository.OrganizationRepository, sedeRepo repository.SedeRepository, generator FichaPDFGenerator) *FichaUseCase {
	return &FichaUseCase{orgRepo: orgRepo, sedeRepo: sedeRepo, generator: generator}
}

// sedesEnFicha tope de sedes listadas en la ficha (una página).
const sedesEnFicha = 50

// Generate produce los bytes del PDF. Devuelve domain.ErrNotFound si la
// organización no existe.
func (uc *FichaUseCase) Generate(ctx context.Context, organizationID string) ([]byte, error) {
	org, err := uc.orgRepo.GetByID(organizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	sedes, err := uc.sedeRepo.ListByOrganization(organizationID, sedesEnFicha, 0)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateFichaPDF(ctx, org, sedes)
}

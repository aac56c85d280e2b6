package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zentraqms/zentra-api/internal/application/dto"
	"github.com/zentraqms/zentra-api/internal/domain"
	"github.com/zentraqms/zentra-api/internal/domain/entity"
	"github.com/zentraqms/zentra-api/internal/domain/repository"
	"github.com/zentraqms/zentra-api/pkg/nit"
)

// OnboardingTxRunner ejecuta el registro organización + sede dentro de una
// transacción. Lo implementa postgres.TxRunner.
type OnboardingTxRunner interface {
	Run(ctx context.Context, fn func(
		orgRepo repository.OrganizationRepository,
		sedeRepo repository.SedeRepository,
	) error) error
}

// OnboardingUseCase asistente de registro: crea la organización y su sede
// principal de forma atómica. Si la sede falla, la organización no queda a medias.
type OnboardingUseCase struct {
	tx        OnboardingTxRunner
	orgRepo   repository.OrganizationRepository
	validator *nit.Validator
}

// NewOnboardingUseCase construye el caso de uso.
func NewOnboardingUseCase(tx OnboardingTxRunner, orgRepo repository.OrganizationRepository) *OnboardingUseCase {
	return &OnboardingUseCase{
		tx:        tx,
		orgRepo:   orgRepo,
		validator: nit.NewValidator(nit.WithLengthRange(9, 10)),
	}
}

// Register valida y persiste organización + sede principal en una transacción.
func (uc *OnboardingUseCase) Register(ctx context.Context, in dto.OnboardingRequest) (*dto.OnboardingResponse, error) {
	digits := nit.Normalize(in.Organization.NIT)
	dv := nit.Normalize(in.Organization.DigitoVerificacion)
	if res := uc.validator.Validate(digits, dv); !res.IsValid {
		return nil, domain.ErrInvalidNIT
	}
	// Chequeo de duplicado antes de abrir la tx; el índice único respalda la carrera.
	if existing, _ := uc.orgRepo.GetByNIT(digits); existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := validarCodigoHabilitacion(in.SedePrincipal.CodigoHabilitacion,
		in.SedePrincipal.Departamento, in.SedePrincipal.Municipio); err != nil {
		return nil, err
	}

	now := time.Now()
	org := &entity.Organization{
		ID:                 uuid.New().String(),
		RazonSocial:        in.Organization.RazonSocial,
		NIT:                digits,
		DigitoVerificacion: dv,
		Naturaleza:         in.Organization.Naturaleza,
		Direccion:          in.Organization.Direccion,
		Telefono:           in.Organization.Telefono,
		Email:              in.Organization.Email,
		Estado:             "active",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	sede := &entity.Sede{
		ID:                 uuid.New().String(),
		OrganizationID:     org.ID,
		CodigoHabilitacion: in.SedePrincipal.CodigoHabilitacion,
		Nombre:             in.SedePrincipal.Nombre,
		Departamento:       in.SedePrincipal.Departamento,
		Municipio:          in.SedePrincipal.Municipio,
		Direccion:          in.SedePrincipal.Direccion,
		Telefono:           in.SedePrincipal.Telefono,
		EsPrincipal:        true, // la sede del asistente siempre es la principal
		Estado:             "active",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err := uc.tx.Run(ctx, func(orgRepo repository.OrganizationRepository, sedeRepo repository.SedeRepository) error {
		if err := orgRepo.Create(org); err != nil {
			return err
		}
		return sedeRepo.Create(sede)
	})
	if err != nil {
		return nil, err
	}
	return &dto.OnboardingResponse{
		Organization:  *toOrganizationResponse(org),
		SedePrincipal: *toSedeResponse(sede),
	}, nil
}

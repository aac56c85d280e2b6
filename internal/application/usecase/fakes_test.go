package usecase_test

import (
	"context"

	"github.com/zentraqms/zentra-api/internal/application/usecase"
	"github.com/zentraqms/zentra-api/internal/domain/entity"
	"github.com/zentraqms/zentra-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type memOrgRepo struct {
	byID  map[string]*entity.Organization
	byNIT map[string]*entity.Organization
}

func newMemOrgRepo() *memOrgRepo {
	return &memOrgRepo{
		byID:  make(map[string]*entity.Organization),
		byNIT: make(map[string]*entity.Organization),
	}
}

func (m *memOrgRepo) Create(org *entity.Organization) error {
	cp := *org
	m.byID[org.ID] = &cp
	m.byNIT[org.NIT] = &cp
	return nil
}

func (m *memOrgRepo) GetByID(id string) (*entity.Organization, error)   { return m.byID[id], nil }
func (m *memOrgRepo) GetByNIT(nit string) (*entity.Organization, error) { return m.byNIT[nit], nil }

func (m *memOrgRepo) Update(org *entity.Organization) error {
	cp := *org
	m.byID[org.ID] = &cp
	m.byNIT[org.NIT] = &cp
	return nil
}

func (m *memOrgRepo) List(limit, offset int) ([]*entity.Organization, error) {
	var list []*entity.Organization
	for _, org := range m.byID {
		list = append(list, org)
	}
	return list, nil
}

func (m *memOrgRepo) Delete(id string) error {
	if org, ok := m.byID[id]; ok {
		delete(m.byNIT, org.NIT)
		delete(m.byID, id)
	}
	return nil
}

type memSedeRepo struct {
	byID     map[string]*entity.Sede
	byCodigo map[string]*entity.Sede
}

func newMemSedeRepo() *memSedeRepo {
	return &memSedeRepo{
		byID:     make(map[string]*entity.Sede),
		byCodigo: make(map[string]*entity.Sede),
	}
}

func (m *memSedeRepo) Create(sede *entity.Sede) error {
	cp := *sede
	m.byID[sede.ID] = &cp
	m.byCodigo[sede.CodigoHabilitacion] = &cp
	return nil
}

func (m *memSedeRepo) GetByID(id string) (*entity.Sede, error) { return m.byID[id], nil }

func (m *memSedeRepo) GetByCodigoHabilitacion(codigo string) (*entity.Sede, error) {
	return m.byCodigo[codigo], nil
}

func (m *memSedeRepo) Update(sede *entity.Sede) error {
	cp := *sede
	m.byID[sede.ID] = &cp
	m.byCodigo[sede.CodigoHabilitacion] = &cp
	return nil
}

func (m *memSedeRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Sede, error) {
	var list []*entity.Sede
	for _, sede := range m.byID {
		if sede.OrganizationID == organizationID {
			list = append(list, sede)
		}
	}
	return list, nil
}

func (m *memSedeRepo) Delete(id string) error {
	if sede, ok := m.byID[id]; ok {
		delete(m.byCodigo, sede.CodigoHabilitacion)
		delete(m.byID, id)
	}
	return nil
}

// memTxRunner ejecuta el callback del onboarding sin transacción real; si el
// callback falla, deshace lo creado para simular el rollback.
type memTxRunner struct {
	orgRepo  *memOrgRepo
	sedeRepo *memSedeRepo
}

var _ usecase.OnboardingTxRunner = (*memTxRunner)(nil)

func (m *memTxRunner) Run(_ context.Context, fn func(
	orgRepo repository.OrganizationRepository,
	sedeRepo repository.SedeRepository,
) error) error {
	orgSnapshot := make(map[string]*entity.Organization, len(m.orgRepo.byID))
	for k, v := range m.orgRepo.byID {
		orgSnapshot[k] = v
	}
	if err := fn(m.orgRepo, m.sedeRepo); err != nil {
		m.orgRepo.byID = orgSnapshot
		return err
	}
	return nil
}

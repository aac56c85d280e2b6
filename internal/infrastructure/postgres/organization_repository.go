package postgres

import (
	"context"
	"fmt"

	"github.com/zentraqms/zentra-api/internal/domain"
	"github.com/zentraqms/zentra-api/internal/domain/entity"
	"github.com/zentraqms/zentra-api/internal/domain/repository"
)

// Asegura que OrganizationRepo implementa repository.OrganizationRepository.
var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

const organizationColumns = `id, razon_social, nit, digito_verificacion, naturaleza, direccion, telefono, email, estado, created_at, updated_at`

// Create persiste una nueva organización. NIT único a nivel nacional.
func (r *OrganizationRepo) Create(org *entity.Organization) error {
	query := `
		INSERT INTO organizations (` + organizationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		org.ID, org.RazonSocial, org.NIT, org.DigitoVerificacion, org.Naturaleza,
		org.Direccion, org.Telefono, org.Email, org.Estado,
		org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByNIT obtiene una organización por NIT (solo dígitos, sin DV).
func (r *OrganizationRepo) GetByNIT(nit string) (*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE nit = $1`
	return r.scanOne(query, nit)
}

// Update actualiza una organización existente.
func (r *OrganizationRepo) Update(org *entity.Organization) error {
	query := `
		UPDATE organizations
		   SET razon_social = $2, naturaleza = $3, direccion = $4, telefono = $5,
		       email = $6, estado = $7, updated_at = $8
		 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		org.ID, org.RazonSocial, org.Naturaleza, org.Direccion,
		org.Telefono, org.Email, org.Estado, org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update organization: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve organizaciones con paginación.
func (r *OrganizationRepo) List(limit, offset int) ([]*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Organization
	for rows.Next() {
		var o entity.Organization
		if err := rows.Scan(&o.ID, &o.RazonSocial, &o.NIT, &o.DigitoVerificacion, &o.Naturaleza,
			&o.Direccion, &o.Telefono, &o.Email, &o.Estado, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete elimina una organización por ID.
func (r *OrganizationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepo) scanOne(query string, arg any) (*entity.Organization, error) {
	var o entity.Organization
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&o.ID, &o.RazonSocial, &o.NIT, &o.DigitoVerificacion, &o.Naturaleza,
		&o.Direccion, &o.Telefono, &o.Email, &o.Estado, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &o, nil
}

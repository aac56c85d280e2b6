package postgres

import (
	"context"
	"fmt"

	"github.com/zentraqms/zentra-api/internal/domain"
	"github.com/zentraqms/zentra-api/internal/domain/entity"
	"github.com/zentraqms/zentra-api/internal/domain/repository"
)

var _ repository.SedeRepository = (*SedeRepo)(nil)

// SedeRepo implementación del puerto SedeRepository sobre PostgreSQL.
type SedeRepo struct {
	q Querier
}

// NewSedeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSedeRepository(q Querier) *SedeRepo {
	return &SedeRepo{q: q}
}

const sedeColumns = `id, organization_id, codigo_habilitacion, nombre, departamento, municipio, direccion, telefono, es_principal, estado, created_at, updated_at`

// Create persiste una nueva sede. Código de habilitación único a nivel nacional.
func (r *SedeRepo) Create(sede *entity.Sede) error {
	query := `
		INSERT INTO sedes (` + sedeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		sede.ID, sede.OrganizationID, sede.CodigoHabilitacion, sede.Nombre,
		sede.Departamento, sede.Municipio, sede.Direccion, sede.Telefono,
		sede.EsPrincipal, sede.Estado, sede.CreatedAt, sede.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sede: %w", err)
	}
	return nil
}

// GetByID obtiene una sede por ID.
func (r *SedeRepo) GetByID(id string) (*entity.Sede, error) {
	query := `SELECT ` + sedeColumns + ` FROM sedes WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCodigoHabilitacion obtiene una sede por su código de habilitación.
func (r *SedeRepo) GetByCodigoHabilitacion(codigo string) (*entity.Sede, error) {
	query := `SELECT ` + sedeColumns + ` FROM sedes WHERE codigo_habilitacion = $1`
	return r.scanOne(query, codigo)
}

// Update actualiza una sede existente.
func (r *SedeRepo) Update(sede *entity.Sede) error {
	query := `
		UPDATE sedes
		   SET nombre = $2, direccion = $3, telefono = $4, es_principal = $5,
		       estado = $6, updated_at = $7
		 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		sede.ID, sede.Nombre, sede.Direccion, sede.Telefono,
		sede.EsPrincipal, sede.Estado, sede.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sede: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByOrganization devuelve las sedes de una organización con paginación.
// La sede principal va primero.
func (r *SedeRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Sede, error) {
	query := `
		SELECT ` + sedeColumns + ` FROM sedes
		 WHERE organization_id = $1
		 ORDER BY es_principal DESC, created_at ASC
		 LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sedes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sede
	for rows.Next() {
		var s entity.Sede
		if err := rows.Scan(&s.ID, &s.OrganizationID, &s.CodigoHabilitacion, &s.Nombre,
			&s.Departamento, &s.Municipio, &s.Direccion, &s.Telefono,
			&s.EsPrincipal, &s.Estado, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sede: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una sede por ID.
func (r *SedeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sedes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sede: %w", err)
	}
	return nil
}

func (r *SedeRepo) scanOne(query string, arg any) (*entity.Sede, error) {
	var s entity.Sede
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.OrganizationID, &s.CodigoHabilitacion, &s.Nombre,
		&s.Departamento, &s.Municipio, &s.Direccion, &s.Telefono,
		&s.EsPrincipal, &s.Estado, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sede: %w", err)
	}
	return &s, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/zentraqms/zentra-api/internal/domain"
	"github.com/zentraqms/zentra-api/internal/domain/entity"
	"github.com/zentraqms/zentra-api/internal/domain/repository"
)

var _ repository.CargoRepository = (*CargoRepo)(nil)

// CargoRepo implementación del puerto CargoRepository sobre PostgreSQL.
// asignacion_basica es NUMERIC y viaja como shopspring/decimal gracias al
// codec registrado en el pool.
type CargoRepo struct {
	q Querier
}

// NewCargoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCargoRepository(q Querier) *CargoRepo {
	return &CargoRepo{q: q}
}

const cargoColumns = `id, organization_id, nombre, nivel, cargo_superior_id, asignacion_basica, estado, created_at, updated_at`

// Create persiste un nuevo cargo.
func (r *CargoRepo) Create(cargo *entity.Cargo) error {
	query := `
		INSERT INTO cargos (` + cargoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		cargo.ID, cargo.OrganizationID, cargo.Nombre, cargo.Nivel,
		cargo.CargoSuperiorID, cargo.AsignacionBasica, cargo.Estado,
		cargo.CreatedAt, cargo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cargo: %w", err)
	}
	return nil
}

// GetByID obtiene un cargo por ID.
func (r *CargoRepo) GetByID(id string) (*entity.Cargo, error) {
	query := `SELECT ` + cargoColumns + ` FROM cargos WHERE id = $1`
	var c entity.Cargo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.OrganizationID, &c.Nombre, &c.Nivel, &c.CargoSuperiorID,
		&c.AsignacionBasica, &c.Estado, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cargo: %w", err)
	}
	return &c, nil
}

// Update actualiza un cargo existente.
func (r *CargoRepo) Update(cargo *entity.Cargo) error {
	query := `
		UPDATE cargos
		   SET nombre = $2, nivel = $3, cargo_superior_id = $4,
		       asignacion_basica = $5, estado = $6, updated_at = $7
		 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		cargo.ID, cargo.Nombre, cargo.Nivel, cargo.CargoSuperiorID,
		cargo.AsignacionBasica, cargo.Estado, cargo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cargo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByOrganization devuelve los cargos de una organización, directivos primero.
func (r *CargoRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Cargo, error) {
	query := `
		SELECT ` + cargoColumns + ` FROM cargos
		 WHERE organization_id = $1
		 ORDER BY nivel ASC, nombre ASC
		 LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cargos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Cargo
	for rows.Next() {
		var c entity.Cargo
		if err := rows.Scan(&c.ID, &c.OrganizationID, &c.Nombre, &c.Nivel, &c.CargoSuperiorID,
			&c.AsignacionBasica, &c.Estado, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cargo: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// HasSubordinates informa si algún cargo tiene a este como superior (O(1) vía índice).
func (r *CargoRepo) HasSubordinates(id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM cargos WHERE cargo_superior_id = $1)`
	var has bool
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&has); err != nil {
		return false, fmt.Errorf("check subordinates: %w", err)
	}
	return has, nil
}

// Delete elimina un cargo por ID.
func (r *CargoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cargos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cargo: %w", err)
	}
	return nil
}

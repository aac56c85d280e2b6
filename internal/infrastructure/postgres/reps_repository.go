package postgres

import (
	"context"
	"fmt"

	"github.com/zentraqms/zentra-api/internal/domain/entity"
	"github.com/zentraqms/zentra-api/internal/domain/repository"
)

var _ repository.RepsRepository = (*RepsRepo)(nil)

// RepsRepo implementación del puerto RepsRepository sobre PostgreSQL.
type RepsRepo struct {
	q Querier
}

// NewRepsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRepsRepository(q Querier) *RepsRepo {
	return &RepsRepo{q: q}
}

const repsColumns = `id, codigo_habilitacion, nit, digito_verificacion, razon_social, tipo_prestador, departamento, municipio, naturaleza, email, imported_at, updated_at`

// Upsert inserta o actualiza por codigo_habilitacion. Devuelve true si insertó.
// En la actualización se conserva el id y el imported_at originales.
func (r *RepsRepo) Upsert(ctx context.Context, rec *entity.RepsRecord) (bool, error) {
	query := `
		INSERT INTO reps_records (` + repsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (codigo_habilitacion) DO UPDATE SET
			nit = EXCLUDED.nit,
			digito_verificacion = EXCLUDED.digito_verificacion,
			razon_social = EXCLUDED.razon_social,
			tipo_prestador = EXCLUDED.tipo_prestador,
			departamento = EXCLUDED.departamento,
			municipio = EXCLUDED.municipio,
			naturaleza = EXCLUDED.naturaleza,
			email = EXCLUDED.email,
			updated_at = EXCLUDED.updated_at
		RETURNING (xmax = 0)` // true si la fila es nueva
	var inserted bool
	err := r.q.QueryRow(ctx, query,
		rec.ID, rec.CodigoHabilitacion, rec.NIT, rec.DigitoVerificacion,
		rec.RazonSocial, rec.TipoPrestador, rec.Departamento, rec.Municipio,
		rec.Naturaleza, rec.Email, rec.ImportedAt, rec.UpdatedAt,
	).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("upsert reps record: %w", err)
	}
	return inserted, nil
}

// GetByCodigoHabilitacion obtiene un registro por código de habilitación.
func (r *RepsRepo) GetByCodigoHabilitacion(ctx context.Context, codigo string) (*entity.RepsRecord, error) {
	query := `SELECT ` + repsColumns + ` FROM reps_records WHERE codigo_habilitacion = $1`
	var rec entity.RepsRecord
	err := r.q.QueryRow(ctx, query, codigo).Scan(
		&rec.ID, &rec.CodigoHabilitacion, &rec.NIT, &rec.DigitoVerificacion,
		&rec.RazonSocial, &rec.TipoPrestador, &rec.Departamento, &rec.Municipio,
		&rec.Naturaleza, &rec.Email, &rec.ImportedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reps record: %w", err)
	}
	return &rec, nil
}

// List devuelve registros REPS paginados, opcionalmente por departamento
// (nombre ya normalizado por la importación).
func (r *RepsRepo) List(ctx context.Context, departamento string, limit, offset int) ([]*entity.RepsRecord, error) {
	query := `
		SELECT ` + repsColumns + ` FROM reps_records
		 WHERE ($1 = '' OR departamento = $1)
		 ORDER BY razon_social ASC
		 LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, departamento, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reps records: %w", err)
	}
	defer rows.Close()

	var list []*entity.RepsRecord
	for rows.Next() {
		var rec entity.RepsRecord
		if err := rows.Scan(&rec.ID, &rec.CodigoHabilitacion, &rec.NIT, &rec.DigitoVerificacion,
			&rec.RazonSocial, &rec.TipoPrestador, &rec.Departamento, &rec.Municipio,
			&rec.Naturaleza, &rec.Email, &rec.ImportedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan reps record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Count cuenta registros, opcionalmente por departamento.
func (r *RepsRepo) Count(ctx context.Context, departamento string) (int, error) {
	const query = `SELECT count(*) FROM reps_records WHERE ($1 = '' OR departamento = $1)`
	var n int
	if err := r.q.QueryRow(ctx, query, departamento).Scan(&n); err != nil {
		return 0, fmt.Errorf("count reps records: %w", err)
	}
	return n, nil
}

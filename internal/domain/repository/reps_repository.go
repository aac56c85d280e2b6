package repository

import (
	"context"

	"github.com/zentraqms/zentra-api/internal/domain/entity"
)

// RepsRepository define el puerto de persistencia para registros REPS.
// Las operaciones reciben context porque la importación es batch y puede
// ejecutarse dentro de una transacción larga.
type RepsRepository interface {
	// Upsert inserta o actualiza por codigo_habilitacion. Devuelve true si insertó.
	Upsert(ctx context.Context, record *entity.RepsRecord) (inserted bool, err error)
	GetByCodigoHabilitacion(ctx context.Context, codigo string) (*entity.RepsRecord, error)
	List(ctx context.Context, departamento string, limit, offset int) ([]*entity.RepsRecord, error)
	Count(ctx context.Context, departamento string) (int, error)
}

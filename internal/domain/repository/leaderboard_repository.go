package repository

import (
	"context"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
)

// LeaderboardRepository lectura del ranking precalculado.
type LeaderboardRepository interface {
	// List devuelve las filas de (segment, layer) ordenadas por layer_value y rank ascendentes.
	// Solo incluye empleados presentes en el directorio.
	List(ctx context.Context, segment, layer string) ([]entity.LeaderboardEntry, error)
}

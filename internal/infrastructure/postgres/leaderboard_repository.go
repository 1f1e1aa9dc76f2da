package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
)

var _ repository.LeaderboardRepository = (*LeaderboardRepo)(nil)

type LeaderboardRepo struct {
	db *DB
}

func NewLeaderboardRepository(db *DB) *LeaderboardRepo {
	return &LeaderboardRepo{db: db}
}

// List une leaderboard con executive para nombre y cluster.
func (r *LeaderboardRepo) List(ctx context.Context, segment, layer string) ([]entity.LeaderboardEntry, error) {
	const query = `
		SELECT lb.employee_id, COALESCE(e.name, ''), COALESCE(e.cluster, ''), COALESCE(lb.layer_value, ''),
		       lb.ranking, lb.achievement
		FROM leaderboard lb
		INNER JOIN executive e ON e.employee_id = lb.employee_id
		WHERE lb.day_segment = $1 AND lb.layer = $2
		ORDER BY lb.layer_value ASC, lb.ranking ASC`

	var list []entity.LeaderboardEntry
	err := r.db.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, segment, layer)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var e entity.LeaderboardEntry
			if err := rows.Scan(&e.EmployeeID, &e.Name, &e.Cluster, &e.LayerValue, &e.Rank, &e.Achievement); err != nil {
				return fmt.Errorf("scan leaderboard: %w", err)
			}
			list = append(list, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	return list, nil
}

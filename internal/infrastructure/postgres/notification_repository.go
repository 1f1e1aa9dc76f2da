package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

type NotificationRepo struct {
	db *DB
}

func NewNotificationRepository(db *DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Latest notificaciones vigentes a la fecha asOf.
func (r *NotificationRepo) Latest(ctx context.Context, asOf time.Time, limit int) ([]entity.Notification, error) {
	const query = `
		SELECT id, date, COALESCE(heading, ''), COALESCE(description, ''), priority
		FROM sa_app_notification
		WHERE date <= $1
		ORDER BY priority DESC NULLS LAST, date DESC
		LIMIT $2`

	var list []entity.Notification
	err := r.db.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, asOf, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var n entity.Notification
			if err := rows.Scan(&n.ID, &n.Date, &n.Heading, &n.Description, &n.Priority); err != nil {
				return fmt.Errorf("scan notification: %w", err)
			}
			list = append(list, n)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

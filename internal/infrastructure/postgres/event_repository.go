package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo log append-only de eventos de la app.
type EventRepo struct {
	db *DB
}

// NewEventRepository construye el adaptador.
func NewEventRepository(db *DB) *EventRepo {
	return &EventRepo{db: db}
}

// Append inserta el evento y devuelve el id asignado en e.ID.
func (r *EventRepo) Append(ctx context.Context, e *entity.AppEvent) error {
	const query = `
		INSERT INTO sa_app_events (entry_date, entry_time, employee_id, event_name, meta_data)
		VALUES ($1::date, $2::time, $3, $4, $5::jsonb)
		RETURNING id`
	err := r.db.WithConn(ctx, func(q Querier) error {
		return q.QueryRow(ctx, query, e.EntryDate, e.EntryTime, e.EmployeeID, e.EventName, string(e.MetaData)).Scan(&e.ID)
	})
	if err != nil {
		return fmt.Errorf("insert app event: %w", err)
	}
	return nil
}

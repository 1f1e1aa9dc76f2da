package repository

import (
	"context"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
)

// EventRepository log de eventos de la app (solo inserción).
type EventRepository interface {
	// Append inserta el evento y completa event.ID.
	Append(ctx context.Context, event *entity.AppEvent) error
}

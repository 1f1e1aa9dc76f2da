package repository

import (
	"context"
	"time"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
)

// NotificationRepository feed global de notificaciones.
type NotificationRepository interface {
	// Latest devuelve hasta limit notificaciones con fecha <= asOf, por prioridad y fecha descendentes.
	Latest(ctx context.Context, asOf time.Time, limit int) ([]entity.Notification, error)
}

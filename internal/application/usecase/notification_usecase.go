package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/SalesExec-api/internal/application/dto"
	"github.com/jhoicas/SalesExec-api/internal/application/ports"
	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
)

const notificationLimit = 10

// Niveles de prioridad que cambian el tipo y el badge de la notificación.
var (
	urgentPriority = decimal.NewFromInt(8)
	newPriority    = decimal.NewFromInt(5)
)

// NotificationUseCase feed global de notificaciones vigentes a hoy.
type NotificationUseCase struct {
	repo  repository.NotificationRepository
	cache ports.Cache
	ttl   time.Duration
	loc   *time.Location
	now   func() time.Time
}

// NewNotificationUseCase cache nil equivale a sin cache; loc define el día de hoy.
func NewNotificationUseCase(repo repository.NotificationRepository, cache ports.Cache, ttl time.Duration, loc *time.Location) *NotificationUseCase {
	if cache == nil {
		cache = ports.NopCache{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &NotificationUseCase{repo: repo, cache: cache, ttl: ttl, loc: loc, now: time.Now}
}

// Latest las 10 notificaciones con fecha <= hoy, por prioridad y fecha descendentes.
func (uc *NotificationUseCase) Latest(ctx context.Context) (*dto.NotificationsResponse, error) {
	now := uc.now().In(uc.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)
	key := "notifications:" + today.Format("2006-01-02")

	var cached dto.NotificationsResponse
	if hit, err := uc.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	list, err := uc.repo.Latest(ctx, today, notificationLimit)
	if err != nil {
		return nil, fmt.Errorf("notifications: %w", err)
	}
	out := &dto.NotificationsResponse{Notifications: make([]dto.NotificationDTO, 0, len(list))}
	for _, n := range list {
		out.Notifications = append(out.Notifications, toNotification(n))
	}
	out.Count = len(out.Notifications)

	_ = uc.cache.Set(ctx, key, out, uc.ttl)
	return out, nil
}

func toNotification(n entity.Notification) dto.NotificationDTO {
	priority := decimal.Zero
	if n.Priority.Valid {
		priority = n.Priority.Decimal
	}
	typ, badge := notificationTier(priority)

	title := n.Heading
	if strings.TrimSpace(title) == "" {
		title = "Notification"
	}
	var date *string
	if n.Date != nil {
		s := n.Date.Format("January 02, 2006")
		date = &s
	}
	return dto.NotificationDTO{
		ID:       n.ID,
		Title:    title,
		Content:  n.Description,
		Date:     date,
		Type:     typ,
		Badge:    badge,
		Priority: priority.InexactFloat64(),
	}
}

// notificationTier >=8 alert/URGENT, >=5 announcement/NEW, resto update sin badge.
func notificationTier(priority decimal.Decimal) (string, *string) {
	badge := func(s string) *string { return &s }
	switch {
	case priority.GreaterThanOrEqual(urgentPriority):
		return "alert", badge("URGENT")
	case priority.GreaterThanOrEqual(newPriority):
		return "announcement", badge("NEW")
	default:
		return "update", nil
	}
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Notification fila de sa_app_notification.
type Notification struct {
	ID          int64
	Date        *time.Time
	Heading     string
	Description string
	Priority    decimal.NullDecimal
}

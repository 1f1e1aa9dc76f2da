package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/SalesExec-api/internal/application/dto"
	"github.com/jhoicas/SalesExec-api/internal/domain"
	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
)

var emptyMeta = json.RawMessage(`{}`)

// EventUseCase registra eventos de uso de la app.
type EventUseCase struct {
	repo repository.EventRepository
	loc  *time.Location
	now  func() time.Time
}

// NewEventUseCase loc define la fecha y hora guardadas en el evento.
func NewEventUseCase(repo repository.EventRepository, loc *time.Location) *EventUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &EventUseCase{repo: repo, loc: loc, now: time.Now}
}

// Log guarda el evento. subject es el employee_id del token; el cuerpo no puede registrar eventos de otro.
func (uc *EventUseCase) Log(ctx context.Context, subject string, in dto.LogEventRequest) (*dto.EventDTO, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	eventName := strings.TrimSpace(in.EventName)
	if employeeID == "" || eventName == "" {
		return nil, domain.Invalid("Missing required fields: employee_id and event_name")
	}
	if employeeID != subject {
		return nil, domain.ErrForbidden
	}

	now := uc.now().In(uc.loc)
	ev := &entity.AppEvent{
		EntryDate:  now.Format("2006-01-02"),
		EntryTime:  now.Format("15:04:05"),
		EmployeeID: employeeID,
		EventName:  eventName,
		MetaData:   normalizeMeta(in.MetaData),
	}
	if err := uc.repo.Append(ctx, ev); err != nil {
		return nil, fmt.Errorf("log event: %w", err)
	}
	return &dto.EventDTO{
		ID:         ev.ID,
		EntryDate:  ev.EntryDate,
		EntryTime:  ev.EntryTime,
		EmployeeID: ev.EmployeeID,
		EventName:  ev.EventName,
		MetaData:   json.RawMessage(ev.MetaData),
	}, nil
}

// normalizeMeta convierte meta_data en un documento JSON:
// ausente o vacío → {}, string con JSON → ese JSON, otro string → {"raw": s}, resto tal cual.
func normalizeMeta(raw json.RawMessage) []byte {
	trimmed := bytes.TrimSpace(raw)
	if isFalsyJSON(trimmed) {
		return emptyMeta
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return emptyMeta
		}
		inner := bytes.TrimSpace([]byte(s))
		if len(inner) == 0 {
			return emptyMeta
		}
		if json.Valid(inner) {
			return compactJSON(inner)
		}
		wrapped, err := json.Marshal(map[string]string{"raw": s})
		if err != nil {
			return emptyMeta
		}
		return wrapped
	}

	if !json.Valid(trimmed) {
		return emptyMeta
	}
	return compactJSON(trimmed)
}

func isFalsyJSON(b []byte) bool {
	switch string(b) {
	case "", "null", "false", "0", "{}", "[]", `""`:
		return true
	}
	return false
}

func compactJSON(b []byte) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return b
	}
	return buf.Bytes()
}

package dto

import "encoding/json"

// LogEventRequest entrada de /events/log. meta_data acepta objeto, string JSON, texto libre o ausencia.
type LogEventRequest struct {
	EmployeeID string          `json:"employee_id"`
	EventName  string          `json:"event_name"`
	MetaData   json.RawMessage `json:"meta_data"`
}

// EventDTO evento tal como quedó guardado.
type EventDTO struct {
	ID         int64           `json:"id"`
	EntryDate  string          `json:"entry_date"`
	EntryTime  string          `json:"entry_time"`
	EmployeeID string          `json:"employee_id"`
	EventName  string          `json:"event_name"`
	MetaData   json.RawMessage `json:"meta_data"`
}

package entity

// AppEvent evento de analítica de la app (sa_app_events, solo inserción).
type AppEvent struct {
	ID         int64
	EntryDate  string // YYYY-MM-DD
	EntryTime  string // HH:MM:SS
	EmployeeID string
	EventName  string
	MetaData   []byte // JSON
}

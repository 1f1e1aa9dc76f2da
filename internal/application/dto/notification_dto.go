package dto

// NotificationDTO elemento del feed. Type y Badge dependen de la prioridad.
type NotificationDTO struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Date     *string `json:"date"`
	Type     string  `json:"type"`
	Badge    *string `json:"badge"`
	Priority float64 `json:"priority"`
}

// NotificationsResponse payload de /notifications.
type NotificationsResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
	Count         int               `json:"count"`
}

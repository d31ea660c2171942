package notifications

// Notification es un recordatorio de la campana. Read es por viewer.
type Notification struct {
	ID          int
	Title       string
	Description string
	Time        string
	Read        bool
}

// Inbox es lo que ve un viewer: la lista y cuántas quedan sin leer.
type Inbox struct {
	Items  []Notification
	Unread int
}

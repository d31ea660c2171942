package notifications

import "context"

// Repository sirve el catálogo. El flag Read del catálogo es el estado
// inicial de cada viewer.
type Repository interface {
	List(ctx context.Context) ([]Notification, error)
}

// ReadState guarda qué notificaciones marcó como leídas cada viewer.
type ReadState interface {
	ReadIDs(ctx context.Context, viewer string) (map[int]bool, error)
	MarkRead(ctx context.Context, viewer string, ids []int) error
}

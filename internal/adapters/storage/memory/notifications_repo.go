package memory

import (
	"context"
	"strings"
	"sync"

	"dog-life/internal/domain/notifications"
)

type notificationRepo struct {
	mu    sync.RWMutex
	items []notifications.Notification
}

func NewNotificationRepo(items []notifications.Notification) notifications.Repository {
	return &notificationRepo{items: append([]notifications.Notification(nil), items...)}
}

func (r *notificationRepo) List(ctx context.Context) ([]notifications.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notifications.Notification, len(r.items))
	copy(out, r.items)
	return out, nil
}

// readStateRepo guarda los ids leídos por viewer. Nunca desmarca.
type readStateRepo struct {
	mu       sync.RWMutex
	byViewer map[string]map[int]bool
}

func NewReadStateRepo() notifications.ReadState {
	return &readStateRepo{byViewer: make(map[string]map[int]bool)}
}

func (r *readStateRepo) ReadIDs(ctx context.Context, viewer string) (map[int]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.byViewer[strings.TrimSpace(viewer)]
	out := make(map[int]bool, len(src))
	for id := range src {
		out[id] = true
	}
	return out, nil
}

func (r *readStateRepo) MarkRead(ctx context.Context, viewer string, ids []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	viewer = strings.TrimSpace(viewer)

	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.byViewer[viewer]
	if !ok {
		set = make(map[int]bool, len(ids))
		r.byViewer[viewer] = set
	}
	for _, id := range ids {
		set[id] = true
	}
	return nil
}

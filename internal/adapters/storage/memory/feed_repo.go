package memory

import (
	"context"
	"sync"

	"dog-life/internal/domain/feed"
)

type feedRepo struct {
	mu    sync.RWMutex
	posts []feed.Post
}

func NewFeedRepo(posts []feed.Post) feed.Repository {
	return &feedRepo{posts: append([]feed.Post(nil), posts...)}
}

func (r *feedRepo) List(ctx context.Context) ([]feed.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]feed.Post, len(r.posts))
	copy(out, r.posts)
	return out, nil
}

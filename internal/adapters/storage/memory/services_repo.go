package memory

import (
	"context"
	"sync"

	"dog-life/internal/domain/services"
)

type servicesRepo struct {
	mu   sync.RWMutex
	list []services.Provider
}

func NewServicesRepo(list []services.Provider) services.Repository {
	out := make([]services.Provider, 0, len(list))
	for _, p := range list {
		out = append(out, cloneProvider(p))
	}
	return &servicesRepo{list: out}
}

func (r *servicesRepo) List(ctx context.Context) ([]services.Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]services.Provider, 0, len(r.list))
	for _, p := range r.list {
		out = append(out, cloneProvider(p))
	}
	return out, nil
}

func (r *servicesRepo) GetByID(ctx context.Context, id int) (services.Provider, error) {
	if err := ctx.Err(); err != nil {
		return services.Provider{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.list {
		if p.ID == id {
			return cloneProvider(p), nil
		}
	}
	return services.Provider{}, services.ErrNotFound
}

func cloneProvider(p services.Provider) services.Provider {
	p.Tags = append([]string(nil), p.Tags...)
	p.Badges = append([]string(nil), p.Badges...)
	p.Reviews = append([]services.Review(nil), p.Reviews...)
	return p
}

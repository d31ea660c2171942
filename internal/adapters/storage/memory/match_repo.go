package memory

import (
	"context"
	"sync"

	"dog-life/internal/domain/match"
)

type matchRepo struct {
	mu       sync.RWMutex
	profiles []match.Profile
	events   []match.Event
}

func NewMatchRepo(profiles []match.Profile, events []match.Event) match.Repository {
	return &matchRepo{
		profiles: append([]match.Profile(nil), profiles...),
		events:   append([]match.Event(nil), events...),
	}
}

func (r *matchRepo) Profiles(ctx context.Context) ([]match.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		p.Personality = append([]string(nil), p.Personality...)
		p.Interests = append([]string(nil), p.Interests...)
		out = append(out, p)
	}
	return out, nil
}

func (r *matchRepo) Events(ctx context.Context) ([]match.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Event, 0, len(r.events))
	for _, e := range r.events {
		e.Tags = append([]string(nil), e.Tags...)
		out = append(out, e)
	}
	return out, nil
}

package notifications

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo  Repository
	state ReadState
}

func NewService(repo Repository, state ReadState) *Service {
	return &Service{repo: repo, state: state}
}

func (s *Service) List(ctx context.Context, viewer string) (Inbox, error) {
	viewer = strings.TrimSpace(viewer)
	if viewer == "" {
		return Inbox{}, ErrInvalidInput
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return Inbox{}, err
	}
	read, err := s.state.ReadIDs(ctx, viewer)
	if err != nil {
		return Inbox{}, err
	}

	out := Inbox{Items: make([]Notification, 0, len(items))}
	for _, n := range items {
		if read[n.ID] {
			n.Read = true
		}
		if !n.Read {
			out.Unread++
		}
		out.Items = append(out.Items, n)
	}
	return out, nil
}

// MarkAllRead marca todo el catálogo como leído para el viewer.
func (s *Service) MarkAllRead(ctx context.Context, viewer string) (Inbox, error) {
	viewer = strings.TrimSpace(viewer)
	if viewer == "" {
		return Inbox{}, ErrInvalidInput
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return Inbox{}, err
	}

	ids := make([]int, 0, len(items))
	for _, n := range items {
		ids = append(ids, n.ID)
	}
	if err := s.state.MarkRead(ctx, viewer, ids); err != nil {
		return Inbox{}, err
	}
	return s.List(ctx, viewer)
}

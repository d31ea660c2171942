package match

import (
	"context"

	"dog-life/internal/ports/assets"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Playdates(ctx context.Context) ([]Profile, error) {
	list, err := s.repo.Profiles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Profile, 0, len(list))
	for _, p := range list {
		p.Image = assets.ImageOr(p.Image, assets.DefaultDogImage)
		p.OwnerImage = assets.ImageOr(p.OwnerImage, assets.DefaultOwnerImage)
		p.Compatibility = clampPercent(p.Compatibility)
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) Events(ctx context.Context) ([]Event, error) {
	list, err := s.repo.Events(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Event, 0, len(list))
	for _, e := range list {
		e.Image = assets.ImageOr(e.Image, assets.DefaultEventImage)
		out = append(out, e)
	}
	return out, nil
}

func clampPercent(v int) int {
	return min(max(v, 0), 100)
}

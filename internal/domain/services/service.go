package services

import (
	"context"
	"errors"
	"strings"

	"dog-life/internal/ports/assets"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("service provider not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Categories() []FilterType {
	out := make([]FilterType, len(filterTypes))
	copy(out, filterTypes)
	return out
}

// List filtra por categoría y por texto (nombre, resumen o tags, sin
// distinguir mayúsculas). Mantiene el orden del catálogo.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Provider, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]Provider, 0, len(all))
	for _, p := range all {
		if filter.Category != "" && filter.Category != CategoryAll && p.Type != filter.Category {
			continue
		}
		if q != "" && !matches(p, q) {
			continue
		}
		out = append(out, withDefaults(p))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int) (Provider, error) {
	if id <= 0 {
		return Provider{}, ErrInvalidInput
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Provider{}, err
	}
	return withDefaults(p), nil
}

func matches(p Provider, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Summary), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func withDefaults(p Provider) Provider {
	p.Image = assets.ImageOr(p.Image, assets.DefaultServiceImage)
	if len(p.Reviews) > 0 {
		reviews := make([]Review, len(p.Reviews))
		for i, r := range p.Reviews {
			r.UserAvatar = assets.ImageOr(r.UserAvatar, assets.DefaultAvatar)
			reviews[i] = r
		}
		p.Reviews = reviews
	}
	return p
}

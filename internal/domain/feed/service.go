package feed

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

// List devuelve los posts en el orden del catálogo, con avatar e imagen
// resueltos a sus defaults si vienen vacíos.
func (s *Service) List(ctx context.Context) ([]Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		p.Avatar = assets.ImageOr(p.Avatar, assets.DefaultAvatar)
		p.Image = assets.ImageOr(p.Image, assets.DefaultPostImage)
		out = append(out, p)
	}
	return out, nil
}

package home

import (
	"context"
	"fmt"

	"dog-life/internal/domain/dogs"
	"dog-life/internal/domain/feed"
	"dog-life/internal/domain/notifications"
	"dog-life/internal/ports/assets"

	"golang.org/x/sync/errgroup"
)

// Screen es todo lo que muestra Home en una sola respuesta.
type Screen struct {
	Pupsona       dogs.Pupsona
	Weather       WeatherAlert
	Posts         []feed.Post
	Notifications notifications.Inbox
}

type Service struct {
	repo          Repository
	feed          *feed.Service
	notifications *notifications.Service
}

func NewService(repo Repository, feedSvc *feed.Service, notifSvc *notifications.Service) *Service {
	return &Service{repo: repo, feed: feedSvc, notifications: notifSvc}
}

// Screen arma Home pidiendo cada sección en paralelo. Si una falla,
// se cancelan las demás y vuelve el primer error.
func (s *Service) Screen(ctx context.Context, viewer string) (Screen, error) {
	var out Screen

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.repo.Pupsona(gCtx)
		if err != nil {
			return fmt.Errorf("loading pupsona: %w", err)
		}
		p.Avatar = assets.ImageOr(p.Avatar, assets.DefaultPupsona)
		out.Pupsona = p
		return nil
	})
	g.Go(func() error {
		w, err := s.repo.Weather(gCtx)
		if err != nil {
			return fmt.Errorf("loading weather: %w", err)
		}
		w.Condition = ParseCondition(string(w.Condition))
		out.Weather = w
		return nil
	})
	g.Go(func() error {
		posts, err := s.feed.List(gCtx)
		if err != nil {
			return fmt.Errorf("loading feed: %w", err)
		}
		out.Posts = posts
		return nil
	})
	g.Go(func() error {
		in, err := s.notifications.List(gCtx, viewer)
		if err != nil {
			return fmt.Errorf("loading notifications: %w", err)
		}
		out.Notifications = in
		return nil
	})

	if err := g.Wait(); err != nil {
		return Screen{}, err
	}
	return out, nil
}

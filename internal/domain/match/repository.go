package match

import "context"

type Repository interface {
	Profiles(ctx context.Context) ([]Profile, error)
	Events(ctx context.Context) ([]Event, error)
}

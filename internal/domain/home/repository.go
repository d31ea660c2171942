package home

import (
	"context"

	"dog-life/internal/domain/dogs"
)

type Repository interface {
	Pupsona(ctx context.Context) (dogs.Pupsona, error)
	Weather(ctx context.Context) (WeatherAlert, error)
}

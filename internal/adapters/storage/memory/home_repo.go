package memory

import (
	"context"

	"dog-life/internal/domain/dogs"
	"dog-life/internal/domain/home"
)

// homeRepo es inmutable: sirve siempre el mismo pupsona y clima.
type homeRepo struct {
	pupsona dogs.Pupsona
	weather home.WeatherAlert
}

func NewHomeRepo(p dogs.Pupsona, w home.WeatherAlert) home.Repository {
	return &homeRepo{pupsona: p, weather: w}
}

func (r *homeRepo) Pupsona(ctx context.Context) (dogs.Pupsona, error) {
	return r.pupsona, ctx.Err()
}

func (r *homeRepo) Weather(ctx context.Context) (home.WeatherAlert, error) {
	return r.weather, ctx.Err()
}

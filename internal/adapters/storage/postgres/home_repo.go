package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dog-life/internal/domain/dogs"
	"dog-life/internal/domain/home"
)

var errNoRow = errors.New("postgres: catalog row missing")

type HomeRepo struct {
	db *sql.DB
}

func NewHomeRepo(db *sql.DB) *HomeRepo {
	return &HomeRepo{db: db}
}

func (r *HomeRepo) Pupsona(ctx context.Context) (dogs.Pupsona, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT name, avatar, diary_entry, gender
		FROM pupsonas
		ORDER BY id
		LIMIT 1
	`)

	var p dogs.Pupsona
	var gender string
	if err := row.Scan(&p.Name, &p.Avatar, &p.DiaryEntry, &gender); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dogs.Pupsona{}, fmt.Errorf("%w: pupsonas", errNoRow)
		}
		return dogs.Pupsona{}, err
	}

	g, err := dogs.ParseGender(gender)
	if err != nil {
		return dogs.Pupsona{}, fmt.Errorf("pupsona gender %q: %w", gender, err)
	}
	p.Gender = g
	return p, nil
}

func (r *HomeRepo) Weather(ctx context.Context) (home.WeatherAlert, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT condition, temperature_f, recommendation
		FROM walk_weather
		ORDER BY id DESC
		LIMIT 1
	`)

	var w home.WeatherAlert
	var cond string
	if err := row.Scan(&cond, &w.TemperatureF, &w.Recommendation); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return home.WeatherAlert{}, fmt.Errorf("%w: walk_weather", errNoRow)
		}
		return home.WeatherAlert{}, err
	}
	w.Condition = home.ParseCondition(cond)
	return w, nil
}

package postgres

import (
	"context"
	"database/sql"

	"dog-life/internal/domain/dogs"
	"dog-life/internal/domain/match"

	"github.com/jackc/pgx/v5/pgtype"
)

type MatchRepo struct {
	db *sql.DB
}

func NewMatchRepo(db *sql.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

func (r *MatchRepo) Profiles(ctx context.Context) ([]match.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, breed, age, gender, image, distance, compatibility,
			personality, interests, owner_name, owner_image
		FROM dog_profiles
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := pgtype.NewMap()
	out := make([]match.Profile, 0)
	for rows.Next() {
		var p match.Profile
		var gender string
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Breed,
			&p.Age,
			&gender,
			&p.Image,
			&p.Distance,
			&p.Compatibility,
			m.SQLScanner(&p.Personality),
			m.SQLScanner(&p.Interests),
			&p.Owner,
			&p.OwnerImage,
		); err != nil {
			return nil, err
		}
		p.Gender = dogs.Gender(gender)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *MatchRepo) Events(ctx context.Context) ([]match.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, event_date, event_time, location, attendees, image, tags
		FROM dog_events
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := pgtype.NewMap()
	out := make([]match.Event, 0)
	for rows.Next() {
		var e match.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.Time, &e.Location, &e.Attendees, &e.Image, m.SQLScanner(&e.Tags)); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

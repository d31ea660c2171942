package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dog-life/internal/domain/services"

	"github.com/jackc/pgx/v5/pgtype"
)

const providerColumns = `
	id, name, type, image, rating, review_count, distance, summary,
	tags, COALESCE(badges, '{}'), COALESCE(ai_review_summary, '')
`

type ServicesRepo struct {
	db *sql.DB
}

func NewServicesRepo(db *sql.DB) *ServicesRepo {
	return &ServicesRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProvider lee una fila de providerColumns. Los text[] se decodifican
// con pgtype porque database/sql no sabe de arrays.
func scanProvider(m *pgtype.Map, row rowScanner) (services.Provider, error) {
	var p services.Provider
	var typ string
	err := row.Scan(
		&p.ID,
		&p.Name,
		&typ,
		&p.Image,
		&p.Rating,
		&p.ReviewCount,
		&p.Distance,
		&p.Summary,
		m.SQLScanner(&p.Tags),
		m.SQLScanner(&p.Badges),
		&p.AIReviewSummary,
	)
	if err != nil {
		return services.Provider{}, err
	}
	p.Type = services.Category(typ)
	return p, nil
}

func (r *ServicesRepo) List(ctx context.Context) ([]services.Provider, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+providerColumns+` FROM service_providers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := pgtype.NewMap()
	out := make([]services.Provider, 0)
	for rows.Next() {
		p, err := scanProvider(m, rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byID, err := r.reviews(ctx, 0)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Reviews = byID[out[i].ID]
	}
	return out, nil
}

func (r *ServicesRepo) GetByID(ctx context.Context, id int) (services.Provider, error) {
	if id <= 0 {
		return services.Provider{}, services.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+providerColumns+` FROM service_providers WHERE id = $1`, id)
	p, err := scanProvider(pgtype.NewMap(), row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return services.Provider{}, services.ErrNotFound
		}
		return services.Provider{}, err
	}

	byID, err := r.reviews(ctx, id)
	if err != nil {
		return services.Provider{}, err
	}
	p.Reviews = byID[id]
	return p, nil
}

// reviews agrupa reseñas por proveedor. providerID 0 trae todas.
func (r *ServicesRepo) reviews(ctx context.Context, providerID int) (map[int][]services.Review, error) {
	query := `
		SELECT provider_id, id, user_name, user_avatar, rating, comment, review_date
		FROM service_reviews
	`
	args := []any{}
	if providerID > 0 {
		query += " WHERE provider_id = $1"
		args = append(args, providerID)
	}
	query += " ORDER BY provider_id, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int][]services.Review)
	for rows.Next() {
		var pid int
		var rv services.Review
		if err := rows.Scan(&pid, &rv.ID, &rv.UserName, &rv.UserAvatar, &rv.Rating, &rv.Comment, &rv.Date); err != nil {
			return nil, err
		}
		out[pid] = append(out[pid], rv)
	}
	return out, rows.Err()
}

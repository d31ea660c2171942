package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dog-life/internal/domain/health"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type HealthRepo struct {
	db *sql.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

func (r *HealthRepo) Summary(ctx context.Context) (health.Summary, error) {
	var s health.Summary

	row := r.db.QueryRowContext(ctx, `
		SELECT current_weight, target_min, target_max, six_month_change
		FROM health_summary
		ORDER BY id DESC
		LIMIT 1
	`)
	if err := row.Scan(&s.CurrentWeight, &s.TargetMin, &s.TargetMax, &s.SixMonthChange); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return health.Summary{}, fmt.Errorf("%w: health_summary", errNoRow)
		}
		return health.Summary{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT label, value, note
		FROM health_tiles
		ORDER BY position
	`)
	if err != nil {
		return health.Summary{}, err
	}
	defer rows.Close()

	s.Tiles = make([]health.Tile, 0, 4)
	for rows.Next() {
		var t health.Tile
		if err := rows.Scan(&t.Label, &t.Value, &t.Note); err != nil {
			return health.Summary{}, err
		}
		s.Tiles = append(s.Tiles, t)
	}
	return s, rows.Err()
}

// likeEscaper deja % y _ del usuario como literales.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// vetVisitsQuery arma el SELECT con búsqueda en reason + notes y LIMIT.
func vetVisitsQuery(filter health.ListFilter) (string, []any) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT id, visit_date, reason, notes
		FROM vet_visits
	`)

	args := []any{}
	argN := 1

	if q := strings.TrimSpace(filter.Query); q != "" {
		sb.WriteString(fmt.Sprintf(` WHERE (reason ILIKE $%d ESCAPE '\' OR notes ILIKE $%d ESCAPE '\')`, argN, argN))
		args = append(args, "%"+likeEscaper.Replace(q)+"%")
		argN++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	sb.WriteString(" ORDER BY id")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	return sb.String(), args
}

func (r *HealthRepo) VetVisits(ctx context.Context, filter health.ListFilter) ([]health.VetVisit, error) {
	query, args := vetVisitsQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.VetVisit, 0)
	for rows.Next() {
		var v health.VetVisit
		if err := rows.Scan(&v.ID, &v.Date, &v.Reason, &v.Notes); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *HealthRepo) Vaccinations(ctx context.Context) ([]health.Vaccination, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, given_date, due_date, status
		FROM vaccinations
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.Vaccination, 0)
	for rows.Next() {
		var v health.Vaccination
		var status string
		if err := rows.Scan(&v.ID, &v.Name, &v.Date, &v.DueDate, &status); err != nil {
			return nil, err
		}
		v.Status = health.VaccineStatus(status)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *HealthRepo) Weight(ctx context.Context) ([]health.WeightPoint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT month, weight
		FROM weight_points
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.WeightPoint, 0)
	for rows.Next() {
		var p health.WeightPoint
		if err := rows.Scan(&p.Month, &p.Weight); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *HealthRepo) Behavior(ctx context.Context) ([]health.BehaviorPoint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT month, energy, anxiety
		FROM behavior_points
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.BehaviorPoint, 0)
	for rows.Next() {
		var p health.BehaviorPoint
		if err := rows.Scan(&p.Month, &p.Energy, &p.Anxiety); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

package memory

import (
	"context"
	"strings"
	"sync"

	"dog-life/internal/domain/health"
)

const defaultListLimit = 50

type HealthData struct {
	Summary      health.Summary
	VetVisits    []health.VetVisit
	Vaccinations []health.Vaccination
	Weight       []health.WeightPoint
	Behavior     []health.BehaviorPoint
}

type healthRepo struct {
	mu   sync.RWMutex
	data HealthData
}

func NewHealthRepo(data HealthData) health.Repository {
	return &healthRepo{data: data}
}

func (r *healthRepo) Summary(ctx context.Context) (health.Summary, error) {
	if err := ctx.Err(); err != nil {
		return health.Summary{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s := r.data.Summary
	s.Tiles = append([]health.Tile{}, s.Tiles...)
	return s, nil
}

// VetVisits respeta el orden de origen (más reciente primero en los datos).
func (r *healthRepo) VetVisits(ctx context.Context, filter health.ListFilter) ([]health.VetVisit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	q := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]health.VetVisit, 0)
	for _, v := range r.data.VetVisits {
		if q != "" && !containsFold(q, v.Reason, v.Notes) {
			continue
		}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *healthRepo) Vaccinations(ctx context.Context) ([]health.Vaccination, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]health.Vaccination{}, r.data.Vaccinations...), nil
}

func (r *healthRepo) Weight(ctx context.Context) ([]health.WeightPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]health.WeightPoint{}, r.data.Weight...), nil
}

func (r *healthRepo) Behavior(ctx context.Context) ([]health.BehaviorPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]health.BehaviorPoint{}, r.data.Behavior...), nil
}

// containsFold: q (ya en minúsculas) dentro de alguno de los campos, cada uno
// por separado, igual que el OR de ILIKE en postgres.
func containsFold(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

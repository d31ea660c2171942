package health

import "context"

type Repository interface {
	Summary(ctx context.Context) (Summary, error)
	VetVisits(ctx context.Context, filter ListFilter) ([]VetVisit, error)
	Vaccinations(ctx context.Context) ([]Vaccination, error)
	Weight(ctx context.Context) ([]WeightPoint, error)
	Behavior(ctx context.Context) ([]BehaviorPoint, error)
}

type ListFilter struct {
	Query string
	Limit int
}

package feed

import "context"

type Repository interface {
	List(ctx context.Context) ([]Post, error)
}

package services

import "context"

type Repository interface {
	List(ctx context.Context) ([]Provider, error)
	GetByID(ctx context.Context, id int) (Provider, error)
}

type ListFilter struct {
	Category Category
	Query    string
}

package askai

import "context"

type Repository interface {
	Popular(ctx context.Context) ([]string, error)
	Community(ctx context.Context) ([]CommunityQuestion, error)
}

type ListFilter struct {
	Category Category
	Query    string
}

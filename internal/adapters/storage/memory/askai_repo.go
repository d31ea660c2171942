package memory

import (
	"context"
	"sync"

	"dog-life/internal/domain/askai"
)

type askAIRepo struct {
	mu        sync.RWMutex
	popular   []string
	community []askai.CommunityQuestion
}

func NewAskAIRepo(popular []string, community []askai.CommunityQuestion) askai.Repository {
	return &askAIRepo{
		popular:   append([]string(nil), popular...),
		community: append([]askai.CommunityQuestion(nil), community...),
	}
}

func (r *askAIRepo) Popular(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string{}, r.popular...), nil
}

func (r *askAIRepo) Community(ctx context.Context) ([]askai.CommunityQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]askai.CommunityQuestion{}, r.community...), nil
}

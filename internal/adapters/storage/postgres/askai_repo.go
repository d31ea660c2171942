package postgres

import (
	"context"
	"database/sql"

	"dog-life/internal/domain/askai"
)

type AskAIRepo struct {
	db *sql.DB
}

func NewAskAIRepo(db *sql.DB) *AskAIRepo {
	return &AskAIRepo{db: db}
}

func (r *AskAIRepo) Popular(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT question
		FROM popular_questions
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *AskAIRepo) Community(ctx context.Context) ([]askai.CommunityQuestion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_name, avatar, breed, age, question, ai_response, replies, category
		FROM community_questions
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]askai.CommunityQuestion, 0)
	for rows.Next() {
		var q askai.CommunityQuestion
		var cat string
		if err := rows.Scan(&q.ID, &q.User, &q.Avatar, &q.Breed, &q.Age, &q.Question, &q.AIResponse, &q.Replies, &cat); err != nil {
			return nil, err
		}
		q.Category = askai.Category(cat)
		out = append(out, q)
	}
	return out, rows.Err()
}

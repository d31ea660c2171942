package postgres

import (
	"context"
	"database/sql"

	"dog-life/internal/domain/feed"
)

type FeedRepo struct {
	db *sql.DB
}

func NewFeedRepo(db *sql.DB) *FeedRepo {
	return &FeedRepo{db: db}
}

func (r *FeedRepo) List(ctx context.Context) ([]feed.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, avatar, image, caption, likes, comments, time_ago
		FROM posts
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feed.Post, 0)
	for rows.Next() {
		var p feed.Post
		if err := rows.Scan(&p.ID, &p.Username, &p.Avatar, &p.Image, &p.Caption, &p.Likes, &p.Comments, &p.TimeAgo); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

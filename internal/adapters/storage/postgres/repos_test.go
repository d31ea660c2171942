package postgres

import (
	"context"
	"strings"
	"testing"

	"dog-life/internal/domain/askai"
	"dog-life/internal/domain/feed"
	"dog-life/internal/domain/health"
	"dog-life/internal/domain/home"
	"dog-life/internal/domain/match"
	"dog-life/internal/domain/notifications"
	"dog-life/internal/domain/services"
)

var (
	_ feed.Repository          = (*FeedRepo)(nil)
	_ notifications.Repository = (*NotificationsRepo)(nil)
	_ home.Repository          = (*HomeRepo)(nil)
	_ askai.Repository         = (*AskAIRepo)(nil)
	_ health.Repository        = (*HealthRepo)(nil)
	_ services.Repository      = (*ServicesRepo)(nil)
	_ match.Repository         = (*MatchRepo)(nil)
)

func TestVetVisitsQuery_DefaultLimit(t *testing.T) {
	q, args := vetVisitsQuery(health.ListFilter{})

	if strings.Contains(q, "ILIKE") {
		t.Fatalf("no search expected, got %s", q)
	}
	if !strings.Contains(q, "LIMIT $1") {
		t.Fatalf("expected LIMIT $1, got %s", q)
	}
	if len(args) != 1 || args[0] != defaultListLimit {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestVetVisitsQuery_SearchAndClampedLimit(t *testing.T) {
	q, args := vetVisitsQuery(health.ListFilter{Query: "  rabies ", Limit: 1000})

	if !strings.Contains(q, `(reason ILIKE $1 ESCAPE '\' OR notes ILIKE $1 ESCAPE '\')`) {
		t.Fatalf("expected ILIKE on $1, got %s", q)
	}
	if !strings.Contains(q, "LIMIT $2") {
		t.Fatalf("expected LIMIT $2, got %s", q)
	}
	if len(args) != 2 || args[0] != "%rabies%" || args[1] != maxListLimit {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestVetVisitsQuery_EscapesWildcards(t *testing.T) {
	cases := map[string]string{
		"_":      `%\_%`,
		"100%":   `%100\%%`,
		`a\b`:    `%a\\b%`,
		"rabies": "%rabies%",
	}
	for in, want := range cases {
		_, args := vetVisitsQuery(health.ListFilter{Query: in})
		if len(args) != 2 || args[0] != want {
			t.Fatalf("query %q: expected pattern %q, got %v", in, want, args)
		}
	}
}

func TestOpen_RejectsEmptyDSN(t *testing.T) {
	if _, err := Open(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}

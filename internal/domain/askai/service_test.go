package askai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dog-life/internal/platform/delay"
)

type fakeRepo struct{ questions []CommunityQuestion }

func (f fakeRepo) Popular(context.Context) ([]string, error) {
	return []string{"How often should I bathe my dog?"}, nil
}
func (f fakeRepo) Community(context.Context) ([]CommunityQuestion, error) { return f.questions, nil }

func questions() []CommunityQuestion {
	return []CommunityQuestion{
		{ID: 1, Breed: "Golden Retriever", Question: "Thunderstorm anxiety tips?", Category: CategoryBehavior},
		{ID: 2, Breed: "Pomeranian", Question: "Stop pulling on the LEASH?", Category: CategoryTraining},
		{ID: 3, Breed: "Beagle", Question: "Introduce my dog to a new baby?", Category: CategoryBehavior},
		{ID: 4, Breed: "Husky", Question: "How much exercise?", Category: CategoryHealth},
	}
}

func ids(list []CommunityQuestion) []int {
	out := make([]int, 0, len(list))
	for _, q := range list {
		out = append(out, q.ID)
	}
	return out
}

func TestCommunity_Filters(t *testing.T) {
	svc := NewService(fakeRepo{questions: questions()}, Options{})
	ctx := context.Background()

	cases := []struct {
		name   string
		filter ListFilter
		want   []int
	}{
		{"all", ListFilter{Category: CategoryAll}, []int{1, 2, 3, 4}},
		{"empty category is all", ListFilter{}, []int{1, 2, 3, 4}},
		{"behavior keeps order", ListFilter{Category: CategoryBehavior}, []int{1, 3}},
		{"search is case-insensitive", ListFilter{Query: "leash"}, []int{2}},
		{"search by breed", ListFilter{Query: "husky"}, []int{4}},
		{"category and search", ListFilter{Category: CategoryBehavior, Query: "baby"}, []int{3}},
		{"no match", ListFilter{Category: CategoryHealth, Query: "baby"}, []int{}},
		{"search does not span fields", ListFilter{Query: "tips? golden"}, []int{}},
		{"search does not span fields with double space", ListFilter{Query: "tips?  golden"}, []int{}},
	}

	for _, tc := range cases {
		got, err := svc.Community(ctx, tc.filter)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		g := ids(got)
		if len(g) != len(tc.want) {
			t.Fatalf("%s: got %v want %v", tc.name, g, tc.want)
		}
		for i := range g {
			if g[i] != tc.want[i] {
				t.Fatalf("%s: got %v want %v", tc.name, g, tc.want)
			}
		}
	}
}

func TestAsk_KeywordRules(t *testing.T) {
	svc := NewService(fakeRepo{}, Options{Sleeper: delay.None})
	ctx := context.Background()

	cases := map[string]string{
		"My PUPPY bites":          "Puppies require special attention",
		"What should my dog eat?": "A balanced diet is crucial",
		"How do I train recall?":  "Positive reinforcement training",
		"Why does he howl?":       "Dogs thrive on routine",
		"puppy food":              "Puppies require special attention",
	}
	for q, want := range cases {
		a, err := svc.Ask(ctx, q)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", q, err)
		}
		if !strings.HasPrefix(a.Response, answerPrefix) || !strings.Contains(a.Response, want) {
			t.Fatalf("%q: unexpected response %q", q, a.Response)
		}
	}
}

func TestAsk_BlankQuestion(t *testing.T) {
	svc := NewService(fakeRepo{}, Options{Sleeper: delay.None})
	if _, err := svc.Ask(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAsk_CancelledDuringDelay(t *testing.T) {
	svc := NewService(fakeRepo{}, Options{Sleeper: delay.Timer{}, AnswerDelay: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := svc.Ask(ctx, "food?"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory(" Training "); !ok || c != CategoryTraining {
		t.Fatalf("expected training, got %q %v", c, ok)
	}
	if _, ok := ParseCategory("cats"); ok {
		t.Fatalf("expected unknown category to fail")
	}
}

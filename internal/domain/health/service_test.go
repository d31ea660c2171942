package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"dog-life/internal/platform/delay"
)

type fakeRepo struct {
	lastFilter ListFilter
}

func (f *fakeRepo) Summary(context.Context) (Summary, error) { return Summary{}, nil }
func (f *fakeRepo) VetVisits(_ context.Context, filter ListFilter) ([]VetVisit, error) {
	f.lastFilter = filter
	return nil, nil
}
func (f *fakeRepo) Vaccinations(context.Context) ([]Vaccination, error)   { return nil, nil }
func (f *fakeRepo) Weight(context.Context) ([]WeightPoint, error)         { return nil, nil }
func (f *fakeRepo) Behavior(context.Context) ([]BehaviorPoint, error)     { return nil, nil }

func TestValidateMedia(t *testing.T) {
	cases := []struct {
		in      Media
		kind    MediaKind
		wantErr error
	}{
		{Media{ContentType: "image/png", Size: 1024}, MediaPhoto, nil},
		{Media{ContentType: "VIDEO/mp4", Size: MaxMediaSize}, MediaVideo, nil},
		{Media{ContentType: "application/pdf", Size: 10}, "", ErrInvalidMedia},
		{Media{ContentType: "", Size: 10}, "", ErrInvalidMedia},
		{Media{ContentType: "image/jpeg", Size: MaxMediaSize + 1}, "", ErrMediaTooLarge},
	}

	for _, tc := range cases {
		kind, err := ValidateMedia(tc.in)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("%+v: expected %v, got %v", tc.in, tc.wantErr, err)
			}
			continue
		}
		if err != nil || kind != tc.kind {
			t.Fatalf("%+v: expected %q, got %q err=%v", tc.in, tc.kind, kind, err)
		}
	}
}

func TestAnalyze_ReturnsFixedResults(t *testing.T) {
	svc := NewService(&fakeRepo{}, Options{Sleeper: delay.None})

	res, err := svc.Analyze(context.Background(), Media{ContentType: "image/jpeg", Size: 2048})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Kind != MediaPhoto || len(res.Results) != 3 {
		t.Fatalf("unexpected analysis: %+v", res)
	}
	if res.Results[0].Condition != "Skin Irritation" || res.Results[0].Confidence != 87 {
		t.Fatalf("unexpected first result: %+v", res.Results[0])
	}
	if !res.Results[1].RequiresVet || res.Results[2].Severity != SeverityLow {
		t.Fatalf("unexpected results: %+v", res.Results)
	}

	for _, r := range res.Results {
		if r.Confidence < 0 || r.Confidence > 100 {
			t.Fatalf("confidence out of range: %+v", r)
		}
	}

	// la copia devuelta no comparte memoria con la lista fija
	res.Results[0].Condition = "mutated"
	again, _ := svc.Analyze(context.Background(), Media{ContentType: "image/jpeg"})
	if again.Results[0].Condition != "Skin Irritation" {
		t.Fatalf("mock results must not be mutable from callers")
	}
}

func TestAnalyze_InvalidMediaDoesNotWait(t *testing.T) {
	svc := NewService(&fakeRepo{}, Options{Sleeper: delay.Timer{}, AnalysisDelay: time.Hour})

	start := time.Now()
	if _, err := svc.Analyze(context.Background(), Media{ContentType: "text/plain"}); !errors.Is(err, ErrInvalidMedia) {
		t.Fatalf("expected ErrInvalidMedia, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("validation must fail before the simulated delay")
	}
}

func TestVetVisits_ClampsLimit(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, Options{})

	if _, err := svc.VetVisits(context.Background(), ListFilter{Query: "  ear ", Limit: 1000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Limit != maxVisitLimit || repo.lastFilter.Query != "ear" {
		t.Fatalf("unexpected filter passed to repo: %+v", repo.lastFilter)
	}

	if _, err := svc.VetVisits(context.Background(), ListFilter{Limit: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

package thoughts

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"dog-life/internal/domain/dogs"
	"dog-life/internal/platform/chance"
	"dog-life/internal/platform/delay"
)

func TestGenerateThought_MemberOfGenderPool(t *testing.T) {
	svc := NewService(Options{Rand: chance.NewSeeded(7), Sleeper: delay.None})

	if len(maleThoughts) != 12 || len(femaleThoughts) != 12 {
		t.Fatalf("expected 12 thoughts per gender")
	}

	for i := 0; i < 50; i++ {
		got, err := svc.GenerateThought(context.Background(), "/happy-golden-pup.png", dogs.GenderMale)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Contains(maleThoughts, got) {
			t.Fatalf("male thought not in male pool: %q", got)
		}

		got, err = svc.GenerateThought(context.Background(), "/playful-beagle.png", dogs.GenderFemale)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Contains(femaleThoughts, got) {
			t.Fatalf("female thought not in female pool: %q", got)
		}
	}
}

func TestGenerateThought_DeterministicWithFixedSource(t *testing.T) {
	svc := NewService(Options{Rand: chance.NewFixed(3), Sleeper: delay.None})

	got, err := svc.GenerateThought(context.Background(), "", dogs.GenderFemale)
	if err != nil || got != femaleThoughts[3] {
		t.Fatalf("expected femaleThoughts[3], got %q err=%v", got, err)
	}
}

func TestGenerateThought_FallbackOnBadPick(t *testing.T) {
	svc := NewService(Options{Rand: chance.NewFixed(99), Sleeper: delay.None})

	got, err := svc.GenerateThought(context.Background(), "", dogs.GenderMale)
	if err != nil || got != FallbackThought {
		t.Fatalf("expected fallback thought, got %q err=%v", got, err)
	}
}

func TestGenerateThought_RejectsUnknownGender(t *testing.T) {
	svc := NewService(Options{Sleeper: delay.None})

	if _, err := svc.GenerateThought(context.Background(), "", dogs.Gender("cat")); !errors.Is(err, dogs.ErrInvalidGender) {
		t.Fatalf("expected ErrInvalidGender, got %v", err)
	}
}

func TestGenerateThought_CancelledDuringDelay(t *testing.T) {
	svc := NewService(Options{Sleeper: delay.Timer{}, ThoughtDelay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.GenerateThought(ctx, "", dogs.GenderMale); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSelectSample_NeverEmptyNeverOtherPool(t *testing.T) {
	src := chance.NewSeeded(11)
	for i := 0; i < 100; i++ {
		m := SelectSample(src, dogs.GenderMale)
		if m == "" || !slices.Contains(voiceSamples[dogs.GenderMale], m) {
			t.Fatalf("male sample outside male pool: %q", m)
		}
		f := SelectSample(src, dogs.GenderFemale)
		if f == "" || !slices.Contains(voiceSamples[dogs.GenderFemale], f) {
			t.Fatalf("female sample outside female pool: %q", f)
		}
	}
}

func TestSelectSample_FallsBackToDefault(t *testing.T) {
	if got := SelectSample(chance.NewFixed(42), dogs.GenderFemale); got != DefaultVoiceSample {
		t.Fatalf("expected default sample, got %q", got)
	}
	if got := SelectSample(chance.NewFixed(0), dogs.Gender("")); got != DefaultVoiceSample {
		t.Fatalf("expected default sample for unknown gender, got %q", got)
	}
}

func TestGenerateVoice(t *testing.T) {
	svc := NewService(Options{Rand: chance.NewFixed(1)})

	v, err := svc.GenerateVoice(context.Background(), "woof", dogs.GenderFemale)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.SampleURL != "/female-husky-voice.mp3" || v.Message == "" {
		t.Fatalf("unexpected voice: %+v", v)
	}

	if _, err := svc.GenerateVoice(context.Background(), "  ", dogs.GenderMale); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAllVoiceSamples_Unique(t *testing.T) {
	all := AllVoiceSamples()
	if len(all) != 5 {
		t.Fatalf("expected 5 distinct samples, got %v", all)
	}
}

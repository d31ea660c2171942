package thoughts

import (
	"context"
	"errors"
	"strings"
	"time"

	"dog-life/internal/domain/dogs"
	"dog-life/internal/platform/chance"
	"dog-life/internal/platform/delay"
)

var ErrInvalidInput = errors.New("invalid input")

const demoVoiceMessage = "This endpoint is now in demo mode. Using pre-recorded samples instead."

type Options struct {
	Rand         chance.Source
	Sleeper      delay.Sleeper
	ThoughtDelay time.Duration
}

// Service implementa los dos stubs "generativos": pensamiento y voz.
type Service struct {
	rand         chance.Source
	sleeper      delay.Sleeper
	thoughtDelay time.Duration
}

func NewService(opts Options) *Service {
	r := opts.Rand
	if r == nil {
		r = chance.Default
	}
	return &Service{
		rand:         r,
		sleeper:      delay.Or(opts.Sleeper),
		thoughtDelay: opts.ThoughtDelay,
	}
}

// SelectSample elige una voz del pool del género. Nunca devuelve "":
// si el pool no da un valor usable cae en DefaultVoiceSample.
func SelectSample(r chance.Source, g dogs.Gender) string {
	s, ok := chance.Pick(r, voiceSamples[g])
	if !ok || strings.TrimSpace(s) == "" {
		return DefaultVoiceSample
	}
	return s
}

// GenerateThought simula la llamada a un modelo: espera el delay y elige un
// pensamiento del pool del género. La imagen no influye en el resultado.
func (s *Service) GenerateThought(ctx context.Context, imageRef string, gender dogs.Gender) (string, error) {
	if !gender.Valid() {
		return "", dogs.ErrInvalidGender
	}

	pool := femaleThoughts
	if gender == dogs.GenderMale {
		pool = maleThoughts
	}
	thought, ok := chance.Pick(s.rand, pool)

	if err := s.sleeper.Wait(ctx, s.thoughtDelay); err != nil {
		return "", err
	}

	if !ok || strings.TrimSpace(thought) == "" {
		return FallbackThought, nil
	}
	return thought, nil
}

// Voice es la respuesta de la voz en modo demo.
type Voice struct {
	Message   string
	SampleURL string
}

// GenerateVoice no sintetiza nada: devuelve una muestra pregrabada.
func (s *Service) GenerateVoice(ctx context.Context, text string, gender dogs.Gender) (Voice, error) {
	if strings.TrimSpace(text) == "" {
		return Voice{}, ErrInvalidInput
	}
	if !gender.Valid() {
		return Voice{}, dogs.ErrInvalidGender
	}
	if err := ctx.Err(); err != nil {
		return Voice{}, err
	}
	return Voice{
		Message:   demoVoiceMessage,
		SampleURL: SelectSample(s.rand, gender),
	}, nil
}

// SelectSample con el source del servicio.
func (s *Service) SelectSample(g dogs.Gender) string {
	return SelectSample(s.rand, g)
}

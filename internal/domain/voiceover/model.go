package voiceover

import (
	"errors"
	"time"

	"dog-life/internal/domain/dogs"
)

var (
	ErrNotFound         = errors.New("voiceover session not found")
	ErrDisposed         = errors.New("voiceover session disposed")
	ErrEmptySource      = errors.New("empty audio source")
	ErrNotReady         = errors.New("audio not ready")
	ErrPlaybackRejected = errors.New("playback rejected")
	ErrAudioLoad        = errors.New("audio load failed")
	ErrBusy             = errors.New("voice generation already running")
	ErrClosed           = errors.New("voiceover manager closed")
)

// State del recurso de audio de la sesión.
//
//	idle -> loading -> ready -> playing -> ready -> idle
//
// error se alcanza desde loading o playing y solo se sale con un Acquire nuevo.
// @Enum idle, loading, ready, playing, error
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StatePlaying State = "playing"
	StateError   State = "error"
)

// Step del widget: 1 subir foto, 2 pensando, 3 con voz.
type Step int

const (
	StepUpload   Step = 1
	StepThinking Step = 2
	StepVoiced   Step = 3
)

// Imágenes de demo que "sube" el pipeline cuando no se fija una.
var demoImages = []string{"/happy-golden-pup.png", "/golden-closeup.png", "/playful-beagle.png"}

const defaultDemoImage = "/happy-golden-pup.png"

// Snapshot es una copia consistente del estado de la sesión.
type Snapshot struct {
	ID    string
	Owner string

	Source    string
	State     State
	Ready     bool
	Playing   bool
	Elapsed   time.Duration
	Duration  time.Duration
	Progress  float64
	LastError string

	Step       Step
	Image      string
	Gender     dogs.Gender
	Thought    string
	Generating bool

	UpdatedAt time.Time
}

// progress = elapsed/duration*100 en [0,100]; 0 sin duración conocida.
func progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	p := float64(elapsed) / float64(duration) * 100
	return min(max(p, 0), 100)
}

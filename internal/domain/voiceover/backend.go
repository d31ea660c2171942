package voiceover

import (
	"context"
	"time"

	"dog-life/internal/domain/dogs"
	"dog-life/internal/domain/thoughts"
)

// Callbacks que un Resource dispara mientras vive. Pueden llegar desde
// cualquier goroutine; después de Close el backend puede dejar de llamarlas,
// pero la sesión igual descarta las que lleguen tarde.
type Callbacks struct {
	Loaded     func(duration time.Duration)
	TimeUpdate func(elapsed time.Duration)
	Ended      func()
	Error      func(err error)
}

// Resource es un audio reproducible.
type Resource interface {
	// Play arranca la reproducción. Puede ser rechazada (p.ej. política de autoplay).
	Play(ctx context.Context) error
	Pause()
	Seek(elapsed time.Duration)
	Ended() bool
	// Close limpia el source y desconecta callbacks.
	Close() error
}

// Backend abre recursos de audio. Open no debe bloquear esperando la carga:
// el resultado llega por Callbacks.Loaded o Callbacks.Error.
type Backend interface {
	Open(ctx context.Context, src string, cb Callbacks) (Resource, error)
}

// Generator son los stubs de pensamiento y voz que usa el pipeline.
type Generator interface {
	GenerateThought(ctx context.Context, imageRef string, gender dogs.Gender) (string, error)
	GenerateVoice(ctx context.Context, text string, gender dogs.Gender) (thoughts.Voice, error)
}

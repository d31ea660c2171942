// Package delay simula latencia de servicios "remotos" que en realidad son stubs.
// Toda espera es cancelable por contexto.
package delay

import (
	"context"
	"time"
)

type Sleeper interface {
	Wait(ctx context.Context, d time.Duration) error
}

// Timer espera de verdad.
type Timer struct{}

func (Timer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// None no espera; solo respeta la cancelación.
var None Sleeper = none{}

type none struct{}

func (none) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Or devuelve s, o None si s es nil.
func Or(s Sleeper) Sleeper {
	if s == nil {
		return None
	}
	return s
}

// Package sim reproduce audio "de mentira": resuelve la referencia contra el
// asset store, toma la duración de la metadata y avanza el tiempo con un
// ticker. Sirve para el servidor (no hay parlantes) y para tests.
package sim

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dog-life/internal/domain/voiceover"
	"dog-life/internal/platform/logger"
	"dog-life/internal/ports/assets"
)

const (
	DefaultTick     = 250 * time.Millisecond
	DefaultDuration = 3 * time.Second
)

var (
	ErrNotAudio        = errors.New("asset is not audio")
	ErrNotLoaded       = errors.New("audio not loaded")
	ErrAutoplayBlocked = errors.New("autoplay blocked")
	ErrClosed          = errors.New("audio resource closed")
)

type Options struct {
	Assets assets.Store

	// Tick es cada cuánto avanza el tiempo mientras suena.
	Tick time.Duration
	// DefaultDuration para audio sin duración en la metadata.
	DefaultDuration time.Duration
	// AutoplayBlocked hace que todo Play sea rechazado.
	AutoplayBlocked bool

	Log logger.Logger
}

// Backend implementa voiceover.Backend.
type Backend struct {
	assets   assets.Store
	tick     time.Duration
	fallback time.Duration
	blocked  bool
	log      logger.Logger
}

func New(opts Options) *Backend {
	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	d := opts.DefaultDuration
	if d <= 0 {
		d = DefaultDuration
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Backend{
		assets:   opts.Assets,
		tick:     tick,
		fallback: d,
		blocked:  opts.AutoplayBlocked,
		log:      log,
	}
}

// Open arranca la carga en background y vuelve enseguida.
func (b *Backend) Open(ctx context.Context, src string, cb voiceover.Callbacks) (voiceover.Resource, error) {
	if b.assets == nil {
		return nil, errors.New("sim: nil asset store")
	}

	lctx, cancel := context.WithCancel(ctx)
	r := &resource{
		src:     src,
		cb:      cb,
		tick:    b.tick,
		blocked: b.blocked,
		cancel:  cancel,
	}

	go r.load(lctx, b.assets, b.fallback, b.log)
	return r, nil
}

type resource struct {
	src     string
	tick    time.Duration
	blocked bool
	cancel  context.CancelFunc

	mu       sync.Mutex
	cb       voiceover.Callbacks
	loaded   bool
	duration time.Duration
	elapsed  time.Duration
	playing  bool
	ended    bool
	closed   bool
	stop     chan struct{}
}

func (r *resource) load(ctx context.Context, store assets.Store, fallback time.Duration, log logger.Logger) {
	m, err := store.Lookup(ctx, r.src)
	if err == nil && m.Kind != assets.KindAudio {
		err = fmt.Errorf("%w: %s", ErrNotAudio, r.src)
	}
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Debug("sim audio load failed", logger.Fields{"source": r.src, "error": err})
		r.mu.Lock()
		fn := r.cb.Error
		if r.closed {
			fn = nil
		}
		r.mu.Unlock()

		if fn != nil {
			fn(err)
		}
		return
	}

	d := m.Duration
	if d <= 0 {
		d = fallback
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.loaded = true
	r.duration = d
	fn := r.cb.Loaded
	r.mu.Unlock()

	if fn != nil {
		fn(d)
	}
}

func (r *resource) Play(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case r.closed:
		return ErrClosed
	case !r.loaded:
		return ErrNotLoaded
	case r.blocked:
		return ErrAutoplayBlocked
	case r.playing:
		return nil
	}

	if r.ended || r.elapsed >= r.duration {
		r.elapsed = 0
	}
	r.ended = false
	r.playing = true
	r.stop = make(chan struct{})
	go r.run(r.stop)
	return nil
}

// run avanza el tiempo hasta el final o hasta que se cierre stop.
func (r *resource) run(stop chan struct{}) {
	t := time.NewTicker(r.tick)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C:
		}

		r.mu.Lock()
		if r.stop != stop || r.closed {
			r.mu.Unlock()
			return
		}
		r.elapsed = min(r.elapsed+r.tick, r.duration)
		elapsed := r.elapsed
		done := elapsed >= r.duration
		if done {
			r.playing = false
			r.ended = true
			r.stop = nil
		}
		onTime, onEnd := r.cb.TimeUpdate, r.cb.Ended
		r.mu.Unlock()

		if onTime != nil {
			onTime(elapsed)
		}
		if done {
			if onEnd != nil {
				onEnd()
			}
			return
		}
	}
}

// Pause no espera al ticker: solo le avisa que pare.
func (r *resource) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.haltLocked()
}

func (r *resource) haltLocked() {
	if r.stop != nil {
		close(r.stop)
		r.stop = nil
	}
	r.playing = false
}

func (r *resource) Seek(elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	elapsed = max(elapsed, 0)
	if r.duration > 0 {
		elapsed = min(elapsed, r.duration)
	}
	r.elapsed = elapsed
	r.ended = false
}

func (r *resource) Ended() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ended
}

// Close corta la carga y el ticker y desconecta los callbacks. Idempotente.
func (r *resource) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	r.haltLocked()
	r.cb = voiceover.Callbacks{}
	r.cancel()
	return nil
}

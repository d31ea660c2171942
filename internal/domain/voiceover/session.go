package voiceover

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"dog-life/internal/domain/dogs"
	"dog-life/internal/platform/chance"
	"dog-life/internal/platform/delay"
	"dog-life/internal/platform/logger"
	"dog-life/internal/ports/assets"
	"dog-life/internal/ports/notify"
)

const revokeTimeout = 5 * time.Second

type Options struct {
	Backend   Backend
	Generator Generator
	// Assets se usa solo para liberar referencias blob:.
	Assets  assets.Store
	Notices notify.Sink

	Sleeper     delay.Sleeper
	Rand        chance.Source
	UploadDelay time.Duration
	VoiceDelay  time.Duration

	Log logger.Logger
	Now func() time.Time
}

// Session es el widget de voiceover de un viewer: a lo sumo un recurso de
// audio vivo. Cambiar de source libera el anterior antes de abrir el nuevo.
//
// ctl serializa las operaciones de control (Acquire, Toggle, Release, Dispose).
// mu protege el estado y es lo único que toman los callbacks; las llamadas al
// recurso se hacen sin mu para que un callback sincrónico no se bloquee.
type Session struct {
	id    string
	owner string

	backend   Backend
	generator Generator
	assets    assets.Store
	notices   notify.Sink
	sleeper   delay.Sleeper
	rand      chance.Source
	uploadDly time.Duration
	voiceDly  time.Duration
	log       logger.Logger
	now       func() time.Time

	// vive hasta Dispose: carga async de audio y pipeline de generación
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	ctl sync.Mutex

	mu       sync.Mutex
	gen      uint64
	res      Resource
	src      string
	state    State
	ready    bool
	playing  bool
	elapsed  time.Duration
	duration time.Duration
	lastErr  string
	endSeq   uint64
	disposed bool

	step       Step
	image      string
	gender     dogs.Gender
	thought    string
	generating bool

	updatedAt time.Time
}

func NewSession(id, owner string, opts Options) *Session {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sink := opts.Notices
	if sink == nil {
		sink = notify.Discard
	}
	r := opts.Rand
	if r == nil {
		r = chance.Default
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Session{
		id:        id,
		owner:     owner,
		backend:   opts.Backend,
		generator: opts.Generator,
		assets:    opts.Assets,
		notices:   sink,
		sleeper:   delay.Or(opts.Sleeper),
		rand:      r,
		uploadDly: opts.UploadDelay,
		voiceDly:  opts.VoiceDelay,
		log:       log.With(logger.Fields{"session_id": id}),
		now:       now,
		ctx:       ctx,
		cancel:    cancel,
		state:     StateIdle,
		step:      StepUpload,
		image:     defaultDemoImage,
		gender:    dogs.GenderMale,
		updatedAt: now(),
	}
}

func (s *Session) ID() string    { return s.id }
func (s *Session) Owner() string { return s.owner }

// Acquire reemplaza el audio actual por src. Source vacío: notice y sin
// cambios. El recurso anterior se pausa, se cierra y (si es blob:) se
// revoca antes de abrir el nuevo. La carga sigue de forma asíncrona:
// Acquire vuelve con la sesión en loading.
func (s *Session) Acquire(ctx context.Context, src string) error {
	s.ctl.Lock()
	defer s.ctl.Unlock()
	return s.acquire(ctx, src)
}

func (s *Session) acquire(ctx context.Context, src string) error {
	src = strings.TrimSpace(src)

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return ErrDisposed
	}
	if src == "" {
		s.mu.Unlock()
		s.log.Warn("empty audio source", nil)
		s.notices.Push(noticeInvalidSource)
		return ErrEmptySource
	}

	old, oldSrc := s.res, s.src
	s.gen++
	gen := s.gen
	s.res = nil
	s.src = src
	s.state = StateLoading
	s.ready = false
	s.playing = false
	s.elapsed = 0
	s.duration = 0
	s.lastErr = ""
	s.updatedAt = s.now()
	s.mu.Unlock()

	s.release(ctx, old, oldSrc)

	res, err := s.backend.Open(s.ctx, src, s.callbacks(gen))

	s.mu.Lock()
	if err != nil {
		if s.gen == gen {
			s.state = StateError
			s.ready = false
			s.lastErr = err.Error()
			s.updatedAt = s.now()
		}
		s.mu.Unlock()

		s.log.Error("audio open failed", logger.Fields{"source": src, "error": err})
		s.notices.Push(noticeLoadFailed)
		return fmt.Errorf("%w: %s: %v", ErrAudioLoad, src, err)
	}
	if s.gen != gen || s.disposed {
		s.mu.Unlock()
		_ = res.Close()
		return nil
	}
	s.res = res
	s.mu.Unlock()

	s.log.Debug("audio acquired", logger.Fields{"source": src})
	return nil
}

// release pausa y cierra el recurso y libera su referencia si es temporal.
// Se llama sin mu.
func (s *Session) release(ctx context.Context, res Resource, src string) {
	if res != nil {
		res.Pause()
		if err := res.Close(); err != nil {
			s.log.Warn("audio close failed", logger.Fields{"source": src, "error": err})
		}
	}

	if s.assets == nil || !assets.IsBlob(src) {
		return
	}
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), revokeTimeout)
	defer cancel()
	if err := s.assets.Revoke(rctx, src); err != nil {
		s.log.Warn("blob revoke failed", logger.Fields{"source": src, "error": err})
	}
}

func (s *Session) callbacks(gen uint64) Callbacks {
	return Callbacks{
		Loaded:     func(d time.Duration) { s.onLoaded(gen, d) },
		TimeUpdate: func(e time.Duration) { s.onTimeUpdate(gen, e) },
		Ended:      func() { s.onEnded(gen) },
		Error:      func(err error) { s.onError(gen, err) },
	}
}

// live: el callback pertenece al recurso actual. Requiere mu.
func (s *Session) live(gen uint64) bool {
	return !s.disposed && gen == s.gen
}

func (s *Session) onLoaded(gen uint64, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live(gen) || s.state == StateError {
		return
	}

	s.duration = max(d, 0)
	s.ready = true
	if s.state == StateLoading {
		s.state = StateReady
	}
	s.updatedAt = s.now()
}

func (s *Session) onTimeUpdate(gen uint64, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live(gen) || s.state == StateError {
		return
	}

	s.elapsed = max(elapsed, 0)
	if s.duration > 0 {
		s.elapsed = min(s.elapsed, s.duration)
	}
	s.updatedAt = s.now()
}

func (s *Session) onEnded(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live(gen) {
		return
	}

	s.endSeq++
	s.playing = false
	s.elapsed = 0
	if s.state == StatePlaying {
		s.state = StateReady
	}
	s.updatedAt = s.now()
}

func (s *Session) onError(gen uint64, err error) {
	s.mu.Lock()
	if !s.live(gen) {
		s.mu.Unlock()
		return
	}

	s.ready = false
	s.playing = false
	s.state = StateError
	if err != nil {
		s.lastErr = err.Error()
	}
	s.updatedAt = s.now()
	src := s.src
	s.mu.Unlock()

	s.log.Error("audio error", logger.Fields{"source": src, "error": err})
	s.notices.Push(noticeLoadFailed)
}

// Toggle pausa si está sonando; si no, arranca (desde 0 si había terminado).
// Sin audio listo: notice y ErrNotReady, sin cambiar estado. Si el arranque
// es rechazado queda sin reproducir y devuelve ErrPlaybackRejected.
func (s *Session) Toggle(ctx context.Context) error {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return ErrDisposed
	}
	if !s.ready || s.res == nil {
		s.mu.Unlock()
		s.notices.Push(noticeNotReady)
		return ErrNotReady
	}
	res, gen, playing, seq := s.res, s.gen, s.playing, s.endSeq
	s.mu.Unlock()

	if playing {
		res.Pause()

		s.mu.Lock()
		if s.live(gen) {
			s.playing = false
			if s.state == StatePlaying {
				s.state = StateReady
			}
			s.updatedAt = s.now()
		}
		s.mu.Unlock()
		return nil
	}

	if res.Ended() {
		res.Seek(0)

		s.mu.Lock()
		if s.live(gen) {
			s.elapsed = 0
		}
		s.mu.Unlock()
	}

	err := res.Play(ctx)

	s.mu.Lock()
	if !s.live(gen) {
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		s.playing = false
		s.lastErr = err.Error()
		s.updatedAt = s.now()
		src := s.src
		s.mu.Unlock()

		s.log.Warn("playback rejected", logger.Fields{"source": src, "error": err})
		s.notices.Push(noticePlaybackRejected)
		return fmt.Errorf("%w: %v", ErrPlaybackRejected, err)
	}
	// terminó o falló mientras arrancaba: no queda sonando
	if s.endSeq != seq || s.state == StateError {
		s.mu.Unlock()
		return nil
	}
	s.playing = true
	s.state = StatePlaying
	s.updatedAt = s.now()
	s.mu.Unlock()
	return nil
}

// Release vuelve a idle liberando el recurso. Sin recurso es no-op.
func (s *Session) Release(ctx context.Context) error {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return ErrDisposed
	}
	old, oldSrc := s.res, s.src
	s.gen++
	s.resetAudioLocked()
	s.mu.Unlock()

	s.release(ctx, old, oldSrc)
	return nil
}

// Dispose pausa y libera el recurso, cancela la generación en curso y
// espera a que termine. Después no se observa ningún callback. Idempotente.
func (s *Session) Dispose() {
	s.cancel()

	s.ctl.Lock()
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		s.ctl.Unlock()
		return
	}
	s.disposed = true
	old, oldSrc := s.res, s.src
	s.gen++
	s.resetAudioLocked()
	s.generating = false
	s.mu.Unlock()

	s.release(context.Background(), old, oldSrc)
	s.ctl.Unlock()

	s.wg.Wait()
	s.log.Debug("session disposed", nil)
}

func (s *Session) resetAudioLocked() {
	s.res = nil
	s.src = ""
	s.state = StateIdle
	s.ready = false
	s.playing = false
	s.elapsed = 0
	s.duration = 0
	s.lastErr = ""
	s.updatedAt = s.now()
}

func (s *Session) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:         s.id,
		Owner:      s.owner,
		Source:     s.src,
		State:      s.state,
		Ready:      s.ready,
		Playing:    s.playing,
		Elapsed:    s.elapsed,
		Duration:   s.duration,
		Progress:   progress(s.elapsed, s.duration),
		LastError:  s.lastErr,
		Step:       s.step,
		Image:      s.image,
		Gender:     s.gender,
		Thought:    s.thought,
		Generating: s.generating,
		UpdatedAt:  s.updatedAt,
	}
}

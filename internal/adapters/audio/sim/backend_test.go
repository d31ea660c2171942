package sim

import (
	"context"
	"sync"
	"testing"
	"time"

	"dog-life/internal/adapters/assets/memory"
	"dog-life/internal/domain/voiceover"
	"dog-life/internal/ports/assets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type events struct {
	mu      sync.Mutex
	loaded  time.Duration
	updates []time.Duration
	ended   int
	errs    []error
}

func (e *events) callbacks() voiceover.Callbacks {
	return voiceover.Callbacks{
		Loaded: func(d time.Duration) {
			e.mu.Lock()
			defer e.mu.Unlock()
			e.loaded = d
		},
		TimeUpdate: func(d time.Duration) {
			e.mu.Lock()
			defer e.mu.Unlock()
			e.updates = append(e.updates, d)
		},
		Ended: func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			e.ended++
		},
		Error: func(err error) {
			e.mu.Lock()
			defer e.mu.Unlock()
			e.errs = append(e.errs, err)
		},
	}
}

func (e *events) snapshot() (loaded time.Duration, updates int, ended int, errs int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loaded, len(e.updates), e.ended, len(e.errs)
}

func testStore() *memory.Store {
	return memory.NewStore([]assets.Metadata{
		{Ref: "/male-pug-voice.mp3", Duration: 40 * time.Millisecond},
		{Ref: "/dog-voice-sample.mp3"},
		{Ref: "/park-playtime.png"},
	})
}

// blockingStore no responde hasta que se cierre release o se cancele ctx.
type blockingStore struct {
	release chan struct{}
	inner   assets.Store
}

func (s *blockingStore) Lookup(ctx context.Context, ref string) (assets.Metadata, error) {
	select {
	case <-s.release:
		return s.inner.Lookup(context.Background(), ref)
	case <-ctx.Done():
		return assets.Metadata{}, ctx.Err()
	}
}

func (s *blockingStore) Revoke(ctx context.Context, ref string) error { return nil }

func TestBackend_LoadsPlaysAndEnds(t *testing.T) {
	b := New(Options{Assets: testStore(), Tick: 10 * time.Millisecond})
	ev := &events{}

	res, err := b.Open(context.Background(), "/male-pug-voice.mp3", ev.callbacks())
	require.NoError(t, err)
	defer res.Close()

	require.Eventually(t, func() bool {
		d, _, _, _ := ev.snapshot()
		return d == 40*time.Millisecond
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, res.Play(context.Background()))

	require.Eventually(t, func() bool {
		_, _, ended, _ := ev.snapshot()
		return ended == 1
	}, time.Second, 5*time.Millisecond)

	_, updates, _, errs := ev.snapshot()
	assert.GreaterOrEqual(t, updates, 1)
	assert.Zero(t, errs)
	assert.True(t, res.Ended())

	ev.mu.Lock()
	last := ev.updates[len(ev.updates)-1]
	ev.mu.Unlock()
	assert.Equal(t, 40*time.Millisecond, last)

	res.Seek(0)
	assert.False(t, res.Ended())
}

func TestBackend_DefaultDurationWhenMissing(t *testing.T) {
	b := New(Options{Assets: testStore(), DefaultDuration: 2 * time.Second})
	ev := &events{}

	res, err := b.Open(context.Background(), "/dog-voice-sample.mp3", ev.callbacks())
	require.NoError(t, err)
	defer res.Close()

	require.Eventually(t, func() bool {
		d, _, _, _ := ev.snapshot()
		return d == 2*time.Second
	}, time.Second, 5*time.Millisecond)
}

func TestBackend_LoadErrors(t *testing.T) {
	b := New(Options{Assets: testStore()})

	for _, src := range []string{"/missing.mp3", "/park-playtime.png"} {
		t.Run(src, func(t *testing.T) {
			ev := &events{}
			res, err := b.Open(context.Background(), src, ev.callbacks())
			require.NoError(t, err)
			defer res.Close()

			require.Eventually(t, func() bool {
				_, _, _, errs := ev.snapshot()
				return errs == 1
			}, time.Second, 5*time.Millisecond)

			d, _, _, _ := ev.snapshot()
			assert.Zero(t, d)
			assert.ErrorIs(t, res.Play(context.Background()), ErrNotLoaded)
		})
	}
}

func TestBackend_AutoplayBlocked(t *testing.T) {
	b := New(Options{Assets: testStore(), AutoplayBlocked: true})
	ev := &events{}

	res, err := b.Open(context.Background(), "/male-pug-voice.mp3", ev.callbacks())
	require.NoError(t, err)
	defer res.Close()

	require.Eventually(t, func() bool {
		d, _, _, _ := ev.snapshot()
		return d > 0
	}, time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, res.Play(context.Background()), ErrAutoplayBlocked)
}

func TestBackend_PauseStopsTime(t *testing.T) {
	store := memory.NewStore([]assets.Metadata{{Ref: "/long.mp3", Duration: time.Hour}})
	b := New(Options{Assets: store, Tick: 5 * time.Millisecond})
	ev := &events{}

	res, err := b.Open(context.Background(), "/long.mp3", ev.callbacks())
	require.NoError(t, err)
	defer res.Close()

	require.Eventually(t, func() bool {
		d, _, _, _ := ev.snapshot()
		return d > 0
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, res.Play(context.Background()))
	require.Eventually(t, func() bool {
		_, n, _, _ := ev.snapshot()
		return n >= 2
	}, time.Second, 5*time.Millisecond)

	res.Pause()
	// un tick en vuelo puede colarse; después no hay más
	time.Sleep(20 * time.Millisecond)
	_, before, _, _ := ev.snapshot()
	time.Sleep(30 * time.Millisecond)
	_, after, _, _ := ev.snapshot()
	assert.Equal(t, before, after)
	assert.False(t, res.Ended())
}

func TestBackend_CloseDetachesCallbacks(t *testing.T) {
	store := &blockingStore{release: make(chan struct{}), inner: testStore()}
	b := New(Options{Assets: store})
	ev := &events{}

	res, err := b.Open(context.Background(), "/male-pug-voice.mp3", ev.callbacks())
	require.NoError(t, err)

	assert.ErrorIs(t, res.Play(context.Background()), ErrNotLoaded)

	require.NoError(t, res.Close())
	require.NoError(t, res.Close())
	close(store.release)

	time.Sleep(30 * time.Millisecond)
	d, updates, ended, errs := ev.snapshot()
	assert.Zero(t, d)
	assert.Zero(t, updates)
	assert.Zero(t, ended)
	assert.Zero(t, errs)
	assert.ErrorIs(t, res.Play(context.Background()), ErrClosed)
}

func TestBackend_ImplementsVoiceoverBackend(t *testing.T) {
	var _ voiceover.Backend = New(Options{Assets: testStore()})
}

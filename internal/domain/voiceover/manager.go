package voiceover

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"dog-life/internal/platform/logger"
	"dog-life/internal/ports/notify"

	"github.com/google/uuid"
)

const (
	DefaultTTL           = 30 * time.Minute
	DefaultMaxPerViewer  = 4
	defaultSweepInterval = time.Minute
)

// Inbox es el sink de notices de una sesión, drenable por el cliente.
type Inbox interface {
	notify.Sink
	Drain() []notify.Notice
}

type ManagerOptions struct {
	// Plantilla para cada sesión; Notices se reemplaza por la inbox propia.
	Session Options

	NewInbox func() Inbox

	TTL          time.Duration
	MaxPerViewer int

	Log logger.Logger
	Now func() time.Time
}

// Manager registra las sesiones de voiceover por viewer.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	closed   bool

	opts ManagerOptions
	log  logger.Logger
	now  func() time.Time
}

type entry struct {
	session  *Session
	inbox    Inbox
	lastSeen time.Time
}

func NewManager(opts ManagerOptions) *Manager {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.MaxPerViewer <= 0 {
		opts.MaxPerViewer = DefaultMaxPerViewer
	}
	if opts.NewInbox == nil {
		opts.NewInbox = func() Inbox { return &sliceInbox{} }
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if opts.Session.Log == nil {
		opts.Session.Log = log
	}
	if opts.Session.Now == nil {
		opts.Session.Now = now
	}

	return &Manager{
		sessions: make(map[string]*entry),
		opts:     opts,
		log:      log,
		now:      now,
	}
}

// Create abre una sesión nueva para el viewer. Si ya tiene el máximo,
// se descarta la menos usada.
func (m *Manager) Create(owner string) (*Session, error) {
	owner = strings.TrimSpace(owner)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrClosed
	}

	evicted := m.evictForLocked(owner)

	id := uuid.NewString()
	inbox := m.opts.NewInbox()
	opts := m.opts.Session
	opts.Notices = inbox

	s := NewSession(id, owner, opts)
	m.sessions[id] = &entry{session: s, inbox: inbox, lastSeen: m.now()}
	m.mu.Unlock()

	for _, old := range evicted {
		old.Dispose()
		m.log.Info("voiceover session evicted", logger.Fields{"session_id": old.ID(), "viewer": owner})
	}
	m.log.Debug("voiceover session created", logger.Fields{"session_id": id, "viewer": owner})
	return s, nil
}

// evictForLocked saca del mapa las sesiones más viejas del owner hasta
// dejar lugar para una más. Requiere mu; el Dispose lo hace el caller.
func (m *Manager) evictForLocked(owner string) []*Session {
	var mine []*entry
	for _, e := range m.sessions {
		if e.session.Owner() == owner {
			mine = append(mine, e)
		}
	}
	if len(mine) < m.opts.MaxPerViewer {
		return nil
	}

	sort.Slice(mine, func(i, j int) bool { return mine[i].lastSeen.Before(mine[j].lastSeen) })

	var out []*Session
	for _, e := range mine[:len(mine)-m.opts.MaxPerViewer+1] {
		delete(m.sessions, e.session.ID())
		out = append(out, e.session)
	}
	return out
}

// Get devuelve la sesión si existe y es del viewer. Una sesión ajena
// se reporta como inexistente.
func (m *Manager) Get(owner, id string) (*Session, error) {
	e, err := m.lookup(owner, id)
	if err != nil {
		return nil, err
	}
	return e.session, nil
}

// Drain devuelve y limpia los notices pendientes de la sesión.
func (m *Manager) Drain(owner, id string) ([]notify.Notice, error) {
	e, err := m.lookup(owner, id)
	if err != nil {
		return nil, err
	}
	return e.inbox.Drain(), nil
}

func (m *Manager) lookup(owner, id string) (*entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[strings.TrimSpace(id)]
	if !ok || e.session.Owner() != strings.TrimSpace(owner) {
		return nil, ErrNotFound
	}
	e.lastSeen = m.now()
	return e, nil
}

func (m *Manager) Dispose(owner, id string) error {
	m.mu.Lock()
	e, ok := m.sessions[strings.TrimSpace(id)]
	if !ok || e.session.Owner() != strings.TrimSpace(owner) {
		m.mu.Unlock()
		return ErrNotFound
	}
	delete(m.sessions, e.session.ID())
	m.mu.Unlock()

	e.session.Dispose()
	return nil
}

// Sweep descarta las sesiones sin uso por más de TTL. Devuelve cuántas.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.opts.TTL)

	m.mu.Lock()
	var stale []*Session
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			stale = append(stale, e.session)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.Dispose()
	}
	if len(stale) > 0 {
		m.log.Info("voiceover sessions swept", logger.Fields{"count": len(stale)})
	}
	return len(stale)
}

// Run barre sesiones vencidas cada interval hasta que ctx se cancele.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Sweep()
		}
	}
}

// Shutdown cierra el manager y descarta todas las sesiones.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	m.closed = true
	all := make([]*Session, 0, len(m.sessions))
	for id, e := range m.sessions {
		all = append(all, e.session)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, s := range all {
		s.Dispose()
	}
	m.log.Info("voiceover manager shut down", logger.Fields{"disposed": len(all)})
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// sliceInbox es la inbox mínima cuando no se inyecta otra.
type sliceInbox struct {
	mu    sync.Mutex
	items []notify.Notice
}

func (b *sliceInbox) Push(n notify.Notice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, n)
}

func (b *sliceInbox) Drain() []notify.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.items
	b.items = nil
	if out == nil {
		return []notify.Notice{}
	}
	return out
}

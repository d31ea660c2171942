package memory

import (
	"strings"
	"sync"
	"time"

	"dog-life/internal/platform/logger"
	"dog-life/internal/ports/notify"

	"github.com/google/uuid"
)

const defaultCapacity = 32

// Inbox guarda los últimos N notices hasta que alguien los drena.
// Si se llena, descarta los más viejos.
type Inbox struct {
	mu    sync.Mutex
	items []notify.Notice
	cap   int
	now   func() time.Time
	log   logger.Logger
}

func NewInbox(capacity int, log logger.Logger) *Inbox {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Inbox{
		cap: capacity,
		now: time.Now,
		log: log,
	}
}

func (b *Inbox) Push(n notify.Notice) {
	if strings.TrimSpace(n.ID) == "" {
		n.ID = uuid.NewString()
	}
	if n.Variant == "" {
		n.Variant = notify.VariantDefault
	}
	if n.At.IsZero() {
		n.At = b.now()
	}

	// espejo en logs: los toasts destructivos son warnings operativos
	fields := logger.Fields{"notice": n.Title, "description": n.Description}
	if n.Variant == notify.VariantDestructive {
		b.log.Warn("notice", fields)
	} else {
		b.log.Debug("notice", fields)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.items = append(b.items, n)
	if over := len(b.items) - b.cap; over > 0 {
		b.items = append([]notify.Notice(nil), b.items[over:]...)
	}
}

// Drain devuelve y borra los notices pendientes, del más viejo al más nuevo.
func (b *Inbox) Drain() []notify.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.items
	b.items = nil
	if out == nil {
		return []notify.Notice{}
	}
	return out
}

// Peek devuelve una copia sin drenar.
func (b *Inbox) Peek() []notify.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]notify.Notice, len(b.items))
	copy(out, b.items)
	return out
}

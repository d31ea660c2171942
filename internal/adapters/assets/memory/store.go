package memory

import (
	"context"
	"path"
	"strings"
	"sync"

	"dog-life/internal/ports/assets"

	"github.com/google/uuid"
)

// Store es el asset store in-memory: las referencias de muestra compiladas
// más los blobs temporales que se registren en runtime.
type Store struct {
	mu    sync.RWMutex
	byRef map[string]assets.Metadata
}

func NewStore(seed []assets.Metadata) *Store {
	s := &Store{byRef: make(map[string]assets.Metadata, len(seed))}
	for _, m := range seed {
		ref := strings.TrimSpace(m.Ref)
		if ref == "" {
			continue
		}
		m.Ref = ref
		if m.Kind == "" {
			m.Kind = KindOf(ref)
		}
		if m.ContentType == "" {
			m.ContentType = contentTypeOf(ref)
		}
		s.byRef[ref] = m
	}
	return s
}

func (s *Store) Lookup(ctx context.Context, ref string) (assets.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return assets.Metadata{}, err
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return assets.Metadata{}, assets.ErrInvalidRef
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.byRef[ref]
	if !ok {
		return assets.Metadata{}, assets.ErrNotFound
	}
	return m, nil
}

// PutBlob registra un asset temporal y devuelve su referencia blob:.
func (s *Store) PutBlob(m assets.Metadata) string {
	ref := assets.BlobPrefix + uuid.NewString()
	m.Ref = ref

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byRef[ref] = m
	return ref
}

func (s *Store) Revoke(ctx context.Context, ref string) error {
	if !assets.IsBlob(ref) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byRef[ref]; !ok {
		return assets.ErrNotFound
	}
	delete(s.byRef, ref)
	return nil
}

// Len es útil para verificar fugas de blobs en tests.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byRef)
}

// KindOf deduce el tipo por extensión.
func KindOf(ref string) assets.Kind {
	switch strings.ToLower(path.Ext(ref)) {
	case ".mp3", ".wav", ".ogg", ".m4a":
		return assets.KindAudio
	default:
		return assets.KindImage
	}
}

func contentTypeOf(ref string) string {
	switch strings.ToLower(path.Ext(ref)) {
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".ogg":
		return "audio/ogg"
	case ".m4a":
		return "audio/mp4"
	case ".svg":
		return "image/svg+xml"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "image/png"
	}
}

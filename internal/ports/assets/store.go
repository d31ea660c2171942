package assets

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound   = errors.New("asset not found")
	ErrInvalidRef = errors.New("invalid asset reference")
)

// BlobPrefix marca referencias temporales que hay que liberar explícitamente.
const BlobPrefix = "blob:"

type Kind string

const (
	KindImage Kind = "image"
	KindAudio Kind = "audio"
)

type Metadata struct {
	Ref         string
	Kind        Kind
	ContentType string
	// Duration solo aplica a audio.
	Duration time.Duration
}

// Store resuelve referencias de assets. La app nunca lee bytes: solo metadata.
type Store interface {
	Lookup(ctx context.Context, ref string) (Metadata, error)
	// Revoke libera una referencia blob:. Para refs no-blob es no-op.
	Revoke(ctx context.Context, ref string) error
}

func IsBlob(ref string) bool {
	return strings.HasPrefix(strings.TrimSpace(ref), BlobPrefix)
}

// Defaults de imagen por tipo. Política: las imágenes nunca fallan,
// caen en silencio al default de su tipo. El audio sí falla (ver voiceover).
const (
	DefaultAvatar       = "/happy-golden-avatar.png"
	DefaultPostImage    = "/park-playtime.png"
	DefaultServiceImage = "/assistance-dog-park.png"
	DefaultDogImage     = "/happy-golden-retriever-puppy.png"
	DefaultOwnerImage   = "/happy-golden-avatar.png"
	DefaultEventImage   = "/park-playtime.png"
	DefaultPupsona      = "/golden-closeup.png"
	DefaultAIAvatar     = "/abstract-ai-network.png"
	Placeholder         = "/placeholder.svg"
)

// ImageOr devuelve ref, o fallback si ref está vacío. Si ambos están
// vacíos devuelve Placeholder: nunca devuelve "".
func ImageOr(ref, fallback string) string {
	if r := strings.TrimSpace(ref); r != "" {
		return r
	}
	if f := strings.TrimSpace(fallback); f != "" {
		return f
	}
	return Placeholder
}

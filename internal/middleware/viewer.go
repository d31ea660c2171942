package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const viewerKey ctxKey = "viewer"

const (
	ViewerHeader  = "X-User-ID"
	DefaultViewer = "guest"

	maxViewerLen = 128
)

// ViewerContext identifica al viewer por header. No es autenticación:
// solo separa estado por usuario (notificaciones leídas, sesiones de audio).
// Sin header, o con uno inválido, el viewer es "guest".
func ViewerContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer := normalizeViewer(r.Header.Get(ViewerHeader))
		ctx := WithViewer(r.Context(), viewer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithViewer(ctx context.Context, viewer string) context.Context {
	return context.WithValue(ctx, viewerKey, viewer)
}

// Viewer devuelve el viewer del request, o DefaultViewer.
func Viewer(ctx context.Context) string {
	v, ok := ctx.Value(viewerKey).(string)
	if !ok || v == "" {
		return DefaultViewer
	}
	return v
}

func normalizeViewer(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" || len(v) > maxViewerLen {
		return DefaultViewer
	}
	for _, c := range v {
		if c < 0x20 || c == 0x7f {
			return DefaultViewer
		}
	}
	return v
}

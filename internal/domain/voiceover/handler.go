package voiceover

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"dog-life/internal/domain/dogs"
	"dog-life/internal/middleware"
	"dog-life/internal/ports/notify"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el widget de voiceover. limit envuelve la generación.
func RegisterRoutes(r chi.Router, m *Manager, limit func(http.Handler) http.Handler) {
	r.Route("/voiceover/sessions", func(vr chi.Router) {
		vr.Post("/", createSessionHandler(m))

		vr.Route("/{sessionID}", func(sr chi.Router) {
			sr.Get("/", getSessionHandler(m))
			sr.Delete("/", disposeSessionHandler(m))
			sr.With(limit).Post("/generate", generateHandler(m))
			sr.Post("/acquire", acquireHandler(m))
			sr.Post("/toggle", toggleHandler(m))
			sr.Post("/release", releaseHandler(m))
		})
	})
}

type sessionResponse struct {
	ID         string      `json:"id"`
	Source     string      `json:"source"`
	State      State       `json:"state"`
	Ready      bool        `json:"ready"`
	Playing    bool        `json:"playing"`
	ElapsedMS  int64       `json:"elapsed_ms"`
	DurationMS int64       `json:"duration_ms"`
	Progress   float64     `json:"progress"`
	LastError  string      `json:"last_error,omitempty"`
	Step       Step        `json:"step"`
	Image      string      `json:"image"`
	Gender     dogs.Gender `json:"gender"`
	GenderTag  string      `json:"gender_label"`
	Thought    string      `json:"thought"`
	Generating bool        `json:"generating"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// viewResponse es la sesión más los notices pendientes (ya drenados).
// Error describe una falla no fatal de la operación; el detalle para el
// usuario viene en notices.
type viewResponse struct {
	Session sessionResponse `json:"session"`
	Notices []notify.Notice `json:"notices"`
	Error   string          `json:"error,omitempty"`
}

type generateRequest struct {
	Image  string `json:"image"`
	Gender string `json:"gender" enums:"male,female"`
}

type acquireRequest struct {
	Source string `json:"source"`
}

func toSessionResponse(s Snapshot) sessionResponse {
	return sessionResponse{
		ID:         s.ID,
		Source:     s.Source,
		State:      s.State,
		Ready:      s.Ready,
		Playing:    s.Playing,
		ElapsedMS:  s.Elapsed.Milliseconds(),
		DurationMS: s.Duration.Milliseconds(),
		Progress:   s.Progress,
		LastError:  s.LastError,
		Step:       s.Step,
		Image:      s.Image,
		Gender:     s.Gender,
		GenderTag:  s.Gender.Label(),
		Thought:    s.Thought,
		Generating: s.Generating,
		UpdatedAt:  s.UpdatedAt,
	}
}

// writeView responde con snapshot + notices drenados.
func writeView(w http.ResponseWriter, m *Manager, viewer string, s *Session, status int, opErr error) {
	notices, err := m.Drain(viewer, s.ID())
	if err != nil {
		notices = []notify.Notice{}
	}

	out := viewResponse{
		Session: toSessionResponse(s.Snapshot()),
		Notices: notices,
	}
	if opErr != nil {
		out.Error = opErr.Error()
	}
	writeJSON(w, status, out)
}

// sessionFrom resuelve {sessionID} del viewer o responde 404.
func sessionFrom(w http.ResponseWriter, r *http.Request, m *Manager) (*Session, string, bool) {
	viewer := middleware.Viewer(r.Context())
	s, err := m.Get(viewer, chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, viewer, false
	}
	return s, viewer, true
}

// opStatus: las fallas de audio no son fatales; solo las de sesión cortan.
func opStatus(w http.ResponseWriter, err error) (int, bool) {
	switch {
	case err == nil:
		return http.StatusOK, true
	case errors.Is(err, ErrDisposed):
		http.Error(w, "session not found", http.StatusNotFound)
		return 0, false
	case errors.Is(err, ErrEmptySource),
		errors.Is(err, ErrNotReady),
		errors.Is(err, ErrPlaybackRejected),
		errors.Is(err, ErrAudioLoad):
		return http.StatusOK, true
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
		return 0, false
	}
}

// createSessionHandler godoc
// @Summary Crear sesión de voiceover
// @Description Crea el widget de voiceover del viewer (máximo 4 por viewer; se descarta la menos usada).
// @Tags voiceover
// @Produce json
// @Param X-User-ID header string false "Viewer; no es autenticación"
// @Success 201 {object} viewResponse
// @Failure 503 {string} string "shutting down"
// @Router /voiceover/sessions [post]
func createSessionHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer := middleware.Viewer(r.Context())
		s, err := m.Create(viewer)
		if err != nil {
			if errors.Is(err, ErrClosed) {
				http.Error(w, "shutting down", http.StatusServiceUnavailable)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeView(w, m, viewer, s, http.StatusCreated, nil)
	}
}

// getSessionHandler godoc
// @Summary Estado de la sesión
// @Description Snapshot del audio (estado, progreso 0-100) y del pipeline, más los notices pendientes, que se drenan.
// @Tags voiceover
// @Produce json
// @Param X-User-ID header string false "Viewer; no es autenticación"
// @Param sessionID path string true "ID de la sesión"
// @Success 200 {object} viewResponse
// @Failure 404 {string} string "session not found"
// @Router /voiceover/sessions/{sessionID} [get]
func getSessionHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, viewer, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}
		writeView(w, m, viewer, s, http.StatusOK, nil)
	}
}

// generateHandler godoc
// @Summary Generar voz del perro
// @Description Arranca en background: subida simulada, pensamiento, voz y carga del audio. Imagen y género son opcionales (al azar si faltan).
// @Tags voiceover
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Viewer; no es autenticación"
// @Param sessionID path string true "ID de la sesión"
// @Param payload body generateRequest false "Imagen y género opcionales"
// @Success 202 {object} viewResponse
// @Failure 400 {string} string "invalid json / gender must be male or female"
// @Failure 404 {string} string "session not found"
// @Failure 409 {string} string "voice generation already running"
// @Failure 429 {string} string "too many requests"
// @Router /voiceover/sessions/{sessionID}/generate [post]
func generateHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, viewer, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		gr := GenerateRequest{Image: req.Image}
		if strings.TrimSpace(req.Gender) != "" {
			g, err := dogs.ParseGender(req.Gender)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			gr.Gender = g
		}

		if err := s.Generate(gr); err != nil {
			switch {
			case errors.Is(err, ErrBusy):
				http.Error(w, ErrBusy.Error(), http.StatusConflict)
			case errors.Is(err, ErrDisposed):
				http.Error(w, "session not found", http.StatusNotFound)
			case errors.Is(err, dogs.ErrInvalidGender):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeView(w, m, viewer, s, http.StatusAccepted, nil)
	}
}

// acquireHandler godoc
// @Summary Cargar un audio
// @Description Libera el audio actual y carga `source`. La carga es asíncrona: el estado queda en loading hasta ready o error. Un source vacío deja todo igual y agrega un notice.
// @Tags voiceover
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Viewer; no es autenticación"
// @Param sessionID path string true "ID de la sesión"
// @Param payload body acquireRequest true "Referencia del audio"
// @Success 200 {object} viewResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "session not found"
// @Router /voiceover/sessions/{sessionID}/acquire [post]
func acquireHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, viewer, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}

		var req acquireRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		err := s.Acquire(r.Context(), req.Source)
		status, ok := opStatus(w, err)
		if !ok {
			return
		}
		writeView(w, m, viewer, s, status, err)
	}
}

// toggleHandler godoc
// @Summary Play / pausa
// @Description Pausa si está sonando; si no, reproduce (desde el inicio si había terminado). Audio no listo o reproducción rechazada se informan en `error` y `notices`.
// @Tags voiceover
// @Produce json
// @Param X-User-ID header string false "Viewer; no es autenticación"
// @Param sessionID path string true "ID de la sesión"
// @Success 200 {object} viewResponse
// @Failure 404 {string} string "session not found"
// @Router /voiceover/sessions/{sessionID}/toggle [post]
func toggleHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, viewer, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}

		err := s.Toggle(r.Context())
		status, ok := opStatus(w, err)
		if !ok {
			return
		}
		writeView(w, m, viewer, s, status, err)
	}
}

// releaseHandler godoc
// @Summary Liberar el audio
// @Description Pausa y libera el audio actual; la sesión vuelve a idle.
// @Tags voiceover
// @Produce json
// @Param X-User-ID header string false "Viewer; no es autenticación"
// @Param sessionID path string true "ID de la sesión"
// @Success 200 {object} viewResponse
// @Failure 404 {string} string "session not found"
// @Router /voiceover/sessions/{sessionID}/release [post]
func releaseHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, viewer, ok := sessionFrom(w, r, m)
		if !ok {
			return
		}

		err := s.Release(r.Context())
		status, ok := opStatus(w, err)
		if !ok {
			return
		}
		writeView(w, m, viewer, s, status, err)
	}
}

// disposeSessionHandler godoc
// @Summary Descartar sesión
// @Description Pausa y libera el audio, cancela la generación en curso y borra la sesión.
// @Tags voiceover
// @Param X-User-ID header string false "Viewer; no es autenticación"
// @Param sessionID path string true "ID de la sesión"
// @Success 204
// @Failure 404 {string} string "session not found"
// @Router /voiceover/sessions/{sessionID} [delete]
func disposeSessionHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer := middleware.Viewer(r.Context())
		if err := m.Dispose(viewer, chi.URLParam(r, "sessionID")); err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

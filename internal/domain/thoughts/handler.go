package thoughts

import (
	"encoding/json"
	"errors"
	"net/http"

	"dog-life/internal/domain/dogs"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/thoughts", generateThoughtHandler(svc))
	r.Post("/voice", generateVoiceHandler(svc))
}

type thoughtRequest struct {
	Image  string `json:"image"`
	Gender string `json:"gender" enums:"male,female"`
}

type thoughtResponse struct {
	Thought string      `json:"thought"`
	Gender  dogs.Gender `json:"gender"`
}

type voiceRequest struct {
	Text   string `json:"text"`
	Gender string `json:"gender" enums:"male,female"`
}

type voiceResponse struct {
	Message   string `json:"message"`
	SampleURL string `json:"sample_url"`
}

// generateThoughtHandler godoc
// @Summary Generar pensamiento del perro
// @Description Devuelve un pensamiento elegido al azar del pool del género, tras una latencia simulada. La imagen no influye.
// @Tags thoughts
// @Accept json
// @Produce json
// @Param payload body thoughtRequest true "Imagen y género (male|female)"
// @Success 200 {object} thoughtResponse
// @Failure 400 {string} string "invalid json / gender must be male or female"
// @Failure 429 {string} string "too many requests"
// @Router /thoughts [post]
func generateThoughtHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req thoughtRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		g, err := dogs.ParseGender(req.Gender)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		thought, err := svc.GenerateThought(r.Context(), req.Image, g)
		if err != nil {
			// el cliente se fue: no hay a quién responder
			if r.Context().Err() != nil {
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, thoughtResponse{Thought: thought, Gender: g})
	}
}

// generateVoiceHandler godoc
// @Summary Generar voz del perro (demo)
// @Description En modo demo devuelve la URL de una muestra pregrabada del género en vez de sintetizar audio.
// @Tags thoughts
// @Accept json
// @Produce json
// @Param payload body voiceRequest true "Texto y género (male|female)"
// @Success 200 {object} voiceResponse
// @Failure 400 {string} string "invalid json / text is required / gender must be male or female"
// @Failure 429 {string} string "too many requests"
// @Router /voice [post]
func generateVoiceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req voiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		g, err := dogs.ParseGender(req.Gender)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		v, err := svc.GenerateVoice(r.Context(), req.Text, g)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "text is required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, voiceResponse{Message: v.Message, SampleURL: v.SampleURL})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

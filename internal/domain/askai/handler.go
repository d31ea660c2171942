package askai

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta Ask AI. limit envuelve solo la pregunta nueva.
func RegisterRoutes(r chi.Router, svc *Service, limit func(http.Handler) http.Handler) {
	r.Route("/ask-ai", func(ar chi.Router) {
		ar.Get("/popular", popularHandler(svc))
		ar.Get("/questions", listQuestionsHandler(svc))
		ar.With(limit).Post("/questions", askHandler(svc))
	})
}

type questionResponse struct {
	ID         int      `json:"id"`
	User       string   `json:"user"`
	Avatar     string   `json:"avatar"`
	Breed      string   `json:"breed"`
	Age        string   `json:"age"`
	Question   string   `json:"question"`
	AIResponse string   `json:"ai_response"`
	Replies    int      `json:"replies"`
	Category   Category `json:"category"`
}

type askRequest struct {
	Question string `json:"question"`
}

type answerResponse struct {
	Question string `json:"question"`
	Response string `json:"response"`
	Avatar   string `json:"avatar"`
}

// popularHandler godoc
// @Summary Preguntas populares
// @Tags ask-ai
// @Produce json
// @Success 200 {array} string
// @Router /ask-ai/popular [get]
func popularHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Popular(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listQuestionsHandler godoc
// @Summary Preguntas de la comunidad
// @Description Filtra por categoría (all|behavior|training|health) y texto libre, sin distinguir mayúsculas.
// @Tags ask-ai
// @Produce json
// @Param category query string false "Categoría" Enums(all, behavior, training, health)
// @Param q query string false "Texto a buscar"
// @Success 200 {array} questionResponse
// @Failure 400 {string} string "invalid category"
// @Router /ask-ai/questions [get]
func listQuestionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, ok := ParseCategory(r.URL.Query().Get("category"))
		if !ok {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}

		list, err := svc.Community(r.Context(), ListFilter{
			Category: cat,
			Query:    r.URL.Query().Get("q"),
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]questionResponse, 0, len(list))
		for _, q := range list {
			out = append(out, questionResponse{
				ID:         q.ID,
				User:       q.User,
				Avatar:     q.Avatar,
				Breed:      q.Breed,
				Age:        q.Age,
				Question:   q.Question,
				AIResponse: q.AIResponse,
				Replies:    q.Replies,
				Category:   q.Category,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// askHandler godoc
// @Summary Preguntar a Dog Life AI
// @Description Respuesta canned por palabras clave (puppy, food/eat, train) tras una latencia simulada.
// @Tags ask-ai
// @Accept json
// @Produce json
// @Param payload body askRequest true "Pregunta"
// @Success 200 {object} answerResponse
// @Failure 400 {string} string "invalid json / question is required"
// @Failure 429 {string} string "too many requests"
// @Router /ask-ai/questions [post]
func askHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Ask(r.Context(), req.Question)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "question is required", http.StatusBadRequest)
				return
			}
			if r.Context().Err() != nil {
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, answerResponse{Question: a.Question, Response: a.Response, Avatar: a.Avatar})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package home

import (
	"encoding/json"
	"net/http"

	"dog-life/internal/domain/dogs"
	"dog-life/internal/domain/feed"
	"dog-life/internal/domain/notifications"
	"dog-life/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/home", homeHandler(svc))
}

type pupsonaResponse struct {
	Name       string      `json:"name"`
	Avatar     string      `json:"avatar"`
	DiaryEntry string      `json:"diary_entry"`
	Gender     dogs.Gender `json:"gender"`
}

type weatherResponse struct {
	Condition      Condition `json:"condition"`
	TemperatureF   int       `json:"temperature_f"`
	Recommendation string    `json:"recommendation"`
}

// screenResponse es la pantalla Home completa.
type screenResponse struct {
	Pupsona       pupsonaResponse              `json:"pupsona"`
	Weather       weatherResponse              `json:"weather"`
	Posts         []feed.PostResponse          `json:"posts"`
	Notifications notifications.InboxResponse `json:"notifications"`
}

// homeHandler godoc
// @Summary Pantalla Home
// @Description Pupsona, clima para paseos, feed social y campana de notificaciones del viewer, en una sola respuesta.
// @Tags home
// @Produce json
// @Param X-User-ID header string false "Viewer; no es autenticación"
// @Success 200 {object} screenResponse
// @Failure 500 {string} string "internal error"
// @Router /home [get]
func homeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, err := svc.Screen(r.Context(), middleware.Viewer(r.Context()))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		posts := make([]feed.PostResponse, 0, len(sc.Posts))
		for _, p := range sc.Posts {
			posts = append(posts, feed.ToResponse(p))
		}

		writeJSON(w, http.StatusOK, screenResponse{
			Pupsona: pupsonaResponse{
				Name:       sc.Pupsona.Name,
				Avatar:     sc.Pupsona.Avatar,
				DiaryEntry: sc.Pupsona.DiaryEntry,
				Gender:     sc.Pupsona.Gender,
			},
			Weather: weatherResponse{
				Condition:      sc.Weather.Condition,
				TemperatureF:   sc.Weather.TemperatureF,
				Recommendation: sc.Weather.Recommendation,
			},
			Posts:         posts,
			Notifications: notifications.ToResponse(sc.Notifications),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package match

import (
	"encoding/json"
	"net/http"

	"dog-life/internal/domain/dogs"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/match", func(mr chi.Router) {
		mr.Get("/playdates", playdatesHandler(svc))
		mr.Get("/events", eventsHandler(svc))
	})
}

type profileResponse struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Breed         string      `json:"breed"`
	Age           string      `json:"age"`
	Gender        dogs.Gender `json:"gender"`
	Image         string      `json:"image"`
	Distance      string      `json:"distance"`
	Compatibility int         `json:"compatibility"`
	Personality   []string    `json:"personality"`
	Interests     []string    `json:"interests"`
	Owner         string      `json:"owner"`
	OwnerImage    string      `json:"owner_image"`
}

type eventResponse struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Location  string   `json:"location"`
	Attendees int      `json:"attendees"`
	Image     string   `json:"image"`
	Tags      []string `json:"tags"`
}

// playdatesHandler godoc
// @Summary Perros para playdate
// @Tags match
// @Produce json
// @Success 200 {array} profileResponse
// @Router /match/playdates [get]
func playdatesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.Playdates(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]profileResponse, 0, len(list))
		for _, p := range list {
			out = append(out, profileResponse{
				ID:            p.ID,
				Name:          p.Name,
				Breed:         p.Breed,
				Age:           p.Age,
				Gender:        p.Gender,
				Image:         p.Image,
				Distance:      p.Distance,
				Compatibility: p.Compatibility,
				Personality:   nonNil(p.Personality),
				Interests:     nonNil(p.Interests),
				Owner:         p.Owner,
				OwnerImage:    p.OwnerImage,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// eventsHandler godoc
// @Summary Eventos para perros
// @Tags match
// @Produce json
// @Success 200 {array} eventResponse
// @Router /match/events [get]
func eventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.Events(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(list))
		for _, e := range list {
			out = append(out, eventResponse{
				ID:        e.ID,
				Title:     e.Title,
				Date:      e.Date,
				Time:      e.Time,
				Location:  e.Location,
				Attendees: e.Attendees,
				Image:     e.Image,
				Tags:      nonNil(e.Tags),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

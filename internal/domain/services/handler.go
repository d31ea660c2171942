package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/services", func(sr chi.Router) {
		sr.Get("/", listProvidersHandler(svc))
		sr.Get("/categories", categoriesHandler(svc))
		sr.Get("/{serviceID}", getProviderHandler(svc))
	})
}

type filterTypeResponse struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
}

type reviewResponse struct {
	ID         int     `json:"id"`
	UserName   string  `json:"user_name"`
	UserAvatar string  `json:"user_avatar"`
	Rating     float64 `json:"rating"`
	Comment    string  `json:"comment"`
	Date       string  `json:"date"`
}

// providerResponse es la tarjeta de un proveedor. En el listado no incluye
// reviews ni resumen AI; el detalle sí (tarjeta expandida).
type providerResponse struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	Type            Category         `json:"type"`
	Image           string           `json:"image"`
	Rating          float64          `json:"rating"`
	ReviewCount     int              `json:"review_count"`
	Distance        string           `json:"distance"`
	Summary         string           `json:"summary"`
	Tags            []string         `json:"tags"`
	Badges          []string         `json:"badges,omitempty"`
	Expandable      bool             `json:"expandable"`
	AIReviewSummary string           `json:"ai_review_summary,omitempty"`
	Reviews         []reviewResponse `json:"reviews,omitempty"`
}

func toResponse(p Provider, expanded bool) providerResponse {
	out := providerResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Image:       p.Image,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Distance:    p.Distance,
		Summary:     p.Summary,
		Tags:        p.Tags,
		Badges:      p.Badges,
		Expandable:  p.HasDetails(),
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if !expanded {
		return out
	}

	out.AIReviewSummary = p.AIReviewSummary
	for _, r := range p.Reviews {
		out.Reviews = append(out.Reviews, reviewResponse{
			ID:         r.ID,
			UserName:   r.UserName,
			UserAvatar: r.UserAvatar,
			Rating:     r.Rating,
			Comment:    r.Comment,
			Date:       r.Date,
		})
	}
	return out
}

// categoriesHandler godoc
// @Summary Filtros de categoría
// @Tags services
// @Produce json
// @Success 200 {array} filterTypeResponse
// @Router /services/categories [get]
func categoriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats := svc.Categories()
		out := make([]filterTypeResponse, 0, len(cats))
		for _, c := range cats {
			out = append(out, filterTypeResponse{ID: c.ID, Label: c.Label})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listProvidersHandler godoc
// @Summary Listar proveedores de servicios
// @Description Filtra por categoría y busca en nombre, resumen y tags (sin distinguir mayúsculas).
// @Tags services
// @Produce json
// @Param category query string false "Categoría" Enums(all, Vet, Groomer, Daycare, Walker, Trainer)
// @Param q query string false "Texto a buscar"
// @Success 200 {array} providerResponse
// @Failure 400 {string} string "invalid category"
// @Router /services [get]
func listProvidersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, ok := ParseCategory(r.URL.Query().Get("category"))
		if !ok {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}

		list, err := svc.List(r.Context(), ListFilter{Category: cat, Query: r.URL.Query().Get("q")})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]providerResponse, 0, len(list))
		for _, p := range list {
			out = append(out, toResponse(p, false))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getProviderHandler godoc
// @Summary Detalle de proveedor
// @Description Tarjeta expandida: incluye resumen AI de reviews y reviews.
// @Tags services
// @Produce json
// @Param serviceID path int true "ID del proveedor"
// @Success 200 {object} providerResponse
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "service provider not found"
// @Router /services/{serviceID} [get]
func getProviderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "serviceID"))
		if err != nil || id <= 0 {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		p, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, ErrNotFound.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(p, true))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

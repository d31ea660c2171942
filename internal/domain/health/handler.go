package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el health tracker. limit envuelve solo el análisis.
func RegisterRoutes(r chi.Router, svc *Service, limit func(http.Handler) http.Handler) {
	r.Route("/health-tracker", func(hr chi.Router) {
		hr.Get("/summary", summaryHandler(svc))
		hr.Get("/vet-visits", vetVisitsHandler(svc))
		hr.Get("/vaccinations", vaccinationsHandler(svc))
		hr.Get("/weight", weightHandler(svc))
		hr.Get("/behavior", behaviorHandler(svc))
		hr.With(limit).Post("/symptoms/analyze", analyzeHandler(svc))
	})
}

type tileResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Note  string `json:"note"`
}

type summaryResponse struct {
	Tiles          []tileResponse `json:"tiles"`
	CurrentWeight  float64        `json:"current_weight_lbs"`
	TargetMin      float64        `json:"target_min_lbs"`
	TargetMax      float64        `json:"target_max_lbs"`
	SixMonthChange float64        `json:"six_month_change_lbs"`
}

type vetVisitResponse struct {
	ID     int    `json:"id"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
	Notes  string `json:"notes"`
}

type vaccinationResponse struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Date    string        `json:"date"`
	DueDate string        `json:"due_date"`
	Status  VaccineStatus `json:"status"`
}

type weightResponse struct {
	Month  string  `json:"month"`
	Weight float64 `json:"weight"`
}

type behaviorResponse struct {
	Month   string `json:"month"`
	Energy  int    `json:"energy"`
	Anxiety int    `json:"anxiety"`
}

type analysisResultResponse struct {
	Condition      string   `json:"condition"`
	Confidence     int      `json:"confidence"`
	Severity       Severity `json:"severity"`
	Recommendation string   `json:"recommendation"`
	RequiresVet    bool     `json:"requires_vet"`
}

type analysisResponse struct {
	MediaType MediaKind                `json:"media_type"`
	Results   []analysisResultResponse `json:"results"`
}

// summaryHandler godoc
// @Summary Resumen de salud
// @Tags health
// @Produce json
// @Success 200 {object} summaryResponse
// @Router /health-tracker/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.Summary(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		tiles := make([]tileResponse, 0, len(s.Tiles))
		for _, t := range s.Tiles {
			tiles = append(tiles, tileResponse{Label: t.Label, Value: t.Value, Note: t.Note})
		}
		writeJSON(w, http.StatusOK, summaryResponse{
			Tiles:          tiles,
			CurrentWeight:  s.CurrentWeight,
			TargetMin:      s.TargetMin,
			TargetMax:      s.TargetMax,
			SixMonthChange: s.SixMonthChange,
		})
	}
}

// vetVisitsHandler godoc
// @Summary Visitas al veterinario
// @Description Más reciente primero. `q` busca en motivo y notas.
// @Tags health
// @Produce json
// @Param q query string false "Texto a buscar"
// @Param limit query int false "Máximo de resultados (default 50, max 200)"
// @Success 200 {array} vetVisitResponse
// @Failure 400 {string} string "limit inválido"
// @Router /health-tracker/vet-visits [get]
func vetVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{Query: r.URL.Query().Get("q")}
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "limit inválido", http.StatusBadRequest)
				return
			}
			filter.Limit = n
		}

		visits, err := svc.VetVisits(r.Context(), filter)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "limit inválido", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]vetVisitResponse, 0, len(visits))
		for _, v := range visits {
			out = append(out, vetVisitResponse{ID: v.ID, Date: v.Date, Reason: v.Reason, Notes: v.Notes})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// vaccinationsHandler godoc
// @Summary Vacunas
// @Tags health
// @Produce json
// @Success 200 {array} vaccinationResponse
// @Router /health-tracker/vaccinations [get]
func vaccinationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.Vaccinations(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]vaccinationResponse, 0, len(list))
		for _, v := range list {
			out = append(out, vaccinationResponse{
				ID:      v.ID,
				Name:    v.Name,
				Date:    v.Date,
				DueDate: v.DueDate,
				Status:  v.Status,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// weightHandler godoc
// @Summary Serie de peso (lbs por mes)
// @Tags health
// @Produce json
// @Success 200 {array} weightResponse
// @Router /health-tracker/weight [get]
func weightHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.Weight(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]weightResponse, 0, len(list))
		for _, p := range list {
			out = append(out, weightResponse{Month: p.Month, Weight: p.Weight})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// behaviorHandler godoc
// @Summary Serie de comportamiento (energía y ansiedad 0-10)
// @Tags health
// @Produce json
// @Success 200 {array} behaviorResponse
// @Router /health-tracker/behavior [get]
func behaviorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.Behavior(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]behaviorResponse, 0, len(list))
		for _, p := range list {
			out = append(out, behaviorResponse{Month: p.Month, Energy: p.Energy, Anxiety: p.Anxiety})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// analyzeHandler godoc
// @Summary Symptom checker
// @Description Recibe una foto o video (multipart, campo `media`, máx 10MB) y devuelve el análisis simulado.
// @Tags health
// @Accept multipart/form-data
// @Produce json
// @Param media formData file true "Foto o video"
// @Success 200 {object} analysisResponse
// @Failure 400 {string} string "media is required / invalid file type"
// @Failure 413 {string} string "file too large"
// @Failure 429 {string} string "too many requests"
// @Router /health-tracker/symptoms/analyze [post]
func analyzeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// margen para los headers del multipart
		r.Body = http.MaxBytesReader(w, r.Body, MaxMediaSize+(1<<20))
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				http.Error(w, ErrMediaTooLarge.Error(), http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "media is required", http.StatusBadRequest)
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		}()

		f, fh, err := r.FormFile("media")
		if err != nil {
			http.Error(w, "media is required", http.StatusBadRequest)
			return
		}
		_ = f.Close()

		res, err := svc.Analyze(r.Context(), Media{
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidMedia):
				http.Error(w, ErrInvalidMedia.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrMediaTooLarge):
				http.Error(w, ErrMediaTooLarge.Error(), http.StatusRequestEntityTooLarge)
			case r.Context().Err() != nil:
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		out := analysisResponse{
			MediaType: res.Kind,
			Results:   make([]analysisResultResponse, 0, len(res.Results)),
		}
		for _, a := range res.Results {
			out.Results = append(out.Results, analysisResultResponse{
				Condition:      a.Condition,
				Confidence:     a.Confidence,
				Severity:       a.Severity,
				Recommendation: a.Recommendation,
				RequiresVet:    a.RequiresVet,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

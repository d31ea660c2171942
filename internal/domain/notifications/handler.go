package notifications

import (
	"encoding/json"
	"net/http"

	"dog-life/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/notifications", func(nr chi.Router) {
		nr.Get("/", listNotificationsHandler(svc))
		nr.Post("/read-all", markAllReadHandler(svc))
	})
}

type notificationResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Read        bool   `json:"read"`
}

// InboxResponse es la campana de notificaciones con el contador de no leídas.
type InboxResponse struct {
	Items  []notificationResponse `json:"items"`
	Unread int                    `json:"unread"`
}

func ToResponse(in Inbox) InboxResponse {
	out := InboxResponse{
		Items:  make([]notificationResponse, 0, len(in.Items)),
		Unread: in.Unread,
	}
	for _, n := range in.Items {
		out.Items = append(out.Items, notificationResponse{
			ID:          n.ID,
			Title:       n.Title,
			Description: n.Description,
			Time:        n.Time,
			Read:        n.Read,
		})
	}
	return out
}

// listNotificationsHandler godoc
// @Summary Listar notificaciones
// @Description Devuelve las notificaciones del viewer (`X-User-ID`, por defecto `guest`) y el contador de no leídas.
// @Tags notifications
// @Produce json
// @Param X-User-ID header string false "Viewer; no es autenticación"
// @Success 200 {object} InboxResponse
// @Failure 500 {string} string "internal error"
// @Router /notifications [get]
func listNotificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := svc.List(r.Context(), middleware.Viewer(r.Context()))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(in))
	}
}

// markAllReadHandler godoc
// @Summary Marcar todas como leídas
// @Description Marca todas las notificaciones como leídas para el viewer. Idempotente.
// @Tags notifications
// @Produce json
// @Param X-User-ID header string false "Viewer; no es autenticación"
// @Success 200 {object} InboxResponse
// @Failure 500 {string} string "internal error"
// @Router /notifications/read-all [post]
func markAllReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := svc.MarkAllRead(r.Context(), middleware.Viewer(r.Context()))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(in))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Package navigation modela la barra inferior de la app.
package navigation

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type Tab struct {
	Name   string
	Href   string
	Active bool
}

var tabs = []Tab{
	{Name: "Home", Href: "/"},
	{Name: "Ask AI", Href: "/ask-ai"},
	{Name: "Health", Href: "/health"},
	{Name: "Services", Href: "/services"},
	{Name: "Match", Href: "/match"},
}

// Tabs devuelve las cinco pestañas. Active es igualdad exacta de path:
// "/ask-ai/community" no activa "Ask AI".
func Tabs(path string) []Tab {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}

	out := make([]Tab, len(tabs))
	for i, t := range tabs {
		t.Active = t.Href == path
		out[i] = t
	}
	return out
}

func RegisterRoutes(r chi.Router) {
	r.Get("/nav", tabsHandler())
}

type tabResponse struct {
	Name   string `json:"name"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// tabsHandler godoc
// @Summary Navegación inferior
// @Description Pestañas de la app con la activa marcada según `path`.
// @Tags navigation
// @Produce json
// @Param path query string false "Path actual (default /)"
// @Success 200 {array} tabResponse
// @Router /nav [get]
func tabsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := Tabs(r.URL.Query().Get("path"))

		out := make([]tabResponse, 0, len(list))
		for _, t := range list {
			out = append(out, tabResponse{Name: t.Name, Href: t.Href, Active: t.Active})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(out)
	}
}

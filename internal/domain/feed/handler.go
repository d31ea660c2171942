package feed

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/feed", listPostsHandler(svc))
}

// PostResponse representa un post del feed social.
type PostResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Image    string `json:"image"`
	Caption  string `json:"caption"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	TimeAgo  string `json:"time_ago"`
}

// ToResponse es usado también por home.
func ToResponse(p Post) PostResponse {
	return PostResponse{
		ID:       p.ID,
		Username: p.Username,
		Avatar:   p.Avatar,
		Image:    p.Image,
		Caption:  p.Caption,
		Likes:    p.Likes,
		Comments: p.Comments,
		TimeAgo:  p.TimeAgo,
	}
}

// listPostsHandler godoc
// @Summary Listar posts del feed
// @Description Devuelve el feed social. Avatares e imágenes vacías se reemplazan por las imágenes por defecto.
// @Tags feed
// @Produce json
// @Success 200 {array} PostResponse
// @Failure 500 {string} string "internal error"
// @Router /feed [get]
func listPostsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]PostResponse, 0, len(posts))
		for _, p := range posts {
			out = append(out, ToResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

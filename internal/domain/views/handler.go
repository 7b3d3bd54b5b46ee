package views

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vet-care-assistant/internal/domain/animals"
	"vet-care-assistant/internal/i18n"
	"vet-care-assistant/internal/middleware"
	"vet-care-assistant/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router) {
	r.Get("/views", screenHandler())
	r.Get("/views/{view}", screenHandler())
	r.Get("/categories", categoriesHandler())
}

type navItemResponse struct {
	View        View   `json:"view"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

type screenResponse struct {
	View     View              `json:"view"`
	Language i18n.Language     `json:"language"`
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle"`
	Nav      []navItemResponse `json:"nav"`
}

type categoryResponse struct {
	Key  animals.Category `json:"key"`
	Name string           `json:"name"`
}

func screenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := Render(Parse(chi.URLParam(r, "view")), middleware.GetLanguage(r.Context()))

		nav := make([]navItemResponse, 0, len(s.Nav))
		for _, n := range s.Nav {
			nav = append(nav, navItemResponse{
				View:        n.View,
				Label:       n.Label,
				Description: n.Description,
				Active:      n.Active,
			})
		}
		httpx.WriteJSON(w, http.StatusOK, screenResponse{
			View:     s.View,
			Language: s.Language,
			Title:    s.Title,
			Subtitle: s.Subtitle,
			Nav:      nav,
		})
	}
}

// categoriesHandler: claves estables + nombre visible, para selects.
func categoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := middleware.GetLanguage(r.Context())

		out := make([]categoryResponse, 0, len(animals.Categories))
		for _, c := range animals.Categories {
			out = append(out, categoryResponse{Key: c, Name: i18n.CategoryName(c, lang)})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

package emergency

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vet-care-assistant/internal/domain/animals"
	"vet-care-assistant/internal/i18n"
	"vet-care-assistant/internal/middleware"
	"vet-care-assistant/internal/platform/httpx"
)

type Recorder interface {
	EmergencyLookup(found bool)
}

func RegisterRoutes(r chi.Router, svc *Service, rec Recorder) {
	if rec == nil {
		rec = nopRecorder{}
	}

	r.Route("/emergency", func(er chi.Router) {
		er.Get("/types", typesHandler(svc))
		er.Get("/{category}/{type}", lookupHandler(svc, rec))
	})
}

type optionResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type hotlineResponse struct {
	Label  string `json:"label"`
	Number string `json:"number"`
}

type typesResponse struct {
	Animals     []optionResponse `json:"animals"`
	Emergencies []optionResponse `json:"emergencies"`
	Hotline     hotlineResponse  `json:"hotline"`
}

type protocolResponse struct {
	Category       string          `json:"category"`
	CategoryName   string          `json:"category_name"`
	Type           string          `json:"type"`
	TypeName       string          `json:"type_name"`
	Language       i18n.Language   `json:"language"`
	Steps          []string        `json:"steps"`
	Warning        string          `json:"warning,omitempty"`
	CriticalNotice string          `json:"critical_notice,omitempty"`
	Hotline        hotlineResponse `json:"hotline"`
}

func typesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := middleware.GetLanguage(r.Context())

		out := typesResponse{
			Animals:     make([]optionResponse, 0, len(animals.Categories)),
			Emergencies: make([]optionResponse, 0, len(animals.EmergencyTypes)),
			Hotline:     toHotlineResponse(svc.Hotline(lang)),
		}
		for _, c := range animals.Categories {
			out.Animals = append(out.Animals, optionResponse{Key: string(c), Name: i18n.CategoryName(c, lang)})
		}
		for _, e := range animals.EmergencyTypes {
			out.Emergencies = append(out.Emergencies, optionResponse{Key: string(e), Name: i18n.EmergencyName(e, lang)})
		}

		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// lookupHandler godoc
// @Summary Pasos de primeros auxilios
// @Description Búsqueda exacta por (animal, emergencia). Si no hay protocolo devuelve 200 con steps vacío.
// @Tags emergency
// @Produce json
// @Param category path string true "dog | cat | poultry | cattle | pig"
// @Param type path string true "severe_bleeding | difficulty_breathing | poisoning | ..."
// @Param lang query string false "en | ta"
// @Success 200 {object} protocolResponse
// @Router /emergency/{category}/{type} [get]
func lookupHandler(svc *Service, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := middleware.GetLanguage(r.Context())

		// claves desconocidas no son error: simplemente no hay protocolo
		category, _ := animals.ParseCategory(chi.URLParam(r, "category"))
		typ, _ := animals.ParseEmergencyType(chi.URLParam(r, "type"))

		p := svc.Lookup(category, typ, lang)
		rec.EmergencyLookup(len(p.Steps) > 0)

		httpx.WriteJSON(w, http.StatusOK, protocolResponse{
			Category:       string(p.Category),
			CategoryName:   i18n.CategoryName(p.Category, lang),
			Type:           string(p.Type),
			TypeName:       i18n.EmergencyName(p.Type, lang),
			Language:       lang,
			Steps:          p.Steps,
			Warning:        p.Warning,
			CriticalNotice: p.CriticalNotice,
			Hotline:        toHotlineResponse(p.Hotline),
		})
	}
}

func toHotlineResponse(h Hotline) hotlineResponse {
	return hotlineResponse{Label: h.Label, Number: h.Number}
}

type nopRecorder struct{}

func (nopRecorder) EmergencyLookup(bool) {}

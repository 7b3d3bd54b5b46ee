package prescriptions

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vet-care-assistant/internal/i18n"
	"vet-care-assistant/internal/middleware"
	"vet-care-assistant/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/prescriptions", func(pr chi.Router) {
		pr.Get("/", listHandler(svc))
		pr.Get("/{prescriptionID}", getHandler(svc))
	})
}

type medicineResponse struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
	Precautions  string `json:"precautions"`
}

type prescriptionResponse struct {
	ID           string             `json:"id"`
	Animal       string             `json:"animal"`
	AnimalName   string             `json:"animal_name"`
	Condition    string             `json:"condition"`
	Severity     string             `json:"severity"`
	SeverityName string             `json:"severity_name"`
	DateIssued   string             `json:"date_issued"` // YYYY-MM-DD
	Medicines    []medicineResponse `json:"medicines"`
	FollowUp     string             `json:"follow_up"`
}

// listHandler godoc
// @Summary Listar recetas
// @Description Búsqueda por condición o animal (q) y filtro por animal (animal=all|dog|cat|...).
// @Tags prescriptions
// @Produce json
// @Param q query string false "Texto a buscar"
// @Param animal query string false "all | dog | cat | poultry | cattle | pig"
// @Param lang query string false "en | ta"
// @Success 200 {array} prescriptionResponse
// @Router /prescriptions [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := middleware.GetLanguage(r.Context())
		q := r.URL.Query()

		list, err := svc.List(r.Context(), Filter{
			Query:  q.Get("q"),
			Animal: q.Get("animal"),
		}, lang)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]prescriptionResponse, 0, len(list))
		for _, p := range list {
			out = append(out, toPrescriptionResponse(p, lang))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "prescriptionID"))
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPrescriptionResponse(p, middleware.GetLanguage(r.Context())))
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "prescription not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPrescriptionResponse(p Prescription, lang i18n.Language) prescriptionResponse {
	meds := make([]medicineResponse, 0, len(p.Medicines))
	for _, m := range p.Medicines {
		meds = append(meds, medicineResponse{
			Name:         m.Name,
			Dosage:       m.Dosage,
			Duration:     m.Duration,
			Instructions: m.Instructions.In(lang),
			Precautions:  m.Precautions.In(lang),
		})
	}
	return prescriptionResponse{
		ID:           p.ID,
		Animal:       string(p.Category),
		AnimalName:   i18n.CategoryName(p.Category, lang),
		Condition:    p.Condition.In(lang),
		Severity:     string(p.Severity),
		SeverityName: i18n.SeverityName(p.Severity, lang),
		DateIssued:   p.DateIssued.Format("2006-01-02"),
		Medicines:    meds,
		FollowUp:     p.FollowUp.In(lang),
	}
}

package vets

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"vet-care-assistant/internal/i18n"
	"vet-care-assistant/internal/middleware"
	"vet-care-assistant/internal/platform/httpx"
)

var (
	noLocationMsg = i18n.Text{
		EN: "Location access needed to find nearby veterinarians",
		TA: "அருகிலுள்ள மருத்துவர்களைக் கண்டறிய இடம் அணுகல் தேவை",
	}
	enableLocationMsg = i18n.Text{
		EN: "Enable Location",
		TA: "இடத்தை இயக்கு",
	}
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vets", func(vr chi.Router) {
		vr.Get("/", nearbyHandler(svc))
		vr.Get("/{vetID}", getHandler(svc))
	})
}

type vetResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	DistanceKm    float64  `json:"distance_km"`
	Rating        float64  `json:"rating"`
	OpenNow       bool     `json:"open_now"`
	Emergency     bool     `json:"emergency"`
	Specialties   []string `json:"specialties"`
	CallURL       string   `json:"call_url"`
	DirectionsURL string   `json:"directions_url"`
}

type locationErrorResponse struct {
	Error  string `json:"error"`
	Action string `json:"action"`
}

// nearbyHandler godoc
// @Summary Veterinarios cercanos
// @Description Requiere lat/lng. Devuelve el directorio ordenado por distancia.
// @Tags vets
// @Produce json
// @Param lat query number true "Latitud"
// @Param lng query number true "Longitud"
// @Param open_now query bool false "Solo abiertos"
// @Param emergency query bool false "Solo 24/7"
// @Param lang query string false "en | ta"
// @Success 200 {array} vetResponse
// @Failure 400 {object} locationErrorResponse
// @Router /vets [get]
func nearbyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := middleware.GetLanguage(r.Context())
		q := r.URL.Query()

		f := Filter{
			OpenNow:   parseBool(q.Get("open_now")),
			Emergency: parseBool(q.Get("emergency")),
		}

		list, err := svc.Nearby(r.Context(), parseLocation(q.Get("lat"), q.Get("lng")), f)
		if err != nil {
			writeError(w, lang, err)
			return
		}

		out := make([]vetResponse, 0, len(list))
		for _, v := range list {
			out = append(out, toVetResponse(v, lang))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := middleware.GetLanguage(r.Context())

		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "vetID"))
		if err != nil {
			writeError(w, lang, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVetResponse(v, lang))
	}
}

func writeError(w http.ResponseWriter, lang i18n.Language, err error) {
	switch {
	case errors.Is(err, ErrLocationRequired):
		httpx.WriteJSON(w, http.StatusBadRequest, locationErrorResponse{
			Error:  noLocationMsg.In(lang),
			Action: enableLocationMsg.In(lang),
		})
	case errors.Is(err, ErrNotFound):
		http.Error(w, "vet not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// parseLocation: nil si falta alguna coordenada o no es numérica.
func parseLocation(lat, lng string) *Location {
	if strings.TrimSpace(lat) == "" || strings.TrimSpace(lng) == "" {
		return nil
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return nil
	}
	ln, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return nil
	}
	return &Location{Lat: la, Lng: ln}
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(strings.TrimSpace(s))
	return b
}

func toVetResponse(v Vet, lang i18n.Language) vetResponse {
	address := v.Address.In(lang)
	return vetResponse{
		ID:            v.ID,
		Name:          v.Name.In(lang),
		Address:       address,
		Phone:         v.Phone,
		DistanceKm:    v.DistanceKm,
		Rating:        v.Rating,
		OpenNow:       v.OpenNow,
		Emergency:     v.Emergency,
		Specialties:   v.Specialties.In(lang),
		CallURL:       CallURL(v.Phone),
		DirectionsURL: DirectionsURL(address),
	}
}

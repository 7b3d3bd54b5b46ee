package diagnosis

import (
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vet-care-assistant/internal/domain/animals"
	"vet-care-assistant/internal/i18n"
	"vet-care-assistant/internal/middleware"
	"vet-care-assistant/internal/platform/httpx"
)

// Recorder para metrics. Puede ser nil.
type Recorder interface {
	DiagnosisGenerated(category, severity string)
	UploadRejected(reason string)
}

// margen para los campos del form además del archivo
const multipartOverhead = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service, rec Recorder) {
	if rec == nil {
		rec = nopRecorder{}
	}

	r.Route("/detections", func(dr chi.Router) {
		dr.Post("/", uploadHandler(svc, rec))
		dr.Post("/{category}", generateHandler(svc, rec))
	})
}

type prescriptionResponse struct {
	Medicine    string `json:"medicine"`
	Dosage      string `json:"dosage"`
	Precautions string `json:"precautions"`
}

type mediaResponse struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

type resultResponse struct {
	ID           string           `json:"id"`
	Category     animals.Category `json:"category"`
	CategoryName string           `json:"category_name"`
	Language     i18n.Language    `json:"language"`

	Disease      string           `json:"disease"`
	Confidence   int              `json:"confidence"`
	Severity     animals.Severity `json:"severity"`
	SeverityName string           `json:"severity_name"`
	Urgency      animals.Urgency  `json:"urgency"`
	UrgencyName  string           `json:"urgency_name"`

	Symptoms        []string             `json:"symptoms"`
	Recommendations []string             `json:"recommendations"`
	Prescription    prescriptionResponse `json:"prescription"`

	Media     *mediaResponse `json:"media,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// uploadHandler godoc
// @Summary Analizar imagen o video
// @Description Recibe un archivo (multipart "file") y devuelve un diagnóstico simulado. Límite 10MB por defecto.
// @Tags detections
// @Accept mpfd
// @Produce json
// @Param file formData file true "Imagen o video"
// @Param category formData string false "dog | cat | poultry | cattle | pig"
// @Param lang query string false "en | ta"
// @Success 200 {object} resultResponse
// @Failure 400 {string} string "file required"
// @Failure 413 {string} string "file too large"
// @Failure 415 {string} string "unsupported media type"
// @Router /detections [post]
func uploadHandler(svc *Service, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, svc.MaxUploadBytes()+multipartOverhead)

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				rec.UploadRejected("too_large")
				http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer func(f multipart.File) { _ = f.Close() }(file)

		lang := middleware.GetLanguage(r.Context())
		category := animals.OrGeneric(r.FormValue("category"))

		res, err := svc.Analyze(r.Context(), Upload{
			FileName: header.Filename,
			Size:     header.Size,
			Content:  file,
		}, category, lang)
		if err != nil {
			writeError(w, rec, err)
			return
		}
		rec.DiagnosisGenerated(string(res.Category), string(res.Severity))

		httpx.WriteJSON(w, http.StatusOK, toResultResponse(res))
	}
}

// generateHandler: mismo resultado sin archivo (botón "analizar" sin upload real).
func generateHandler(svc *Service, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := middleware.GetLanguage(r.Context())
		category := animals.OrGeneric(chi.URLParam(r, "category"))

		res, err := svc.Detect(r.Context(), category, lang)
		if err != nil {
			writeError(w, rec, err)
			return
		}
		rec.DiagnosisGenerated(string(res.Category), string(res.Severity))

		httpx.WriteJSON(w, http.StatusOK, toResultResponse(res))
	}
}

func writeError(w http.ResponseWriter, rec Recorder, err error) {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		rec.UploadRejected("too_large")
		http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, ErrUnsupportedMedia):
		rec.UploadRejected("unsupported_media")
		http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "file required", http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toResultResponse(res Result) resultResponse {
	out := resultResponse{
		ID:              res.ID,
		Category:        res.Category,
		CategoryName:    i18n.CategoryName(res.Category, res.Language),
		Language:        res.Language,
		Disease:         res.Disease,
		Confidence:      res.Confidence,
		Severity:        res.Severity,
		SeverityName:    i18n.SeverityName(res.Severity, res.Language),
		Urgency:         res.Urgency,
		UrgencyName:     i18n.UrgencyName(res.Urgency, res.Language),
		Symptoms:        res.Symptoms,
		Recommendations: res.Recommendations,
		Prescription: prescriptionResponse{
			Medicine:    res.Prescription.Medicine,
			Dosage:      res.Prescription.Dosage,
			Precautions: res.Prescription.Precautions,
		},
		CreatedAt: res.CreatedAt,
	}
	if res.Media != nil {
		out.Media = &mediaResponse{
			FileName:    res.Media.FileName,
			ContentType: res.Media.ContentType,
			SizeBytes:   res.Media.SizeBytes,
		}
	}
	return out
}

type nopRecorder struct{}

func (nopRecorder) DiagnosisGenerated(string, string) {}
func (nopRecorder) UploadRejected(string)             {}

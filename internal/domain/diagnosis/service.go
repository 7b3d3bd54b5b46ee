package diagnosis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"vet-care-assistant/internal/domain/animals"
	"vet-care-assistant/internal/i18n"
	"vet-care-assistant/internal/platform/task"
)

var (
	ErrFileTooLarge     = errors.New("file too large")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrInvalidInput     = errors.New("invalid input")
)

// DefaultMaxUploadBytes = 10MB, límite del cliente original.
const DefaultMaxUploadBytes int64 = 10 * 1024 * 1024

// Rand es la fuente de aleatoriedad. *rand.Rand de math/rand/v2 la cumple;
// los tests inyectan una secuencia fija para verificar resultados exactos.
type Rand interface {
	IntN(n int) int
}

// NewRand crea un PCG sembrado (misma semilla => misma secuencia).
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type lockedRand struct {
	mu sync.Mutex
	r  Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

type Service struct {
	rnd            *lockedRand
	now            func() time.Time
	delay          time.Duration
	maxUploadBytes int64
}

func NewService(r Rand, delay time.Duration, maxUploadBytes int64) *Service {
	if r == nil {
		r = NewRand(uint64(time.Now().UnixNano()))
	}
	if delay < 0 {
		delay = 0
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &Service{
		rnd:            &lockedRand{r: r},
		now:            time.Now,
		delay:          delay,
		maxUploadBytes: maxUploadBytes,
	}
}

func (s *Service) MaxUploadBytes() int64 {
	return s.maxUploadBytes
}

// Generate arma un diagnóstico simulado para la categoría.
// Orden de consumo del Rand (fijo, los tests dependen de él):
// enfermedad, severidad, cantidad de síntomas, índices de síntomas, medicamento, confianza.
func (s *Service) Generate(category animals.Category, lang i18n.Language) Result {
	if _, ok := tables[category]; !ok {
		category = animals.CategoryGeneric
	}
	t := tableFor(category)

	disease := t.Diseases[s.rnd.IntN(len(t.Diseases))]
	severity := animals.Severities[s.rnd.IntN(len(animals.Severities))]

	n := MinSymptoms + s.rnd.IntN(MaxSymptoms-MinSymptoms+1)
	if n > len(t.Symptoms) {
		n = len(t.Symptoms)
	}
	idx := s.pickIndexes(len(t.Symptoms), n)
	symptoms := make([]string, 0, n)
	for _, i := range idx {
		symptoms = append(symptoms, t.Symptoms[i].In(lang))
	}

	med := t.Medicines[s.rnd.IntN(len(t.Medicines))]
	confidence := MinConfidence + s.rnd.IntN(MaxConfidence-MinConfidence+1)

	return Result{
		ID:              uuid.NewString(),
		Category:        category,
		Language:        lang,
		Disease:         disease.In(lang),
		Confidence:      confidence,
		Severity:        severity,
		Urgency:         severity.Urgency(),
		Symptoms:        symptoms,
		Recommendations: recommendations.In(lang),
		Prescription: Prescription{
			Medicine:    med.Name,
			Dosage:      med.Dosage.In(lang),
			Precautions: med.Precautions.In(lang),
		},
		CreatedAt: s.now(),
	}
}

// Detect es Generate detrás de la latencia artificial.
func (s *Service) Detect(ctx context.Context, category animals.Category, lang i18n.Language) (Result, error) {
	return task.Go(ctx, s.delay, func(context.Context) (Result, error) {
		return s.Generate(category, lang), nil
	}).Await(ctx)
}

// Analyze valida el archivo y recién entonces genera el resultado.
// Un archivo que excede el límite nunca llega al camino de análisis.
func (s *Service) Analyze(ctx context.Context, up Upload, category animals.Category, lang i18n.Language) (Result, error) {
	if up.Size > s.maxUploadBytes {
		return Result{}, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, up.Size, s.maxUploadBytes)
	}
	if up.Content == nil || up.Size <= 0 {
		return Result{}, ErrInvalidInput
	}

	contentType, err := sniff(up.Content)
	if err != nil {
		return Result{}, err
	}

	res, err := s.Detect(ctx, category, lang)
	if err != nil {
		return Result{}, err
	}
	res.Media = &Media{
		FileName:    strings.TrimSpace(up.FileName),
		ContentType: contentType,
		SizeBytes:   up.Size,
	}
	return res, nil
}

func sniff(r io.Reader) (string, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("detect media type: %w", err)
	}
	ct := mt.String()
	if strings.HasPrefix(ct, "image/") || strings.HasPrefix(ct, "video/") {
		return ct, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedMedia, ct)
}

// pickIndexes elige n índices distintos en [0,size) con Fisher-Yates parcial
// y los devuelve ordenados (los síntomas mantienen el orden de la tabla).
func (s *Service) pickIndexes(size, n int) []int {
	pool := make([]int, size)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + s.rnd.IntN(size-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := append([]int(nil), pool[:n]...)
	sort.Ints(out)
	return out
}

package diagnosis

import (
	"io"
	"time"

	"vet-care-assistant/internal/domain/animals"
	"vet-care-assistant/internal/i18n"
)

type Prescription struct {
	Medicine    string
	Dosage      string
	Precautions string
}

// Media describe el archivo subido (si el resultado vino de un upload).
type Media struct {
	FileName    string
	ContentType string
	SizeBytes   int64
}

// Result es un diagnóstico simulado. Se crea por request y no se persiste.
type Result struct {
	ID       string
	Category animals.Category
	Language i18n.Language

	Disease    string
	Confidence int // [MinConfidence, MaxConfidence]
	Severity   animals.Severity
	Urgency    animals.Urgency

	Symptoms        []string // 2..4, en el orden de la tabla
	Recommendations []string
	Prescription    Prescription

	Media     *Media
	CreatedAt time.Time
}

const (
	MinConfidence = 75
	MaxConfidence = 95

	MinSymptoms = 2
	MaxSymptoms = 4
)

// Upload es el archivo a "analizar". Content solo se usa para detectar el tipo.
type Upload struct {
	FileName string
	Size     int64
	Content  io.Reader
}

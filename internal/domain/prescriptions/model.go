package prescriptions

import (
	"time"

	"vet-care-assistant/internal/domain/animals"
	"vet-care-assistant/internal/i18n"
)

type Medicine struct {
	Name         string
	Dosage       string
	Duration     string
	Instructions i18n.Text
	Precautions  i18n.Text
}

// Prescription es dato de referencia (solo lectura).
type Prescription struct {
	ID         string
	Category   animals.Category
	Condition  i18n.Text
	Severity   animals.Severity
	DateIssued time.Time
	Medicines  []Medicine
	FollowUp   i18n.Text
}

// Filter: Query busca en la condición o el animal (en el idioma activo).
// Animal vacío o "all" => sin filtro.
type Filter struct {
	Query  string
	Animal string
}

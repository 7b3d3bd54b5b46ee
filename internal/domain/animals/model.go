package animals

import "strings"

// Category es la clave estable de categoría animal.
// Nunca depende del idioma: los nombres visibles viven en i18n.
type Category string

const (
	CategoryDog     Category = "dog"
	CategoryCat     Category = "cat"
	CategoryPoultry Category = "poultry"
	CategoryCattle  Category = "cattle"
	CategoryPig     Category = "pig"

	// CategoryGeneric es el fallback de todas las tablas.
	CategoryGeneric Category = "generic"
)

// Categories en el orden en que se muestran.
var Categories = []Category{
	CategoryDog,
	CategoryCat,
	CategoryPoultry,
	CategoryCattle,
	CategoryPig,
}

func ParseCategory(s string) (Category, bool) {
	c := Category(normalizeKey(s))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// OrGeneric devuelve la categoría si es conocida, si no CategoryGeneric.
func OrGeneric(s string) Category {
	if c, ok := ParseCategory(s); ok {
		return c
	}
	return CategoryGeneric
}

type EmergencyType string

const (
	EmergencySevereBleeding      EmergencyType = "severe_bleeding"
	EmergencyDifficultyBreathing EmergencyType = "difficulty_breathing"
	EmergencyPoisoning           EmergencyType = "poisoning"
	EmergencyChoking             EmergencyType = "choking"
	EmergencyBrokenBones         EmergencyType = "broken_bones"
	EmergencyHighFever           EmergencyType = "high_fever"
	EmergencySeizures            EmergencyType = "seizures"
	EmergencyUnconscious         EmergencyType = "unconscious"
)

var EmergencyTypes = []EmergencyType{
	EmergencySevereBleeding,
	EmergencyDifficultyBreathing,
	EmergencyPoisoning,
	EmergencyChoking,
	EmergencyBrokenBones,
	EmergencyHighFever,
	EmergencySeizures,
	EmergencyUnconscious,
}

// ParseEmergencyType acepta la clave ("severe_bleeding") o su forma
// separada por espacios/guiones ("Severe Bleeding", "severe-bleeding").
func ParseEmergencyType(s string) (EmergencyType, bool) {
	t := EmergencyType(normalizeKey(s))
	for _, known := range EmergencyTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// Severity
// @Enum mild, moderate, severe
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

var Severities = []Severity{SeverityMild, SeverityModerate, SeveritySevere}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func (s Severity) Urgency() Urgency {
	switch s {
	case SeveritySevere:
		return UrgencyHigh
	case SeverityModerate:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.Join(strings.Fields(s), "_")
}

package emergency

import (
	"strings"

	"vet-care-assistant/internal/domain/animals"
	"vet-care-assistant/internal/i18n"
)

const DefaultHotline = "+94 11 123 4567"

// Protocol es lo que ve el usuario al elegir animal + emergencia.
type Protocol struct {
	Category animals.Category
	Type     animals.EmergencyType
	Language i18n.Language

	Steps          []string // vacío si no hay protocolo
	Warning        string
	CriticalNotice string
	Hotline        Hotline
}

type Hotline struct {
	Label  string
	Number string
}

type Service struct {
	hotline string
}

func NewService(hotline string) *Service {
	hotline = strings.TrimSpace(hotline)
	if hotline == "" {
		hotline = DefaultHotline
	}
	return &Service{hotline: hotline}
}

func (s *Service) Hotline(lang i18n.Language) Hotline {
	return Hotline{Label: hotlineLabel.In(lang), Number: s.hotline}
}

// Lookup nunca falla. Con pasos vacíos no tiene sentido el aviso de tiempo
// crítico, así que solo se completa cuando hay protocolo.
func (s *Service) Lookup(category animals.Category, typ animals.EmergencyType, lang i18n.Language) Protocol {
	p := Protocol{
		Category: category,
		Type:     typ,
		Language: lang,
		Steps:    Steps(category, typ, lang),
		Hotline:  s.Hotline(lang),
	}
	if len(p.Steps) > 0 {
		p.Warning = warning.In(lang)
		p.CriticalNotice = criticalNotice.In(lang)
	}
	return p
}

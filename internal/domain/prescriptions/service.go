package prescriptions

import (
	"context"
	"errors"
	"sort"
	"strings"

	"vet-care-assistant/internal/domain/animals"
	"vet-care-assistant/internal/i18n"
)

var ErrNotFound = errors.New("prescription not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List filtra y ordena por fecha (más reciente primero).
// La búsqueda es sobre el texto visible en lang, igual que en pantalla.
func (s *Service) List(ctx context.Context, f Filter, lang i18n.Language) ([]Prescription, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	animal, filtered, known := animalFilter(f.Animal)

	out := make([]Prescription, 0, len(all))
	for _, p := range all {
		if filtered && (!known || p.Category != animal) {
			continue
		}
		if !matchesQuery(p, query, lang) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateIssued.After(out[j].DateIssued)
	})
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Prescription, error) {
	if strings.TrimSpace(id) == "" {
		return Prescription{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func matchesQuery(p Prescription, q string, lang i18n.Language) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Condition.In(lang)), q) ||
		strings.Contains(strings.ToLower(i18n.CategoryName(p.Category, lang)), q)
}

// animalFilter resuelve el filtro a una clave estable. Acepta la clave
// ("cattle") o el nombre visible completo en cualquier idioma ("Cattle", "மாடு").
// Vacío o "all" => sin filtro; un nombre desconocido no matchea nada.
func animalFilter(raw string) (c animals.Category, filtered, known bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return "", false, false
	}
	if c, ok := animals.ParseCategory(raw); ok {
		return c, true, true
	}
	for _, c := range animals.Categories {
		for _, l := range i18n.Supported {
			if strings.EqualFold(i18n.CategoryName(c, l), raw) {
				return c, true, true
			}
		}
	}
	return "", true, false
}

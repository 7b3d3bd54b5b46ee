package vets

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strings"
	"time"

	"vet-care-assistant/internal/platform/task"
)

var (
	ErrLocationRequired = errors.New("location required")
	ErrNotFound         = errors.New("vet not found")
)

type Service struct {
	repo  Repository
	delay time.Duration
}

func NewService(repo Repository, delay time.Duration) *Service {
	if delay < 0 {
		delay = 0
	}
	return &Service{repo: repo, delay: delay}
}

// Nearby devuelve el directorio ordenado por distancia. Sin ubicación no hay
// búsqueda: el cliente debe pedir permiso y reintentar.
func (s *Service) Nearby(ctx context.Context, loc *Location, f Filter) ([]Vet, error) {
	if loc == nil || !loc.Valid() {
		return nil, ErrLocationRequired
	}

	return task.Go(ctx, s.delay, func(ctx context.Context) ([]Vet, error) {
		all, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}

		out := make([]Vet, 0, len(all))
		for _, v := range all {
			if f.match(v) {
				out = append(out, v)
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DistanceKm < out[j].DistanceKm
		})
		return out, nil
	}).Await(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Vet, error) {
	if strings.TrimSpace(id) == "" {
		return Vet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// CallURL arma el link tel: (sin espacios).
func CallURL(phone string) string {
	return "tel:" + strings.Join(strings.Fields(phone), "")
}

// DirectionsURL abre el mapa buscando la dirección.
func DirectionsURL(address string) string {
	return "https://maps.google.com/maps?q=" + url.QueryEscape(address)
}

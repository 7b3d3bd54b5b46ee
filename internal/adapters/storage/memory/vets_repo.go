package memory

import (
	"context"
	"fmt"
	"sync"

	"vet-care-assistant/internal/domain/vets"
)

type vetRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]vets.Vet
}

// NewVetRepo arranca con el directorio cargado; es solo lectura.
func NewVetRepo(seed []vets.Vet) vets.Repository {
	r := &vetRepo{
		byID: make(map[string]vets.Vet, len(seed)),
	}
	for _, v := range seed {
		if _, dup := r.byID[v.ID]; dup {
			continue
		}
		r.order = append(r.order, v.ID)
		r.byID[v.ID] = v
	}
	return r
}

func (r *vetRepo) List(ctx context.Context) ([]vets.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.Vet, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneVet(r.byID[id]))
	}
	return out, nil
}

func (r *vetRepo) GetByID(ctx context.Context, id string) (vets.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vets.Vet{}, fmt.Errorf("vet %q: %w", id, vets.ErrNotFound)
	}
	return cloneVet(v), nil
}

func cloneVet(v vets.Vet) vets.Vet {
	v.Specialties.EN = append([]string(nil), v.Specialties.EN...)
	v.Specialties.TA = append([]string(nil), v.Specialties.TA...)
	return v
}

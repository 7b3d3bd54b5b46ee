package memory

import (
	"context"
	"fmt"
	"sync"

	"vet-care-assistant/internal/domain/prescriptions"
)

type prescriptionRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]prescriptions.Prescription
}

func NewPrescriptionRepo(seed []prescriptions.Prescription) prescriptions.Repository {
	r := &prescriptionRepo{
		byID: make(map[string]prescriptions.Prescription, len(seed)),
	}
	for _, p := range seed {
		if _, dup := r.byID[p.ID]; dup {
			continue
		}
		r.order = append(r.order, p.ID)
		r.byID[p.ID] = p
	}
	return r
}

func (r *prescriptionRepo) List(ctx context.Context) ([]prescriptions.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prescriptions.Prescription, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clonePrescription(r.byID[id]))
	}
	return out, nil
}

func (r *prescriptionRepo) GetByID(ctx context.Context, id string) (prescriptions.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return prescriptions.Prescription{}, fmt.Errorf("prescription %q: %w", id, prescriptions.ErrNotFound)
	}
	return clonePrescription(p), nil
}

func clonePrescription(p prescriptions.Prescription) prescriptions.Prescription {
	p.Medicines = append([]prescriptions.Medicine(nil), p.Medicines...)
	return p
}

package prescriptions

import "context"

type Repository interface {
	List(ctx context.Context) ([]Prescription, error)
	GetByID(ctx context.Context, id string) (Prescription, error)
}

package prescriptions

import (
	"context"
	"errors"
	"testing"

	"vet-care-assistant/internal/i18n"
)

type testRepo struct {
	list []Prescription
}

func (r *testRepo) List(ctx context.Context) ([]Prescription, error) {
	return append([]Prescription(nil), r.list...), nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Prescription, error) {
	for _, p := range r.list {
		if p.ID == id {
			return p, nil
		}
	}
	return Prescription{}, ErrNotFound
}

func newTestService() *Service {
	c := Catalog()
	// orden invertido para verificar el sort por fecha
	return NewService(&testRepo{list: []Prescription{c[2], c[0], c[1]}})
}

func TestList_NoFilterMostRecentFirst(t *testing.T) {
	got, err := newTestService().List(context.Background(), Filter{}, i18n.EN)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "2" || got[2].ID != "3" {
		t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestList_QueryMatchesConditionOrAnimal(t *testing.T) {
	svc := newTestService()

	got, _ := svc.List(context.Background(), Filter{Query: "MASTITIS"}, i18n.EN)
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected mastitis only, got %d", len(got))
	}

	// "cat" también aparece en "Cattle"
	got, _ = svc.List(context.Background(), Filter{Query: "cat"}, i18n.EN)
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "3" {
		t.Fatalf("expected cat and cattle prescriptions, got %d", len(got))
	}

	got, _ = svc.List(context.Background(), Filter{Query: "பால்மடி"}, i18n.TA)
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected tamil search to match mastitis, got %d", len(got))
	}
}

func TestList_AnimalFilter(t *testing.T) {
	svc := newTestService()

	got, _ := svc.List(context.Background(), Filter{Animal: "all"}, i18n.EN)
	if len(got) != 3 {
		t.Fatalf("all must not filter, got %d", len(got))
	}

	got, _ = svc.List(context.Background(), Filter{Animal: "dog"}, i18n.EN)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected dog only, got %d", len(got))
	}

	got, _ = svc.List(context.Background(), Filter{Animal: "dog", Query: "mastitis"}, i18n.EN)
	if len(got) != 0 {
		t.Fatalf("filters must combine, got %d", len(got))
	}
}

func TestList_AnimalFilterMatchesWholeCategoryOnly(t *testing.T) {
	svc := newTestService()

	got, _ := svc.List(context.Background(), Filter{Animal: "Cat"}, i18n.EN)
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected cat only (not cattle), got %d", len(got))
	}

	got, _ = svc.List(context.Background(), Filter{Animal: "மாடு"}, i18n.EN)
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected tamil display name to resolve to cattle, got %d", len(got))
	}

	got, _ = svc.List(context.Background(), Filter{Animal: "ca"}, i18n.EN)
	if len(got) != 0 {
		t.Fatalf("partial names must not match, got %d", len(got))
	}
}

func TestGetByID(t *testing.T) {
	svc := newTestService()

	if _, err := svc.GetByID(context.Background(), ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	p, err := svc.GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if len(p.Medicines) != 2 || p.Medicines[0].Name != "Betamethasone Cream" {
		t.Fatalf("unexpected medicines: %#v", p.Medicines)
	}
}

func TestToPrescriptionResponse_Localized(t *testing.T) {
	p := Catalog()[0]
	got := toPrescriptionResponse(p, i18n.TA)

	if got.Condition != "தோல் அழற்சி" || got.FollowUp != "7 நாட்களில் மறுபரிசீலனை" {
		t.Fatalf("expected tamil texts, got %#v", got)
	}
	if got.DateIssued != "2024-01-15" || got.Animal != "dog" || got.SeverityName != "மிதமான" {
		t.Fatalf("unexpected fields: %#v", got)
	}
}

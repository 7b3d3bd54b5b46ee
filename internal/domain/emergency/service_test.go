package emergency

import (
	"reflect"
	"testing"

	"vet-care-assistant/internal/domain/animals"
	"vet-care-assistant/internal/i18n"
)

func TestSteps_DogSevereBleedingEnglish(t *testing.T) {
	got := Steps(animals.CategoryDog, animals.EmergencySevereBleeding, i18n.EN)
	want := []string{
		"Keep calm and approach the dog carefully",
		"Apply direct pressure to the wound with clean cloth",
		"If bleeding doesn't stop, apply pressure to pressure points",
		"Elevate the wounded area if possible",
		"Apply bandage and seek immediate veterinary care",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}
}

func TestSteps_TamilListHasSameLength(t *testing.T) {
	for _, k := range Keys() {
		en := Steps(k.Category, k.Type, i18n.EN)
		ta := Steps(k.Category, k.Type, i18n.TA)
		if len(en) != len(ta) || len(en) == 0 {
			t.Fatalf("%v: en=%d ta=%d", k, len(en), len(ta))
		}
		if en[0] == ta[0] {
			t.Fatalf("%v: tamil list looks untranslated", k)
		}
	}
}

func TestSteps_MissingCombinationIsEmptyNotNil(t *testing.T) {
	got := Steps(animals.CategoryPig, animals.EmergencySeizures, i18n.EN)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}

	// la combinación existe para dog, no para cat
	if n := len(Steps(animals.CategoryCat, animals.EmergencySevereBleeding, i18n.EN)); n != 0 {
		t.Fatalf("expected no steps, got %d", n)
	}
}

func TestSteps_ReturnsCopy(t *testing.T) {
	a := Steps(animals.CategoryPoultry, animals.EmergencyPoisoning, i18n.EN)
	a[0] = "changed"

	b := Steps(animals.CategoryPoultry, animals.EmergencyPoisoning, i18n.EN)
	if b[0] != "Remove bird from source of poison immediately" {
		t.Fatalf("table was mutated through returned slice")
	}
}

func TestKeys_OnlyThreeProtocols(t *testing.T) {
	if n := len(Keys()); n != 3 {
		t.Fatalf("expected 3 protocols, got %d", n)
	}
}

func TestService_Lookup(t *testing.T) {
	svc := NewService("")

	p := svc.Lookup(animals.CategoryCat, animals.EmergencyDifficultyBreathing, i18n.TA)
	if len(p.Steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(p.Steps))
	}
	if p.Warning == "" || p.CriticalNotice == "" {
		t.Fatalf("expected warning and critical notice")
	}
	if p.Hotline.Number != DefaultHotline || p.Hotline.Label != "அவசர தொலைபேசி" {
		t.Fatalf("unexpected hotline: %#v", p.Hotline)
	}

	empty := svc.Lookup(animals.CategoryCattle, animals.EmergencyChoking, i18n.EN)
	if len(empty.Steps) != 0 || empty.Warning != "" {
		t.Fatalf("expected empty protocol, got %#v", empty)
	}
}

func TestService_CustomHotline(t *testing.T) {
	svc := NewService("  +94 77 000 0000 ")
	if got := svc.Hotline(i18n.EN); got.Number != "+94 77 000 0000" || got.Label != "Emergency Hotline" {
		t.Fatalf("unexpected hotline: %#v", got)
	}
}

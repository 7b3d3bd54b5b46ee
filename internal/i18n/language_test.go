package i18n

import (
	"testing"

	"vet-care-assistant/internal/domain/animals"
)

func TestResolve_QueryWinsOverHeader(t *testing.T) {
	if got := Resolve("ta", "en-US,en;q=0.9", EN); got != TA {
		t.Fatalf("expected ta, got %s", got)
	}
}

func TestResolve_AcceptLanguage(t *testing.T) {
	if got := Resolve("", "ta-IN,ta;q=0.9,en;q=0.5", EN); got != TA {
		t.Fatalf("expected ta from header, got %s", got)
	}
	if got := Resolve("", "en-GB", TA); got != EN {
		t.Fatalf("expected en from header, got %s", got)
	}
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	if got := Resolve("xx", "", TA); got != TA {
		t.Fatalf("expected default ta, got %s", got)
	}
	if got := Resolve("", "", Language("zz")); got != EN {
		t.Fatalf("expected en when default invalid, got %s", got)
	}
}

func TestText_In_FallsBackToEnglish(t *testing.T) {
	tx := Text{EN: "hello"}
	if got := tx.In(TA); got != "hello" {
		t.Fatalf("expected english fallback, got %q", got)
	}
}

func TestTexts_In_ReturnsCopy(t *testing.T) {
	src := Texts{EN: []string{"a", "b"}}
	out := src.In(EN)
	out[0] = "changed"
	if src.EN[0] != "a" {
		t.Fatalf("In must not expose the backing slice")
	}
}

func TestLabels_StableKeysNotDisplayText(t *testing.T) {
	// dos claves distintas pueden compartir traducción sin colisionar
	a := EmergencyName(animals.EmergencyDifficultyBreathing, TA)
	b := EmergencyName(animals.EmergencyChoking, TA)
	if a != b {
		t.Fatalf("expected shared tamil label, got %q vs %q", a, b)
	}
	if CategoryName(animals.Category("unicorn"), EN) != "Animal" {
		t.Fatalf("unknown category should render the generic label")
	}
}

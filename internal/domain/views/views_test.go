package views

import (
	"testing"

	"vet-care-assistant/internal/i18n"
)

func TestParse_UnknownIsHome(t *testing.T) {
	if got := Parse(" Chat "); got != Chat {
		t.Fatalf("expected chat, got %s", got)
	}
	if got := Parse("settings"); got != Home {
		t.Fatalf("expected home, got %s", got)
	}
}

func TestRender_EveryViewReachableFromAnyOther(t *testing.T) {
	for _, v := range All {
		s := Render(v, i18n.EN)
		if s.View != v || s.Title == "" {
			t.Fatalf("%s: bad screen %#v", v, s)
		}
		if len(s.Nav) != len(All) {
			t.Fatalf("%s: expected %d nav entries, got %d", v, len(All), len(s.Nav))
		}
		active := 0
		for _, n := range s.Nav {
			if n.Active {
				active++
				if n.View != v {
					t.Fatalf("%s: wrong active entry %s", v, n.View)
				}
			}
		}
		if active != 1 {
			t.Fatalf("%s: expected exactly one active entry, got %d", v, active)
		}
	}
}

func TestRender_UnknownViewRendersHome(t *testing.T) {
	s := Render(View("nope"), i18n.EN)
	if s.View != Home || s.Title != "Veterinary Care Assistant" {
		t.Fatalf("unexpected screen: %#v", s)
	}
}

func TestRender_Tamil(t *testing.T) {
	s := Render(Emergency, i18n.TA)
	if s.Title != "அவசர முதலுதவி" {
		t.Fatalf("unexpected title %q", s.Title)
	}
}

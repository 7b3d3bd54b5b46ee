package chat

import (
	"strings"
	"testing"

	"vet-care-assistant/internal/i18n"
)

func TestMatch_KeywordsInBothLanguages(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		lang   i18n.Language
		intent Intent
	}{
		{"rabies en", "What are the symptoms of RABIES in dogs?", i18n.EN, IntentRabies},
		{"rabies ta keyword, en reply", "வெறிநாய் கடி", i18n.EN, IntentRabies},
		{"fever", "How to treat a cat with fever?", i18n.EN, IntentFever},
		{"wound", "my dog has a wound on the leg", i18n.EN, IntentInjury},
		{"injury ta", "காயம்", i18n.TA, IntentInjury},
		{"chicken", "my chicken is sneezing", i18n.EN, IntentPoultry},
		{"cow", "Cow not eating", i18n.EN, IntentCattle},
		{"swine", "swine cough", i18n.EN, IntentPig},
		{"fallback", "hello there", i18n.EN, IntentGeneral},
		{"empty", "", i18n.TA, IntentGeneral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Match(tc.text, tc.lang)
			if got.Intent != tc.intent {
				t.Fatalf("expected intent %s, got %s", tc.intent, got.Intent)
			}
			if strings.TrimSpace(got.Text) == "" {
				t.Fatalf("reply must never be empty")
			}
		})
	}
}

func TestMatch_FirstRuleWins(t *testing.T) {
	// "rabies" va antes que "fever" en la tabla
	got := Match("fever after rabies vaccine", i18n.EN)
	if got.Intent != IntentRabies {
		t.Fatalf("expected rabies to win, got %s", got.Intent)
	}
}

func TestMatch_ReplyFollowsLanguage(t *testing.T) {
	en := Match("rabies", i18n.EN)
	ta := Match("rabies", i18n.TA)
	if !strings.HasPrefix(en.Text, "Rabies symptoms in dogs") {
		t.Fatalf("unexpected english reply: %q", en.Text)
	}
	if en.Text == ta.Text {
		t.Fatalf("expected tamil reply to differ from english")
	}
}

func TestMatch_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	got := Match("cattle", i18n.Language("fr"))
	if !strings.HasPrefix(got.Text, "Cattle health monitoring") {
		t.Fatalf("expected english reply, got %q", got.Text)
	}
}

func TestMatch_IsReferentiallyConsistent(t *testing.T) {
	a := Match("pig health", i18n.TA)
	b := Match("pig health", i18n.TA)
	if a != b {
		t.Fatalf("same input must yield same reply")
	}
}

func TestExamples_PerLanguage(t *testing.T) {
	if len(Examples(i18n.EN)) != 4 || len(Examples(i18n.TA)) != 4 {
		t.Fatalf("expected 4 example questions per language")
	}
}

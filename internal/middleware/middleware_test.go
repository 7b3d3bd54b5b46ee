package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vet-care-assistant/internal/i18n"
	"vet-care-assistant/internal/platform/logger"
)

func TestLangContext_ResolvesAndExposesLanguage(t *testing.T) {
	var got i18n.Language
	h := LangContext(i18n.EN)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetLanguage(r.Context())
	}))

	cases := []struct {
		name   string
		url    string
		header string
		want   i18n.Language
	}{
		{"query wins", "/?lang=ta", "en-US", i18n.TA},
		{"accept-language", "/", "ta-LK", i18n.TA},
		{"unsupported falls back", "/?lang=fr", "de-DE", i18n.EN},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.url, nil)
		if tc.header != "" {
			req.Header.Set("Accept-Language", tc.header)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
		if rr.Header().Get("Content-Language") != string(tc.want) {
			t.Fatalf("%s: missing Content-Language header", tc.name)
		}
	}
}

func TestGetLanguage_DefaultsToEnglish(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if GetLanguage(req.Context()) != i18n.EN {
		t.Fatalf("expected en without middleware")
	}
	if GetLanguage(WithLanguage(req.Context(), i18n.TA)) != i18n.TA {
		t.Fatalf("expected ta from WithLanguage")
	}
}

func TestAccessLog_WritesStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf})

	h := AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	out := buf.String()
	if !strings.Contains(out, `"status":404`) || !strings.Contains(out, `"path":"/missing"`) {
		t.Fatalf("unexpected access log: %s", out)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func localeFor(t *testing.T, headers map[string]string) string {
	t.Helper()
	var got string
	handler := Locale("en")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LocaleFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestLocaleHeaderPrecedence(t *testing.T) {
	got := localeFor(t, map[string]string{"X-Locale": "id-ID", "Accept-Language": "en-US"})
	if got != "id" {
		t.Fatalf("X-Locale must win, got %q", got)
	}
}

func TestLocaleAcceptLanguage(t *testing.T) {
	cases := map[string]string{
		"id-ID,id;q=0.9,en;q=0.8": "id",
		"en-US,en;q=0.5":          "en",
		"fr-FR,fr;q=0.9":          "en",
	}
	for header, want := range cases {
		if got := localeFor(t, map[string]string{"Accept-Language": header}); got != want {
			t.Fatalf("Accept-Language %q resolved to %q, want %q", header, got, want)
		}
	}
}

func TestLocaleFallback(t *testing.T) {
	if got := localeFor(t, nil); got != "en" {
		t.Fatalf("expected fallback en, got %q", got)
	}
}

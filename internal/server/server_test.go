package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/go-kokoro-g2p/internal/pipeline"
	"github.com/example/go-kokoro-g2p/internal/server"
	"github.com/example/go-kokoro-g2p/internal/text"
)

// stubPhonemizer implements server.Phonemizer for tests.
type stubPhonemizer struct {
	res      pipeline.Result
	err      error
	lastLang string
}

func (s *stubPhonemizer) Process(_, language string) (pipeline.Result, error) {
	s.lastLang = language
	return s.res, s.err
}

func newTestHandler(g2p server.Phonemizer) http.Handler {
	return server.NewHandler(g2p, "en-us")
}

// ---------------------------------------------------------------------------
// GET /health
// ---------------------------------------------------------------------------

func TestHealth_Returns200WithStatusOK(t *testing.T) {
	h := newTestHandler(&stubPhonemizer{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	var body map[string]string
	err := json.NewDecoder(rec.Body).Decode(&body)
	if err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if body["status"] != "ok" {
		t.Errorf("want status=ok, got %q", body["status"])
	}

	if _, ok := body["version"]; !ok {
		t.Error("want version field in response")
	}
}

// ---------------------------------------------------------------------------
// GET /languages
// ---------------------------------------------------------------------------

func TestLanguages_ReturnsJSONArray(t *testing.T) {
	h := newTestHandler(&stubPhonemizer{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/languages", nil)
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	var got []string
	err := json.NewDecoder(rec.Body).Decode(&got)
	if err != nil {
		t.Fatalf("decode body: %v", err)
	}

	want := map[string]bool{"en-us": false, "en-gb": false, "zh": false, "es": false, "de": false}
	for _, lang := range got {
		want[lang] = true
	}
	for lang, seen := range want {
		if !seen {
			t.Errorf("language %q missing from /languages response %v", lang, got)
		}
	}
}

// ---------------------------------------------------------------------------
// POST /v1/phonemize
// ---------------------------------------------------------------------------

func TestPhonemize_ReturnsPhonemesAndTokens(t *testing.T) {
	stub := &stubPhonemizer{res: pipeline.Result{
		Phonemes: "həlˈO",
		Tokens:   []int64{0, 50, 83, 54, 156, 31, 0},
	}}
	h := newTestHandler(stub)

	body := bytes.NewBufferString(`{"text":"hello","language":"en-us"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/phonemize", body)
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Language string  `json:"language"`
		Phonemes string  `json:"phonemes"`
		Tokens   []int64 `json:"tokens"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if resp.Language != "en-us" {
		t.Errorf("language = %q; want en-us", resp.Language)
	}

	if resp.Phonemes != "həlˈO" {
		t.Errorf("phonemes = %q", resp.Phonemes)
	}

	if len(resp.Tokens) != 7 || resp.Tokens[0] != 0 || resp.Tokens[6] != 0 {
		t.Errorf("tokens = %v", resp.Tokens)
	}
}

func TestPhonemize_ReturnsMissingBodyAs400(t *testing.T) {
	h := newTestHandler(&stubPhonemizer{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/phonemize", nil)
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}

	var body map[string]string
	err := json.NewDecoder(rec.Body).Decode(&body)
	if err != nil {
		t.Fatalf("decode error body: %v", err)
	}

	if body["error"] == "" {
		t.Error("want non-empty error field")
	}
}

func TestPhonemize_ReturnsEmptyTextAs400(t *testing.T) {
	h := newTestHandler(&stubPhonemizer{})

	body := bytes.NewBufferString(`{"text":"","language":"en-us"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/phonemize", body)
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestPhonemize_UnknownLanguageAs400(t *testing.T) {
	stub := &stubPhonemizer{}
	h := newTestHandler(stub)

	body := bytes.NewBufferString(`{"text":"hello","language":"xx"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/phonemize", body)
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}

	if stub.lastLang != "" {
		t.Errorf("phonemizer was called for an unknown language (%q)", stub.lastLang)
	}
}

func TestPhonemize_DefaultLanguageApplied(t *testing.T) {
	stub := &stubPhonemizer{}
	h := server.NewHandler(stub, "en-gb")

	body := bytes.NewBufferString(`{"text":"hello"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/phonemize", body)
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	if stub.lastLang != "en-gb" {
		t.Errorf("default language = %q; want en-gb", stub.lastLang)
	}
}

func TestPhonemize_AliasCanonicalized(t *testing.T) {
	stub := &stubPhonemizer{}
	h := newTestHandler(stub)

	body := bytes.NewBufferString(`{"text":"你好","language":"Mandarin"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/phonemize", body)
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	if stub.lastLang != "zh" {
		t.Errorf("canonical language = %q; want zh", stub.lastLang)
	}
}

func TestPhonemize_InvalidUTF8Returns400(t *testing.T) {
	stub := &stubPhonemizer{err: text.ErrInvalidUTF8}
	h := newTestHandler(stub)

	body := bytes.NewBufferString(`{"text":"hello","language":"en"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/phonemize", body)
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestPhonemize_ProcessErrorReturns500(t *testing.T) {
	stub := &stubPhonemizer{err: errProcessFailed}
	h := newTestHandler(stub)

	body := bytes.NewBufferString(`{"text":"hello","language":"en"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/phonemize", body)
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", rec.Code)
	}

	var errBody map[string]string
	err := json.NewDecoder(rec.Body).Decode(&errBody)
	if err != nil {
		t.Fatalf("decode error body: %v", err)
	}

	if errBody["error"] == "" {
		t.Error("want non-empty error field")
	}
}

func TestPhonemize_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(&stubPhonemizer{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/phonemize", nil)
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d", rec.Code)
	}
}

var errProcessFailed = &processError{"phonemization failed"}

type processError struct{ msg string }

func (e *processError) Error() string { return e.msg }

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"translate-bridge/internal/preferences"
	"translate-bridge/pkg/types"
)

func newTestCLI(t *testing.T, baseURL string) (*cli, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &cli{
		cfg:    &types.Config{Client: types.ClientConfig{BaseURL: baseURL}},
		logger: zaptest.NewLogger(t),
		store:  preferences.NewMemoryStore(),
		stdin:  strings.NewReader(""),
		stdout: stdout,
		stderr: stderr,
	}, stdout, stderr
}

// backend replies to /translate with the given status and body, and to /health with 200.
func backend(t *testing.T, status int, body string, seen *types.TranslateRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		if seen != nil {
			_ = json.NewDecoder(r.Body).Decode(seen)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunTranslate(t *testing.T) {
	var seen types.TranslateRequest
	srv := backend(t, http.StatusOK, `{"input":"Hello","translated":"Merhaba","error":null}`, &seen)
	app, stdout, stderr := newTestCLI(t, srv.URL)

	code := app.run(context.Background(), []string{"-from", "en", "-to", "tr", "  Hello  "})
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr %s", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != "Merhaba" {
		t.Errorf("stdout = %q, want Merhaba", got)
	}
	if seen.Text != "Hello" || seen.SourceLang != "en" || seen.TargetLang != "tr" {
		t.Errorf("request = %+v", seen)
	}
}

func TestRunUsesPreferences(t *testing.T) {
	var seen types.TranslateRequest
	srv := backend(t, http.StatusOK, `{"input":"Hallo","translated":"Bonjour","error":null}`, &seen)
	app, _, stderr := newTestCLI(t, srv.URL)

	if code := app.run(context.Background(), []string{"-prefs", "de,fr"}); code != exitOK {
		t.Fatalf("saving prefs: exit code = %d, stderr %s", code, stderr.String())
	}
	if code := app.run(context.Background(), []string{"Hallo"}); code != exitOK {
		t.Fatalf("exit code = %d, stderr %s", code, stderr.String())
	}
	if seen.SourceLang != "de" || seen.TargetLang != "fr" {
		t.Errorf("request languages = %s→%s, want de→fr", seen.SourceLang, seen.TargetLang)
	}
}

func TestRunReadsStdin(t *testing.T) {
	var seen types.TranslateRequest
	srv := backend(t, http.StatusOK, `{"input":"Hola","translated":"Hello","error":null}`, &seen)
	app, _, _ := newTestCLI(t, srv.URL)
	app.stdin = strings.NewReader("Hola\n")

	if code := app.run(context.Background(), []string{"-from", "es", "-to", "en"}); code != exitOK {
		t.Fatalf("exit code = %d", code)
	}
	if seen.Text != "Hola" {
		t.Errorf("text = %q, want Hola", seen.Text)
	}
}

func TestRunValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"empty text", []string{"-from", "en", "-to", "tr", "   "}, "text must not be empty"},
		{"too long", []string{"-from", "en", "-to", "tr", strings.Repeat("a", MaxTextLength+1)}, "the limit is 2300"},
		{"no languages", []string{"Hello"}, "select source and target languages"},
		{"bad prefs", []string{"-prefs", "en,xx"}, "unsupported language: xx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, stderr := newTestCLI(t, "http://127.0.0.1:1")
			if code := app.run(context.Background(), tt.args); code != exitUsage {
				t.Errorf("exit code = %d, want %d", code, exitUsage)
			}
			if !strings.Contains(stderr.String(), tt.msg) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.msg)
			}
		})
	}
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		msg    string
	}{
		{"soft failure", http.StatusOK, `{"input":"Hello","translated":"","error":"model unavailable"}`, "error: model unavailable"},
		{"backend error", http.StatusBadRequest, `{"error":"Invalid language code"}`, "translation error: Invalid language code"},
		{"decode error", http.StatusOK, `oops`, "unexpected response from translation service: oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := backend(t, tt.status, tt.body, nil)
			app, stdout, stderr := newTestCLI(t, srv.URL)

			if code := app.run(context.Background(), []string{"-from", "en", "-to", "tr", "Hello"}); code != exitFailure {
				t.Errorf("exit code = %d, want %d", code, exitFailure)
			}
			if !strings.Contains(stderr.String(), tt.msg) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.msg)
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q, want nothing", stdout.String())
			}
		})
	}
}

func TestRunHealth(t *testing.T) {
	srv := backend(t, http.StatusOK, ``, nil)
	app, stdout, _ := newTestCLI(t, srv.URL)

	if code := app.run(context.Background(), []string{"-health"}); code != exitOK {
		t.Fatalf("exit code = %d", code)
	}
	if strings.TrimSpace(stdout.String()) != "healthy" {
		t.Errorf("stdout = %q", stdout.String())
	}
}

package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmpolyakov/todolist/internal/agent/cli"
	"github.com/dmpolyakov/todolist/internal/agent/config"
)

func TestNewRegisterCmd_Success_SavesSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/signup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}

		http.SetCookie(w, &http.Cookie{Name: "todolist_session", Value: "session-1"})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	credsPath := filepath.Join(t.TempDir(), "creds.json")

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: credsPath,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewRegisterCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader("StrongPass123\n"))
	cmd.SetArgs([]string{"--email", "test@example.com", "--password-stdin"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.Contains(out.String(), "registration successful") {
		t.Fatalf("expected success message, got %q", out.String())
	}

	saved, err := config.Load(credsPath)
	if err != nil {
		t.Fatalf("load creds: %v", err)
	}
	if saved.SessionToken != "session-1" {
		t.Fatalf("expected saved session token, got %q", saved.SessionToken)
	}
}

func TestNewRegisterCmd_EmailTaken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/signup", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Email already registered",
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewRegisterCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("StrongPass123\n"))
	cmd.SetArgs([]string{"--email", "taken@example.com", "--password-stdin"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "Email already registered") {
		t.Fatalf("expected server message, got %v", err)
	}
}

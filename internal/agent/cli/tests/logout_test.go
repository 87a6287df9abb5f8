package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmpolyakov/todolist/internal/agent/cli"
	"github.com/dmpolyakov/todolist/internal/agent/config"
)

func TestNewLogoutCmd_RevokesAndClearsToken(t *testing.T) {
	var serverCalled bool

	mux := http.NewServeMux()
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		serverCalled = true

		c, err := r.Cookie("todolist_session")
		if err != nil || c.Value != "session-1" {
			t.Fatalf("expected session cookie, got %v", err)
		}

		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	credsPath := filepath.Join(t.TempDir(), "creds.json")
	if err := config.Save(credsPath, &config.Credentials{SessionToken: "session-1"}); err != nil {
		t.Fatalf("save creds: %v", err)
	}

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: credsPath,
		Creds:     &config.Credentials{SessionToken: "session-1"},
	}

	cmd := cli.NewLogoutCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !serverCalled {
		t.Fatalf("expected server /logout to be called")
	}
	if !strings.Contains(out.String(), "logged out") {
		t.Fatalf("expected logged out message, got %q", out.String())
	}

	saved, err := config.Load(credsPath)
	if err != nil {
		t.Fatalf("load creds: %v", err)
	}
	if saved.SessionToken != "" {
		t.Fatalf("expected cleared token, got %q", saved.SessionToken)
	}
}

func TestNewLogoutCmd_NoSession(t *testing.T) {
	app := &cli.App{
		ServerURL: "https://127.0.0.1:1",
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewLogoutCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error without session")
	}
}

// сервер недоступен — локальный токен всё равно стираем
func TestNewLogoutCmd_ServerDown_StillClearsToken(t *testing.T) {
	credsPath := filepath.Join(t.TempDir(), "creds.json")
	if err := config.Save(credsPath, &config.Credentials{SessionToken: "session-1"}); err != nil {
		t.Fatalf("save creds: %v", err)
	}

	app := &cli.App{
		ServerURL: "https://127.0.0.1:1",
		CredsPath: credsPath,
		Creds:     &config.Credentials{SessionToken: "session-1"},
	}

	cmd := cli.NewLogoutCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	saved, err := config.Load(credsPath)
	if err != nil {
		t.Fatalf("load creds: %v", err)
	}
	if saved.SessionToken != "" {
		t.Fatalf("expected cleared token, got %q", saved.SessionToken)
	}
}

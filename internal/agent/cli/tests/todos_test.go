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

func newTodoApp(t *testing.T, srvURL string) *cli.App {
	t.Helper()

	return &cli.App{
		ServerURL: srvURL,
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
		Creds:     &config.Credentials{SessionToken: "session-1"},
	}
}

func TestNewListCmd_PrintsTodos(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/todos", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("todolist_session")
		if err != nil || c.Value != "session-1" {
			t.Fatalf("expected session cookie, got %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 2, "title": "newer", "completed": false, "created_at": "2024-03-14 02:30 PM"},
			{"id": 1, "title": "older", "completed": true, "created_at": "2024-03-14 01:30 PM"},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewListCmd(newTodoApp(t, srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "newer") || !strings.Contains(got, "older") {
		t.Fatalf("expected both todos in output, got %q", got)
	}
	if !strings.Contains(got, "[x]") {
		t.Fatalf("expected completed marker in output, got %q", got)
	}
}

func TestNewListCmd_Empty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/todos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewListCmd(newTodoApp(t, srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "no todos yet") {
		t.Fatalf("expected empty list message, got %q", out.String())
	}
}

func TestNewListCmd_NoSession(t *testing.T) {
	app := newTodoApp(t, "https://127.0.0.1:1")
	app.Creds.SessionToken = ""

	cmd := cli.NewListCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error without session")
	}
	if !strings.Contains(err.Error(), "todoctl login") {
		t.Fatalf("expected login hint, got %v", err)
	}
}

func TestNewAddCmd_JoinsArgsIntoTitle(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/todos", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title string `json:"title"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Title != "call mom tomorrow" {
			t.Fatalf("expected joined title, got %q", req.Title)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "title": req.Title})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewAddCmd(newTodoApp(t, srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"call", "mom", "tomorrow"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "added todo 1") {
		t.Fatalf("expected added message, got %q", out.String())
	}
}

func TestNewDoneCmd_TogglesTodo(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/todos/3", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("expected PUT, got %s", r.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": 3, "title": "buy milk", "completed": true})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewDoneCmd(newTodoApp(t, srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"3"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "todo 3 is now done") {
		t.Fatalf("expected done message, got %q", out.String())
	}
}

func TestNewDoneCmd_BadID(t *testing.T) {
	cmd := cli.NewDoneCmd(newTodoApp(t, "https://127.0.0.1:1"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"abc"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for non-numeric id")
	}
}

func TestNewRemoveCmd_DeletesTodo(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/todos/3", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewRemoveCmd(newTodoApp(t, srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"3"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "deleted todo 3") {
		t.Fatalf("expected deleted message, got %q", out.String())
	}
}

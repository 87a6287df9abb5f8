package tests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dmpolyakov/todolist/internal/agent/cli"
)

// root без аргументов показывает help со списком команд
func TestNewRootCmd_ShowsHelp(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := cli.NewRootCmd("dev", "unknown")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	got := out.String()
	for _, sub := range []string{"register", "login", "logout", "list", "add", "done", "rm", "version"} {
		if !strings.Contains(got, sub) {
			t.Fatalf("expected %q in help output, got %q", sub, got)
		}
	}
}

// version работает через root и PersistentPreRunE (креды грузятся без ошибок)
func TestNewRootCmd_VersionSubcommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := cli.NewRootCmd("1.2.3", "2024-03-14")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "version=1.2.3") {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

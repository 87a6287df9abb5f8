package tests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dmpolyakov/todolist/internal/agent/cli"
)

func TestNewVersionCmd_PrintsBuildInfo(t *testing.T) {
	cmd := cli.NewVersionCmd("1.2.3", "2024-03-14")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "version=1.2.3") {
		t.Fatalf("expected version in output, got %q", got)
	}
	if !strings.Contains(got, "build_date=2024-03-14") {
		t.Fatalf("expected build date in output, got %q", got)
	}
}

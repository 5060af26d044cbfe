package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/ppiankov/archlevel/internal/cpuinfo"
)

const level1Blob = "model name : Test CPU Model\n" +
	"flags : lm cmov cx8 fpu fxsr mmx syscall sse2\n"

// execRoot resets flag state and runs the root command with piped input.
func execRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCPUInfo = cpuinfo.DefaultPath
	rootStdin = false
	rootAssert = 0
	rootVerbose = false
	rootLevels = ""
	rootFormat = "text"

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootDetectFromStdin(t *testing.T) {
	out, err := execRoot(t, level1Blob, "--stdin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n" {
		t.Errorf("expected level 1 printed, got %q", out)
	}
}

func TestRootDetectVerbose(t *testing.T) {
	out, err := execRoot(t, level1Blob, "--stdin", "--verbose")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "missing flag cx16") {
		t.Errorf("expected blocking-flag explanation, got %q", out)
	}
	if !strings.Contains(out, "Test CPU Model") {
		t.Errorf("expected CPU name in diagnostic, got %q", out)
	}
}

func TestRootDetectJSON(t *testing.T) {
	out, err := execRoot(t, level1Blob, "--stdin", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var report detectReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if report.Level != 1 {
		t.Errorf("expected level 1, got %d", report.Level)
	}
	if report.Blocking != "cx16" {
		t.Errorf("expected blocking flag cx16, got %q", report.Blocking)
	}
	if report.CPU != "Test CPU Model" {
		t.Errorf("expected cpu name in report, got %q", report.CPU)
	}
}

func TestRootAssertSatisfied(t *testing.T) {
	out, err := execRoot(t, level1Blob, "--stdin", "--assert", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("assert mode must be quiet on success, got %q", out)
	}
}

func TestRootParseErrorSurfaces(t *testing.T) {
	_, err := execRoot(t, "processor : 0\n", "--stdin")
	if err == nil {
		t.Fatalf("expected error for blob without flags field")
	}
}

func TestLevelsCommand(t *testing.T) {
	levelsFile = ""
	levelsFormat = "text"
	out, err := execRoot(t, "", "levels")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "x86-64-v1: lm cmov cx8 fpu fxsr mmx syscall sse2") {
		t.Errorf("expected v1 requirement line, got %q", out)
	}
	if !strings.Contains(out, "x86-64-v4: avx512f avx512bw avx512cd avx512dq avx512vl") {
		t.Errorf("expected v4 requirement line, got %q", out)
	}
}

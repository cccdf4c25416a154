package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetup_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	Debug("pinned package", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "pinned package") || !strings.Contains(output, "key=value") {
		t.Errorf("Expected 'pinned package' in output, got: %s", output)
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, true, &buf)

	Debug("pinned package", "key", "value")

	output := buf.String()
	// JSON output should contain braces
	if !strings.Contains(output, "{") {
		t.Errorf("Expected JSON output, got: %s", output)
	}
	if !strings.Contains(output, "pinned package") {
		t.Errorf("Expected 'pinned package' in output, got: %s", output)
	}
}

func TestSetup_VerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	Debug("debug message")

	output := buf.String()
	if !strings.Contains(output, "debug message") {
		t.Errorf("Debug message should appear in verbose mode, got: %s", output)
	}
}

func TestSetup_NonVerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Debug("debug message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Errorf("Debug message should NOT appear in non-verbose mode, got: %s", output)
	}
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	Debug("debug test", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "debug test") {
		t.Errorf("Expected 'debug test' in output, got: %s", output)
	}
}

func TestSetup_NilWriter(t *testing.T) {
	// Should not panic with nil writer
	Setup(false, false, nil)

	// Logger should still work (writes to stderr)
	if Logger == nil {
		t.Error("Logger should not be nil after Setup with nil writer")
	}
}

func TestUserOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	SetOutput(&stdout, &stderr)
	defer SetOutput(nil, nil)

	UserInfo("resolving %s", "hello")
	UserSuccess("pinned %s", "hello")
	UserWarning("%s not pinned", "jq")

	if got, want := stdout.String(), "ℹ resolving hello\n✓ pinned hello\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := stderr.String(), "⚠ jq not pinned\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestExec_QuotesArgv(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	Exec("hydra-check", []string{"hydra-check", "python3Packages.requests", "--json", "two words"})

	output := buf.String()
	if !strings.Contains(output, "tool=hydra-check") {
		t.Errorf("Expected tool attribute in output, got: %s", output)
	}
	if !strings.Contains(output, `'two words'`) {
		t.Errorf("Expected quoted argument in output, got: %s", output)
	}
}

func TestExec_HiddenWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Exec("nix-prefetch-url", []string{"nix-prefetch-url", "--unpack", "https://example.com/x.tar.gz"})

	if buf.Len() != 0 {
		t.Errorf("Exec should log at debug level only, got: %s", buf.String())
	}
}

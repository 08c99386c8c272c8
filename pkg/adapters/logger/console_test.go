package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/mockshot/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewConsoleWriter(ports.LevelInfo, &out, &errOut)

	l.Debug("hidden %d", 1)
	l.Info("shown %d", 2)
	l.Warn("warned %d", 3)
	l.Error("failed %d", 4)

	if strings.Contains(out.String(), "hidden") {
		t.Error("expected debug message to be filtered at info level")
	}
	if !strings.Contains(out.String(), "shown 2") {
		t.Errorf("expected info on out, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "warned 3") || !strings.Contains(errOut.String(), "failed 4") {
		t.Errorf("expected warn and error on errOut, got %q", errOut.String())
	}
}

func TestConsoleLogger_Component(t *testing.T) {
	var out bytes.Buffer
	l := NewConsoleWriter(ports.LevelDebug, &out, &out).WithComponent("canvaspool")

	l.Debug("sweep test %d", 2)

	if got := out.String(); got != "[canvaspool] sweep test 2\n" {
		t.Errorf("unexpected line %q", got)
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out bytes.Buffer
	l := NewConsoleWriter(ports.LevelQuiet, &out, &out)

	l.Error("nothing")
	if out.Len() != 0 {
		t.Errorf("expected no output in quiet mode, got %q", out.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]ports.LogLevel{
		"debug":   ports.LevelDebug,
		"INFO":    ports.LevelInfo,
		"warning": ports.LevelWarn,
		"error":   ports.LevelError,
		"quiet":   ports.LevelQuiet,
		"bogus":   ports.LevelInfo,
	}
	for in, want := range tests {
		if got := ports.ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

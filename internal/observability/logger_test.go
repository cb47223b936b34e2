package observability

import (
	"bytes"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestNewLogger_DefaultLevel(t *testing.T) {
	t.Setenv("UMSEBENZI_DEBUG", "")
	var buf bytes.Buffer
	logger := NewLogger(&buf, false)

	if logger.GetLevel() != log.WarnLevel {
		t.Fatalf("level = %v, want warn", logger.GetLevel())
	}
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message leaked: %q", buf.String())
	}
}

func TestNewLogger_Verbose(t *testing.T) {
	t.Setenv("UMSEBENZI_DEBUG", "")
	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	logger.WithField("method", "GET").Debug("request")
	out := buf.String()
	if !strings.Contains(out, "request") || !strings.Contains(out, "method=GET") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestNewLogger_DebugEnv(t *testing.T) {
	t.Setenv("UMSEBENZI_DEBUG", "true")
	logger := NewLogger(&bytes.Buffer{}, false)
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}
}

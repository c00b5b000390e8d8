package warnlog

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInfofNoDoubleFormattingWithPercent(t *testing.T) {
	// Swap the base logger to capture output
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLogLevel("info")

	// Messages carrying literal percent signs arrive through variables in
	// practice, e.g. assembled status strings.
	msg := "filtered 42 of 100 rows (42.0% kept)"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(42.0% kept)") {
		t.Fatalf("log output missing percent segment: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() {
		baseLogger = saved
		SetLogLevel("info")
	}()

	SetLogLevel("error")
	Debugf("hidden %d", 1)
	Warnf("hidden too")
	Errorf("visible %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("suppressed levels leaked: %s", out)
	}
	if !strings.Contains(out, "[ERROR] visible 2") {
		t.Fatalf("expected error line, got: %s", out)
	}
}

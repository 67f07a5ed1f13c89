package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type stubDevice struct {
	err   error
	calls int
}

func (d *stubDevice) Initialize() error {
	d.calls++
	return d.err
}

func TestInitSoundLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	d := &stubDevice{err: errors.New("no such device")}
	if initSound(d, logger) {
		t.Error("Expected initSound to report failure")
	}
	if d.calls != 1 {
		t.Errorf("Expected 1 Initialize call, got %d", d.calls)
	}
	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, "no such device") {
		t.Errorf("Expected warn entry with the device error, got %q", out)
	}
}

func TestInitSoundSuccessIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	if !initSound(&stubDevice{}, zerolog.New(&buf)) {
		t.Error("Expected initSound to succeed")
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no log output, got %q", buf.String())
	}
}

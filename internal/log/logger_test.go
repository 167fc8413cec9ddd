package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Handler: slog.NewTextHandler(&buf, nil)})
	if l.Component() != ComponentApp {
		t.Errorf("root component = %q, want %q", l.Component(), ComponentApp)
	}

	scoped := l.WithComponent(ComponentExport)
	if scoped.Component() != ComponentExport {
		t.Errorf("scoped component = %q", scoped.Component())
	}

	scoped.Info("saved")
	out := buf.String()
	if !strings.Contains(out, FieldComponent+"="+ComponentExport) {
		t.Errorf("record missing component attribute: %s", out)
	}
}

func TestNewDefaultHandler(t *testing.T) {
	l := New(Config{})
	if l.Logger == nil {
		t.Fatal("nil underlying logger")
	}
}

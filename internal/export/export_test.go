package export

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"budgetly/internal/budget"
)

type failingSaver struct{ name string }

func (s failingSaver) Name() string { return s.name }
func (s failingSaver) Save(string, []byte) (string, error) {
	return "", errors.New("disk on fire")
}

type recordingSaver struct {
	dir   string
	saved []string
}

func (s *recordingSaver) Name() string { return "recording" }
func (s *recordingSaver) Save(filename string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	s.saved = append(s.saved, filename)
	return path, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSaveFallsBackToNextStrategy(t *testing.T) {
	rec := &recordingSaver{dir: t.TempDir()}
	e := NewExporterWithSavers(discardLogger(), failingSaver{name: "primary"}, rec)

	path, err := e.ExportWorkbook(context.Background(), nil)
	if err != nil {
		t.Fatalf("ExportWorkbook error: %v", err)
	}
	if len(rec.saved) != 1 || rec.saved[0] != WorkbookFilename {
		t.Errorf("fallback saver recorded %v, want [%s]", rec.saved, WorkbookFilename)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved artifact missing: %v", err)
	}
}

func TestSaveAllStrategiesFail(t *testing.T) {
	e := NewExporterWithSavers(discardLogger(), failingSaver{name: "a"}, failingSaver{name: "b"})

	_, err := e.ExportWorkbook(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error when every strategy fails")
	}
	if !strings.Contains(err.Error(), "all save strategies failed") {
		t.Errorf("error = %v", err)
	}
}

func TestDirSaverCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	s := DirSaver{Dir: dir}

	path, err := s.Save("out.bin", []byte("payload"))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("read back %q", data)
	}
}

func TestBuildSafelyRecoversPanics(t *testing.T) {
	_, err := buildSafely(func() ([]byte, error) {
		panic("layout engine blew up")
	})
	if err == nil {
		t.Fatal("expected error from panicking builder")
	}
	if !strings.Contains(err.Error(), "layout engine blew up") {
		t.Errorf("error = %v", err)
	}
}

func TestExportReportWritesFile(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir, discardLogger())

	path, err := e.ExportReport(context.Background(), nil, budget.Compute(nil))
	if err != nil {
		t.Fatalf("ExportReport error: %v", err)
	}
	if filepath.Base(path) != ReportFilename {
		t.Errorf("path = %s, want basename %s", path, ReportFilename)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("empty report artifact")
	}
}

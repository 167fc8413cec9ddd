// Package export turns a transaction snapshot into downloadable artifacts: a
// two-sheet spreadsheet and a paginated PDF report. Builders operate on the
// snapshot passed in, so concurrent store mutation cannot corrupt an
// in-progress document. Failures are contained: a panicking builder is
// recovered into an error, and nothing partial is kept.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"budgetly/internal/budget"
	"budgetly/internal/core"
	applog "budgetly/internal/log"
)

// Default artifact filenames.
const (
	WorkbookFilename = "budgetly-data.xlsx"
	ReportFilename   = "budgetly-report.pdf"
)

// Saver is one strategy for persisting a finished artifact. Savers are
// attempted in order; each failure is isolated and logged, and the first
// success wins.
type Saver interface {
	Name() string
	Save(filename string, data []byte) (path string, err error)
}

// DirSaver writes artifacts into a fixed directory, creating it if needed.
type DirSaver struct {
	Dir string
}

func (s DirSaver) Name() string { return "dir:" + s.Dir }

func (s DirSaver) Save(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	return path, nil
}

// TempSaver is the manual fallback path: it writes into the system temp
// directory when the primary destination is unavailable.
type TempSaver struct{}

func (TempSaver) Name() string { return "temp" }

func (TempSaver) Save(filename string, data []byte) (string, error) {
	path := filepath.Join(os.TempDir(), filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write temp artifact: %w", err)
	}
	return path, nil
}

// Exporter builds artifacts and runs the save strategy chain.
type Exporter struct {
	savers []Saver
	logger *slog.Logger
}

// NewExporter creates an exporter targeting dir, with the temp directory as
// the fallback save path.
func NewExporter(dir string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		savers: []Saver{DirSaver{Dir: dir}, TempSaver{}},
		logger: logger,
	}
}

// NewExporterWithSavers creates an exporter with an explicit strategy chain.
func NewExporterWithSavers(logger *slog.Logger, savers ...Saver) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{savers: savers, logger: logger}
}

// WorkbookBytes builds the spreadsheet artifact in memory.
func WorkbookBytes(transactions []core.Transaction) ([]byte, error) {
	return buildSafely(func() ([]byte, error) {
		f, err := BuildWorkbook(transactions)
		if err != nil {
			return nil, err
		}
		buf, err := f.WriteToBuffer()
		if err != nil {
			return nil, fmt.Errorf("serialize workbook: %w", err)
		}
		return buf.Bytes(), nil
	})
}

// ReportBytes builds the PDF artifact in memory.
func ReportBytes(transactions []core.Transaction, summary budget.Summary) ([]byte, error) {
	return buildSafely(func() ([]byte, error) {
		return BuildPDFReport(transactions, summary)
	})
}

// ExportWorkbook builds and saves the spreadsheet, returning the saved path.
func (e *Exporter) ExportWorkbook(ctx context.Context, transactions []core.Transaction) (string, error) {
	data, err := WorkbookBytes(transactions)
	if err != nil {
		return "", fmt.Errorf("build workbook: %w", err)
	}
	return e.save(ctx, WorkbookFilename, data)
}

// ExportReport builds and saves the PDF report, returning the saved path.
func (e *Exporter) ExportReport(ctx context.Context, transactions []core.Transaction, summary budget.Summary) (string, error) {
	data, err := ReportBytes(transactions, summary)
	if err != nil {
		return "", fmt.Errorf("build report: %w", err)
	}
	return e.save(ctx, ReportFilename, data)
}

// save attempts each saver in order. All failures are collected; when every
// strategy fails there is no further fallback and the combined error is the
// terminal failure mode.
func (e *Exporter) save(ctx context.Context, filename string, data []byte) (string, error) {
	var errs []error
	for _, s := range e.savers {
		path, err := s.Save(filename, data)
		if err != nil {
			e.logger.WarnContext(ctx, "Save strategy failed",
				"strategy", s.Name(),
				applog.FieldFilename, filename,
				applog.FieldError, err)
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		e.logger.InfoContext(ctx, "Artifact saved",
			"strategy", s.Name(),
			applog.FieldFilename, filename,
			"path", path,
			"bytes", len(data))
		return path, nil
	}
	return "", fmt.Errorf("all save strategies failed for %s: %v", filename, errs)
}

// buildSafely runs a builder, converting panics inside third-party layout
// code into errors so export failures never take down the host process.
func buildSafely(build func() ([]byte, error)) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = fmt.Errorf("document construction panicked: %v", r)
		}
	}()
	return build()
}

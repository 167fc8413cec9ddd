// budgetly-report prints a summary of the stored transactions and writes the
// export artifacts (spreadsheet, PDF report, chart images) to an output
// directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"budgetly/internal/backend"
	"budgetly/internal/budget"
	"budgetly/internal/charts"
	"budgetly/internal/config"
	"budgetly/internal/core"
	"budgetly/internal/export"
	applog "budgetly/internal/log"
	"budgetly/internal/store"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/sync/errgroup"
)

var (
	outputDir = flag.String("output", "", "Directory for export artifacts (defaults to EXPORT_DIR)")
	skipFiles = flag.Bool("summary-only", false, "Print the summary table without writing artifacts")
)

func main() {
	flag.Parse()

	rootLog := applog.New(applog.Config{
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}),
	})
	applog.SetDefault(rootLog)
	logger := rootLog.WithComponent(applog.ComponentReport).Logger

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}
	dir := *outputDir
	if dir == "" {
		dir = cfg.ExportDir
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid backend configuration:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	result, err := backend.NewFactory(logger).CreateStore(ctx, backendCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize backend:", err)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer result.Cleanup()
	}

	sess := store.Session{UserID: cfg.UserID}
	transactions, err := result.Store.List(ctx, sess)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to list transactions:", err)
		os.Exit(1)
	}

	summary := budget.Compute(transactions)
	printSummary(transactions, summary)

	if *skipFiles {
		return
	}
	if err := writeArtifacts(ctx, dir, transactions, summary, logger); err != nil {
		fmt.Fprintln(os.Stderr, "failed to write artifacts:", err)
		os.Exit(1)
	}
}

func printSummary(transactions []core.Transaction, summary budget.Summary) {
	fmt.Printf("Budgetly report - %s\n", time.Now().Format("02 Jan 2006"))
	fmt.Printf("%d transactions\n\n", len(transactions))

	totals := tablewriter.NewWriter(os.Stdout)
	totals.SetHeader([]string{"Total Income", "Total Expenses", "Balance"})
	totals.Append([]string{
		core.FormatINR(summary.TotalIncome.Cents),
		core.FormatINR(summary.TotalExpenses.Cents),
		core.FormatINR(summary.Balance.Cents),
	})
	totals.Render()

	top := budget.TopCategoriesByAmount(summary, 8)
	if len(top) == 0 {
		return
	}
	fmt.Println()
	byCat := tablewriter.NewWriter(os.Stdout)
	byCat.SetHeader([]string{"Category", "Amount"})
	for _, c := range top {
		byCat.Append([]string{c.Name, core.FormatINR(c.Amount.Cents)})
	}
	byCat.Render()

	monthly := budget.MonthlySeries(transactions)
	if len(monthly) == 0 {
		return
	}
	fmt.Println()
	byMonth := tablewriter.NewWriter(os.Stdout)
	byMonth.SetHeader([]string{"Month", "Income", "Expenses", "Balance"})
	for _, m := range monthly {
		byMonth.Append([]string{
			m.Month,
			core.FormatINR(m.Income.Cents),
			core.FormatINR(m.Expenses.Cents),
			core.FormatINR(m.Balance.Cents),
		})
	}
	byMonth.Render()
}

// writeArtifacts fans the independent artifact builds out in parallel; each
// operates on the same immutable snapshot.
func writeArtifacts(ctx context.Context, dir string, transactions []core.Transaction, summary budget.Summary, logger *slog.Logger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	exporter := export.NewExporter(dir, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		path, err := exporter.ExportWorkbook(gctx, transactions)
		if err != nil {
			return err
		}
		fmt.Println("spreadsheet:", path)
		return nil
	})
	g.Go(func() error {
		path, err := exporter.ExportReport(gctx, transactions, summary)
		if err != nil {
			return err
		}
		fmt.Println("report:", path)
		return nil
	})
	g.Go(func() error {
		return writeChart(filepath.Join(dir, "monthly-chart.png"), func(f *os.File) error {
			return charts.RenderMonthly(f, budget.MonthlySeries(transactions))
		})
	})
	g.Go(func() error {
		return writeChart(filepath.Join(dir, "daily-chart.png"), func(f *os.File) error {
			return charts.RenderDaily(f, budget.DailySeries(transactions, 30, core.DateOf(time.Now())))
		})
	})
	g.Go(func() error {
		return writeChart(filepath.Join(dir, "category-chart.png"), func(f *os.File) error {
			return charts.RenderCategoryDonut(f, summary)
		})
	})
	return g.Wait()
}

func writeChart(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	if err := render(f); err != nil {
		if errors.Is(err, charts.ErrNoData) {
			os.Remove(path)
			return nil
		}
		return fmt.Errorf("render chart %s: %w", filepath.Base(path), err)
	}
	fmt.Println("chart:", path)
	return nil
}

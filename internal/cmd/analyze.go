package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/MeKo-Tech/iriscolor/internal/palette"
	"github.com/MeKo-Tech/iriscolor/internal/palettedb"
	"github.com/MeKo-Tech/iriscolor/internal/pipeline"
	"github.com/MeKo-Tech/iriscolor/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [image...]",
	Short: "Analyze eye color in one or more images",
	Long: `Analyze localizes the iris in each image, samples its pigmentation,
and reports the general eye color together with a breakdown of the
dominant shades and their nearest reference colors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Int("max-dimension", 280, "Maximum working image dimension in pixels")
	analyzeCmd.Flags().Int("shades", 10, "Maximum number of dominant shades to report")
	analyzeCmd.Flags().Int("shade-matches", 2, "Reference matches per dominant shade")
	analyzeCmd.Flags().Int("general-matches", 5, "Reference matches for the general color")
	analyzeCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	analyzeCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers for batch analysis (default: number of CPUs)")
	analyzeCmd.Flags().Bool("progress", true, "Show progress bar during batch analysis")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"analyze.max_dimension", "max-dimension"},
		{"analyze.shades", "shades"},
		{"analyze.shade_matches", "shade-matches"},
		{"analyze.general_matches", "general-matches"},
		{"analyze.format", "format"},
		{"analyze.workers", "workers"},
		{"analyze.progress", "progress"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, analyzeCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	format := viper.GetString("analyze.format")
	workers := viper.GetInt("analyze.workers")
	showProgress := viper.GetBool("analyze.progress")

	if logger == nil {
		initLogging()
	}

	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", format)
	}

	table, err := loadReferenceTable()
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		MaxDimension:    viper.GetInt("analyze.max_dimension"),
		MaxShades:       viper.GetInt("analyze.shades"),
		MatchesPerShade: viper.GetInt("analyze.shade_matches"),
		GeneralMatches:  viper.GetInt("analyze.general_matches"),
	}
	analyzer := pipeline.New(table, opts, logger)

	// Setup context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received interrupt signal, cancelling...")
		cancel()
	}()

	if len(args) == 1 {
		return analyzeSingle(ctx, analyzer, args[0], format)
	}

	return analyzeBatch(ctx, analyzer, args, format, workers, showProgress)
}

func analyzeSingle(ctx context.Context, analyzer *pipeline.Analyzer, path, format string) error {
	logger.Info("Analyzing image", "path", path)

	report, err := analyzer.AnalyzeFile(ctx, path)
	if err != nil {
		return err
	}

	return printReport(os.Stdout, path, report, format)
}

func analyzeBatch(ctx context.Context, analyzer *pipeline.Analyzer, paths []string, format string, workers int, showProgress bool) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger.Info("Starting batch analysis", "images", len(paths), "workers", workers)

	tasks := make([]worker.Task, 0, len(paths))
	for _, path := range paths {
		tasks = append(tasks, worker.Task{Path: path})
	}

	progress := worker.NewProgress(len(tasks), showProgress)

	pool := worker.New(worker.Config{
		Workers:    workers,
		Analyzer:   analyzer,
		OnProgress: progress.Callback(),
	})

	results := pool.Run(ctx, tasks)
	progress.Done()

	var failedCount int
	for _, r := range results {
		if r.Err != nil {
			failedCount++
			logger.Error("Analysis failed", "path", r.Task.Path, "error", r.Err)
			continue
		}
		if err := printReport(os.Stdout, r.Task.Path, r.Report, format); err != nil {
			return err
		}
	}

	logger.Info(progress.Summary())

	if failedCount > 0 {
		return fmt.Errorf("%d images failed to analyze", failedCount)
	}
	return nil
}

// loadReferenceTable resolves the reference palette: a database given via
// --palette, or the built-in palette otherwise.
func loadReferenceTable() (palette.Table, error) {
	path := viper.GetString("palette")
	if path == "" {
		return palette.Default(), nil
	}

	table, err := palettedb.Load(path)
	if err != nil {
		return palette.Table{}, fmt.Errorf("failed to load palette %s: %w", path, err)
	}
	logger.Info("Loaded reference palette", "path", path, "colors", table.Len())
	return table, nil
}

// printReport renders one analysis report. Names in the report are
// already in display form (the matcher converts them), so they are
// printed as-is.
func printReport(w io.Writer, path string, report *pipeline.Report, format string) error {
	if format == "json" {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintf(w, "  General: %s (#%s)\n", report.General.Name, report.General.Hex)
	for _, m := range report.GeneralMatches {
		fmt.Fprintf(w, "    ~ %s (#%s, distance %d)\n", m.Name, m.Hex, m.Distance)
	}

	if len(report.Shades) > 0 {
		fmt.Fprintln(w, "  Shades:")
		for _, s := range report.Shades {
			fmt.Fprintf(w, "    %3d%%  %s (#%s)\n", s.Percent, s.Name, s.Hex)
		}
	}

	if len(report.Colors) > 0 {
		fmt.Fprintln(w, "  Dominant colors:")
		for _, c := range report.Colors {
			fmt.Fprintf(w, "    %3d%%  #%s -> %s\n", c.Percent, c.Hex, c.Nearest)
		}
	}

	return nil
}

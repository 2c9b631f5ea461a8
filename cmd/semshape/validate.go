package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/c360studio/semshape/manifest"
	"github.com/c360studio/semshape/metric"
	"github.com/c360studio/semshape/report"
	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary"
	"github.com/c360studio/semshape/watch"
)

func validateCmd() *cobra.Command {
	var (
		manifestPath string
		format       string
		shapeClass   string
		watchMode    bool
		metricsAddr  string
	)

	cmd := &cobra.Command{
		Use:   "validate [data globs...]",
		Short: "Validate data files against the manifest's shapes",
		Long: `Validate reads JSON data files matched by the given glob patterns and
checks each record against the node shape whose target class matches the
record's @type. Records whose @type has no declared shape are skipped.

With --watch, the manifest and data files are re-validated on change.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(validateOptions{
				manifestPath: manifestPath,
				patterns:     args,
				format:       format,
				shapeClass:   shapeClass,
				watchMode:    watchMode,
				metricsAddr:  metricsAddr,
			})
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "shapes.yaml", "Manifest file (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Report format (text, json)")
	cmd.Flags().StringVar(&shapeClass, "shape", "", "Validate every record against this target class instead of dispatching on @type")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-validate when the manifest or data files change")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address in watch mode (e.g. :9090)")

	return cmd
}

type validateOptions struct {
	manifestPath string
	patterns     []string
	format       string
	shapeClass   string
	watchMode    bool
	metricsAddr  string
}

func runValidate(opts validateOptions) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unsupported report format: %s", opts.format)
	}

	logger := slog.Default()
	loader := manifest.NewLoader(logger)

	files, err := expandGlobs(opts.patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no data files match %v", opts.patterns)
	}

	metrics := metric.NewMetrics()

	runOnce := func() (*report.Report, error) {
		m, err := loader.Load(opts.manifestPath)
		if err != nil {
			return nil, err
		}
		return validateFiles(logger, m, files, opts.shapeClass, metrics)
	}

	r, err := runOnce()
	if err != nil {
		return err
	}
	if err := printReport(r, opts.format); err != nil {
		return err
	}

	if !opts.watchMode {
		if !r.OK() {
			return fmt.Errorf("%d violation(s)", r.Summarize().Violations)
		}
		return nil
	}

	return watchLoop(logger, opts, metrics, runOnce)
}

// watchLoop re-runs validation whenever the manifest or a data file changes,
// until interrupted.
func watchLoop(logger *slog.Logger, opts validateOptions, metrics *metric.Metrics, runOnce func() (*report.Report, error)) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.metricsAddr != "" {
		registry := prometheus.NewRegistry()
		if err := metrics.Register(registry); err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
		go serveMetrics(ctx, logger, opts.metricsAddr, registry)
	}

	files, err := expandGlobs(opts.patterns)
	if err != nil {
		return err
	}

	w, err := watch.NewWatcher(watch.Config{
		Paths:  append([]string{opts.manifestPath}, files...),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Stop()

	logger.Info("Watching for changes", "manifest", opts.manifestPath, "files", len(files))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events():
			if !ok {
				return nil
			}
			logger.Info("Change detected, re-validating",
				"path", event.Path,
				"op", string(event.Operation))

			r, err := runOnce()
			if err != nil {
				metrics.RecordReloadError()
				logger.Error("Validation run failed", "error", err)
				continue
			}
			metrics.RecordReload()
			if err := printReport(r, opts.format); err != nil {
				return err
			}
		}
	}
}

func serveMetrics(ctx context.Context, logger *slog.Logger, addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("Serving metrics", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Metrics server failed", "error", err)
	}
}

// expandGlobs resolves doublestar patterns to a sorted, de-duplicated file
// list. Literal paths pass through unchanged.
func expandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		if matches == nil {
			// Not a pattern match; keep literal paths so missing files
			// surface as read errors instead of silently vanishing.
			if _, statErr := os.Stat(pattern); statErr == nil {
				matches = []string{pattern}
			}
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// validateFiles runs every record in every file through its shape and
// aggregates the outcomes.
func validateFiles(logger *slog.Logger, m *manifest.Manifest, files []string, forcedClass string, metrics *metric.Metrics) (*report.Report, error) {
	ontologyCtx := m.BuildContext()
	r := report.New()

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read data file: %w", err)
		}

		records, err := decodeRecords(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}

		for i, record := range records {
			target := file
			if len(records) > 1 {
				target = fmt.Sprintf("%s#%d", file, i)
			}

			ns, ok := shapeForRecord(m, record, forcedClass)
			if !ok {
				logger.Warn("No shape for record, skipping",
					"target", target,
					"type", recordType(record))
				continue
			}

			start := time.Now()
			result := shape.Validate(ns, record, ontologyCtx)
			duration := time.Since(start)

			shapeClass := ns.TargetClass.String()
			metrics.RecordValidation(shapeClass, result.OK)
			metrics.RecordDuration(shapeClass, duration)
			for _, v := range result.Violations {
				metrics.RecordViolation(string(v.Code))
			}

			r.Add(target, shapeClass, result)
		}
	}

	return r, nil
}

// decodeRecords accepts either a single JSON object or an array of objects.
func decodeRecords(data []byte) ([]any, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}
	if list, ok := decoded.([]any); ok {
		return list, nil
	}
	return []any{decoded}, nil
}

// shapeForRecord picks the node shape for a record: the forced class when
// set, otherwise the shape targeting the record's @type.
func shapeForRecord(m *manifest.Manifest, record any, forcedClass string) (*shape.NodeShape, bool) {
	if forcedClass != "" {
		return m.ShapeFor(vocabulary.IRI(forcedClass))
	}
	typ := recordType(record)
	if typ == "" {
		return nil, false
	}
	return m.ShapeFor(vocabulary.IRI(typ))
}

// recordType returns the record's first @type value, if any.
func recordType(record any) string {
	obj, ok := record.(map[string]any)
	if !ok {
		return ""
	}
	switch t := obj["@type"].(type) {
	case string:
		return t
	case []any:
		if len(t) > 0 {
			if s, ok := t[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func printReport(r *report.Report, format string) error {
	if format == "json" {
		out, err := r.JSON()
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	fmt.Print(r.Text())
	return nil
}

// Command chartgen writes the sample document of one or more chart types.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/angas/chartjs-go/chartjs"
	"github.com/angas/chartjs-go/logging"
	"github.com/angas/chartjs-go/samples"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

type options struct {
	outDir       string
	pretty       bool
	randomColors bool
	strict       bool
	logLevel     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "chartgen [type...]",
		Short: "Generate sample Chart.js documents",
		Long: `chartgen builds the sample chart of every given type (all types when
none is given) and writes its JSON document to stdout, or to <type>.json
files under --out.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Output directory (default: stdout)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&opts.randomColors, "random-colors", false, "Use random colors instead of the palette")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when a chart has diagnostics")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "INFO", "Log level: DEBUG, INFO, WARN, ERROR")
	return cmd
}

func run(stdout, stderr io.Writer, opts options, args []string) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))

	types := chartjs.ChartTypes
	if len(args) > 0 {
		types = make([]chartjs.ChartType, 0, len(args))
		for _, arg := range args {
			t, err := chartjs.ParseChartType(arg)
			if err != nil {
				return err
			}
			types = append(types, t)
		}
	}

	if opts.outDir != "" {
		if err := os.MkdirAll(opts.outDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	var diagnosed []chartjs.ChartType
	for _, t := range types {
		chart, err := samples.Build(t, samples.Options{RandomColors: opts.randomColors})
		if err != nil {
			return err
		}
		for _, d := range chart.Diagnostics() {
			logger.Warn("chart diagnostic", slog.String("type", string(t)), slog.String("diagnostic", d.String()))
		}
		if len(chart.Diagnostics()) > 0 {
			diagnosed = append(diagnosed, t)
		}

		doc, err := encode(chart, opts.pretty)
		if err != nil {
			return fmt.Errorf("encoding %s chart: %w", t, err)
		}

		if opts.outDir == "" {
			if _, err := fmt.Fprintln(stdout, string(doc)); err != nil {
				return err
			}
			continue
		}
		path := filepath.Join(opts.outDir, string(t)+".json")
		if err := os.WriteFile(path, append(doc, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Debug("chart written", slog.String("path", path))
	}

	if opts.strict && len(diagnosed) > 0 {
		return fmt.Errorf("charts with diagnostics: %v", diagnosed)
	}
	return nil
}

func encode(chart samples.Chart, pretty bool) ([]byte, error) {
	if pretty {
		return chartjs.MarshalIndent(chart, "", "  ")
	}
	return chartjs.Marshal(chart)
}

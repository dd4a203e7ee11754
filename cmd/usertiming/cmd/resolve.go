package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/go-glx/usertiming/cmd/usertiming/internal/scenario"
	"github.com/go-glx/usertiming/measure"
	"github.com/go-glx/usertiming/promsink"
	"github.com/go-glx/usertiming/trace"
)

const (
	outputJSON  = "json"
	outputTable = "table"
)

type resolveOptions struct {
	output      string
	tracePath   string
	traceWidth  int
	withMetrics bool
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <scenario.yaml>",
	Short: "Resolve every measure of scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scenario.Load(args[0])
		if err != nil {
			return err
		}

		logger, err := newLogger()
		if err != nil {
			return fmt.Errorf("failed create logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

		return runResolve(cmd.OutOrStdout(), logger, sc, resolveOptions{
			output:      viper.GetString("output"),
			tracePath:   viper.GetString("trace"),
			traceWidth:  viper.GetInt("trace_width"),
			withMetrics: viper.GetBool("metrics"),
		})
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().String("output", outputJSON, "output format: json or table")
	resolveCmd.Flags().String("trace", "", "write PNG timeline of resolved entries to path")
	resolveCmd.Flags().Int("trace-width", 1200, "trace timeline width in pixels")
	resolveCmd.Flags().Bool("metrics", false, "print prometheus metrics of resolved entries")

	_ = viper.BindPFlag("output", resolveCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("trace", resolveCmd.Flags().Lookup("trace"))
	_ = viper.BindPFlag("trace_width", resolveCmd.Flags().Lookup("trace-width"))
	_ = viper.BindPFlag("metrics", resolveCmd.Flags().Lookup("metrics"))
}

type callResult struct {
	Call  string         `json:"call"`
	Entry *measure.Entry `json:"entry,omitempty"`
	Error string         `json:"error,omitempty"`
}

func runResolve(out io.Writer, logger *zap.Logger, sc *scenario.Scenario, opts resolveOptions) error {
	entries := make([]measure.Entry, 0, len(sc.Measures))
	sink := promsink.New()
	reg := prometheus.NewRegistry()
	if err := sink.Register(reg); err != nil {
		return fmt.Errorf("failed register metrics: %w", err)
	}

	resolver := measure.NewResolver(
		sc.Registry(),
		measure.WithClock(sc.Clock()),
		measure.WithLogger(logger),
		measure.WithSink(sink),
		measure.WithSink(measure.EntrySinkFunc(func(entry measure.Entry) {
			entries = append(entries, entry)
		})),
	)

	results := make([]callResult, 0, len(sc.Measures))
	failed := 0

	for _, call := range sc.Measures {
		entry, err := resolver.Measure(call.Name, call.Input(), call.EndMark)
		if err != nil {
			failed++
			results = append(results, callResult{Call: call.Name, Error: err.Error()})
			continue
		}

		results = append(results, callResult{Call: call.Name, Entry: &entry})
	}

	if err := printResults(out, opts.output, results); err != nil {
		return err
	}

	if opts.withMetrics {
		if err := printMetrics(out, reg); err != nil {
			return err
		}
	}

	if opts.tracePath != "" && len(entries) > 0 {
		renderer := trace.NewRenderer(trace.WithTimelineWidth(opts.traceWidth), trace.WithTitle("usertiming"))
		if err := renderer.SavePNG(opts.tracePath, entries); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d measures failed", failed, len(sc.Measures))
	}

	return nil
}

func printResults(out io.Writer, format string, results []callResult) error {
	switch format {
	case outputJSON, "":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case outputTable:
		table := tablewriter.NewWriter(out)
		table.Header("Name", "Start", "Duration", "Detail", "Error")

		for _, res := range results {
			if res.Entry == nil {
				table.Append([]string{res.Call, "-", "-", "-", res.Error})
				continue
			}

			detail, err := json.Marshal(res.Entry.Detail())
			if err != nil {
				return fmt.Errorf("failed encode detail of %s: %w", res.Call, err)
			}

			table.Append([]string{
				res.Entry.Name(),
				strconv.FormatFloat(res.Entry.StartTime(), 'f', -1, 64),
				strconv.FormatFloat(res.Entry.Duration(), 'f', -1, 64),
				string(detail),
				"",
			})
		}

		return table.Render()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func printMetrics(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("failed write metrics: %w", err)
		}
	}

	return nil
}

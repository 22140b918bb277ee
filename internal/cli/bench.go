package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/belm0/perf-timer/internal/config"
	"github.com/belm0/perf-timer/internal/output"
	"github.com/belm0/perf-timer/timer"
)

var (
	benchConfigPath string
	benchIterations int
	benchJSON       bool
	benchNoColor    bool
	benchExtract    string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a synthetic workload through configured timers and report",
	Long: `Bench constructs the timers described in a configuration file, runs a
synthetic workload under each one, and prints their reports. Use it to
compare observer kinds and tune quantile/marker settings against a known
duration distribution.`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().StringVarP(&benchConfigPath, "config", "c", "", "timer configuration file (YAML or JSON)")
	benchCmd.Flags().IntVarP(&benchIterations, "iterations", "n", 1000, "workload iterations per timer")
	benchCmd.Flags().BoolVar(&benchJSON, "json", false, "emit summaries as JSON instead of report lines")
	benchCmd.Flags().BoolVar(&benchNoColor, "no-color", false, "disable colored output")
	benchCmd.Flags().StringVar(&benchExtract, "extract", "", "print only the value at this path of the JSON output (implies --json)")
	benchCmd.MarkFlagRequired("config")
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(benchConfigPath)
	if err != nil {
		return err
	}

	registry := timer.NewRegistry()
	timers := make([]*timer.Timer, 0, len(cfg.Timers))
	for _, tc := range cfg.Timers {
		obs, err := config.BuildObserver(tc)
		if err != nil {
			return err
		}
		timers = append(timers, timer.New(tc.Name,
			timer.WithObserver(obs),
			timer.WithRegistry(registry),
			timer.WithLogFunc(func(line string) { fmt.Fprintln(cmd.OutOrStdout(), line) }),
		))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, tm := range timers {
		for i := 0; i < benchIterations; i++ {
			if err := tm.Measure(func() { spin(rng) }); err != nil {
				return fmt.Errorf("timer %q: %w", tm.Name(), err)
			}
		}
	}

	if benchJSON || benchExtract != "" {
		return printJSON(cmd, timers)
	}

	renderer := output.NewRenderer(benchScheme())
	for _, tm := range timers {
		s, err := tm.Summary()
		if err != nil {
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderer.Report(tm.Name(), s))
	}
	return nil
}

// spin busy-waits for a short pseudo-random interval so the measured
// durations have spread for the quantile estimators to work on.
func spin(rng *rand.Rand) {
	target := time.Duration(10+rng.Intn(90)) * time.Microsecond
	begin := time.Now()
	for time.Since(begin) < target {
	}
}

func printJSON(cmd *cobra.Command, timers []*timer.Timer) error {
	summaries := make([]output.NamedSummary, 0, len(timers))
	for _, tm := range timers {
		s, err := tm.Summary()
		if err != nil {
			continue
		}
		summaries = append(summaries, output.NamedSummary{Name: tm.Name(), Summary: s})
	}

	data, err := output.MarshalSummaries(summaries)
	if err != nil {
		return err
	}

	if benchExtract != "" {
		value, err := output.Extract(data, benchExtract)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func benchScheme() *output.ColorScheme {
	if benchNoColor || !output.IsTerminal(os.Stdout) {
		return output.NoColorScheme()
	}
	return output.DefaultColorScheme()
}

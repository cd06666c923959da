package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/usausausausak/autoclick/internal/core/autoclicker"
	"github.com/usausausausak/autoclick/internal/metrics"
)

type config struct {
	display     string
	metricsFile string
	logLevel    slog.Level
	budget      autoclicker.Budget
	extraArgs   []string
}

func newSlogLogger(level slog.Level, out io.Writer) *slog.Logger {
	if !debugLogsEnabled() {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: level,
		}))
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
}

func debugLogsEnabled() bool {
	return strings.TrimSpace(os.Getenv("DEBUG")) == "1"
}

func parseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warning", "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid --log-level %q (expected debug|info|warning|error)", value)
	}
}

func parseConfig(args []string, stderr io.Writer) (config, error) {
	var cfg config
	flags := flag.NewFlagSet("clicker", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: clicker [flags] [SECONDS]")
		fmt.Fprintln(stderr, "Clicks the left button at the pointer until SECONDS pass or the pointer moves.")
		flags.PrintDefaults()
	}

	var logLevelRaw string
	flags.StringVar(&cfg.display, "display", "", "X display to connect to (default: $DISPLAY). Ignored on Windows.")
	flags.StringVar(&cfg.metricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path on exit.")
	flags.StringVar(&logLevelRaw, "log-level", "info", "Log verbosity when DEBUG=1. Allowed: debug, info, warning, error.")

	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	parsedLevel, err := parseLogLevel(logLevelRaw)
	if err != nil {
		return cfg, err
	}
	cfg.logLevel = parsedLevel
	cfg.budget = autoclicker.ParseBudget(flags.Args())
	if flags.NArg() > 1 {
		cfg.extraArgs = flags.Args()[1:]
	}
	return cfg, nil
}

// cliReporter prints the click loop outcome and feeds the metrics recorder.
type cliReporter struct {
	stdout  io.Writer
	stderr  io.Writer
	metrics *metrics.Recorder

	mu     sync.Mutex
	failed bool
}

func (r *cliReporter) Finished(total uint64, cause autoclicker.StopCause) {
	r.metrics.AddClicks(total)
	switch cause {
	case autoclicker.StopMovement:
		r.metrics.Stopped(metrics.ReasonMovement)
	default:
		r.metrics.Stopped(metrics.ReasonSignal)
	}
	fmt.Fprintf(r.stdout, "clicked %d times\n", total)
}

func (r *cliReporter) Failed(err error) {
	r.metrics.Stopped(metrics.ReasonError)
	r.mu.Lock()
	r.failed = true
	r.mu.Unlock()
	fmt.Fprintln(r.stderr, err)
}

func (r *cliReporter) Failure() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

func run(ctx context.Context, args []string, connector autoclicker.Connector, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger := newSlogLogger(cfg.logLevel, stderr)
	if len(cfg.extraArgs) > 0 {
		logger.Warn("Ignoring extra arguments", "args", strings.Join(cfg.extraArgs, " "))
	}
	checkSession(logger)

	if connector == nil {
		connector = newConnector(cfg.display)
	}

	clickCfg := autoclicker.DefaultConfig()
	loop, err := autoclicker.NewClickLoop(clickCfg, connector, logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	recorder := metrics.NewRecorder()
	reporter := &cliReporter{stdout: stdout, stderr: stderr, metrics: recorder}
	supervisor, err := autoclicker.NewSupervisor(clickCfg, loop, cfg.budget, reporter, logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	started := time.Now()
	supervisor.Run(ctx)
	recorder.ObserveDuration(time.Since(started))

	if cfg.metricsFile != "" {
		if err := recorder.WriteTextfile(cfg.metricsFile); err != nil {
			fmt.Fprintf(stderr, "failed to write metrics to %s: %v\n", cfg.metricsFile, err)
		}
	}

	if reporter.Failure() {
		return 1
	}
	return 0
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], nil, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

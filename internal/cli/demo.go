package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/aretw0/flux"
	"github.com/aretw0/flux/internal/app"
	"github.com/aretw0/flux/internal/presentation/tui"
	"github.com/aretw0/flux/pkg/middleware"
	"github.com/aretw0/flux/pkg/observability"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsNamespace prefixes the demo's Prometheus collectors.
const MetricsNamespace = "flux"

// historySize is how many store events the history command keeps.
const historySize = 64

// RunDemo runs the interactive demo on stdin/stdout.
func RunDemo(opts DemoOptions) error {
	return runDemo(opts, os.Stdin, os.Stdout)
}

func runDemo(opts DemoOptions, in io.Reader, out io.Writer) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger, err := createLogger(opts.Debug, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("error configuring logger: %w", err)
	}

	interactive := !opts.Plain && isTerminal(out)
	if interactive {
		tui.PrintBanner(out, flux.Version)
	}

	reg := prometheus.NewRegistry()
	metrics, err := middleware.NewMetrics(reg, MetricsNamespace)
	if err != nil {
		return err
	}

	history := observability.NewRecorder(historySize)
	storeOpts := app.Options{
		Initial: cfg.State(),
		Metrics: metrics,
		Hooks:   history.Hooks(),
	}
	if opts.Debug {
		storeOpts.Logger = logger
		storeOpts.Hooks = observability.Combine(storeOpts.Hooks, createDebugHooks(logger))
	}

	s, err := app.NewStore(cfg.AppEnv(), storeOpts)
	if err != nil {
		return fmt.Errorf("error initializing store: %w", err)
	}
	logger.Info("Store Ready", "env", cfg.Env, "fetch_delay", cfg.FetchDelay)

	render := tui.PlainRenderer
	if interactive {
		render = tui.NewRenderer()
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	session := NewSession(s, out, render, logger)
	session.history = history
	printSystemMessage(out, "Environment '%s'. Type 'help' for commands.", cfg.Env)
	runErr := session.Run(sigCtx, in)

	if opts.Metrics {
		writeMetrics(out, reg)
	}
	return handleExecutionError(runErr)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeMetrics prints counter values collected during the session.
func writeMetrics(w io.Writer, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		printSystemMessage(w, "Failed to gather metrics: %v", err)
		return
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)

	printSystemMessage(w, "Metrics:")
	for _, l := range lines {
		fmt.Fprintln(w, "    "+l)
	}
}

// Command rigsim runs a simulated rig driven by the go-rig cycle engine.
//
// The simulator starts the machine in auto mode, pulses a logged "actuator"
// on every step boundary, and performs one reset-and-resume sequence halfway
// through the run. Engine counters can optionally be exposed as prometheus
// metrics over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/bxtek/go-rig/cycle"
	"github.com/bxtek/go-rig/logger"
	"github.com/bxtek/go-rig/rig"
)

var (
	totalSteps   int
	tickInterval time.Duration
	autoTicks    int
	runFor       time.Duration
	metricsAddr  string
	debug        bool
)

var rootCmd = &cobra.Command{
	Use:   "rigsim",
	Short: "Simulate an automated test/production rig cycling through its steps.",
	Long: `rigsim drives the go-rig cycle engine with a simulated operator: it selects ` +
		`auto mode, starts the machine, lets it cycle, performs one reset-and-resume ` +
		`sequence halfway through the run, and stops. Use --metrics-addr to expose ` +
		`the engine counters as prometheus metrics.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVar(&totalSteps, "steps", 8, "number of steps in one full cycle")
	rootCmd.Flags().DurationVar(&tickInterval, "tick", 50*time.Millisecond, "control-loop tick interval")
	rootCmd.Flags().IntVar(&autoTicks, "auto-ticks", 4, "ticks to dwell on a step before auto advance")
	rootCmd.Flags().DurationVar(&runFor, "run-for", 10*time.Second, "how long to run the simulation")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve prometheus metrics on (empty disables)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	log := logger.GetLogger()
	if debug {
		logger.SetLevel(logger.DebugLevel)
	}

	ctrl, err := cycle.NewController(totalSteps)
	if err != nil {
		return err
	}

	cfg, err := rig.NewConfig(
		rig.WithTickInterval(tickInterval),
		rig.WithAutoAdvanceTicks(autoTicks),
		rig.WithLogger(log),
	)
	if err != nil {
		return err
	}

	engine, err := rig.NewEngine(ctrl, cfg)
	if err != nil {
		return err
	}

	for step := 0; step < totalSteps; step++ {
		if err := engine.RegisterStepAction(step, func(step int) {
			log.Info("actuator pulse", "step", step)
		}); err != nil {
			return err
		}
	}

	if metricsAddr != "" {
		registry := prometheus.NewRegistry()
		registry.MustRegister(rig.MetricCollectors(engine.Metrics(), ctrl)...)

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			log.Info("serving metrics", "addr", metricsAddr)
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				log.Error("metrics server stopped", "error", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, runFor)
	defer cancel()

	if err := engine.Dispatch(rig.Command{Type: rig.CmdSelectAutoMode}); err != nil {
		return err
	}
	if err := engine.Dispatch(rig.Command{Type: rig.CmdStart}); err != nil {
		return err
	}

	go scriptReset(ctx, engine, log)

	err = engine.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}

	return err
}

// scriptReset performs one reset-and-resume sequence halfway through the run.
func scriptReset(ctx context.Context, engine *rig.Engine, log logger.Logger) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(runFor / 2):
	}

	log.Info("operator requests reset")
	if err := engine.Dispatch(rig.Command{Type: rig.CmdBeginReset}); err != nil {
		return
	}

	// Let the rig "re-home" for a few ticks before resuming.
	select {
	case <-ctx.Done():
		return
	case <-time.After(5 * tickInterval):
	}

	_ = engine.Dispatch(rig.Command{Type: rig.CmdJumpToStep, Step: 0})
	_ = engine.Dispatch(rig.Command{Type: rig.CmdCompleteReset})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

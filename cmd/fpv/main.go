package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/calculation"
	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/config"
	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/logging"
	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/output"
	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "fpv",
		Short: "Financial path visualizer: project finances forward and compare decisions",
		Long: `fpv projects a financial profile year by year through life expectancy,
detects milestones along the way, and quantifies the lifetime impact of
alternative decisions by diffing two projections.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(newProjectCmd(&debug))
	root.AddCommand(newCompareCmd(&debug))
	root.AddCommand(newServeCmd(&debug))
	return root
}

func newEngine(debug bool) *calculation.Engine {
	engine := calculation.NewEngine()
	engine.SetLogger(logging.EngineAdapter{Log: logging.New(debug)})
	return engine
}

func newProjectCmd(debug *bool) *cobra.Command {
	var years int
	var format string

	cmd := &cobra.Command{
		Use:   "project <profile.yaml>",
		Short: "Generate a year-by-year trajectory for a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := config.NewProfileParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			engine := newEngine(*debug)
			var trajectory *domain.Trajectory
			if years > 0 {
				trajectory, err = engine.GenerateQuickTrajectory(profile, years)
			} else {
				trajectory, err = engine.GenerateTrajectory(profile)
			}
			if err != nil {
				return err
			}

			formatter, err := output.GetFormatterByName(format)
			if err != nil {
				return err
			}
			data, err := formatter.Format(trajectory)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().IntVar(&years, "years", 0, "truncate to a quick projection of N years")
	cmd.Flags().StringVar(&format, "format", "summary", "output format: json, csv, or summary")
	return cmd
}

func newCompareCmd(debug *bool) *cobra.Command {
	var name string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "compare <baseline.yaml> <alternate.yaml>",
		Short: "Compare the trajectories of two profiles",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewProfileParser()
			baselineProfile, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			alternateProfile, err := parser.LoadFromFile(args[1])
			if err != nil {
				return err
			}

			engine := newEngine(*debug)
			baseline, err := engine.GenerateTrajectory(baselineProfile)
			if err != nil {
				return err
			}
			alternate, err := engine.GenerateTrajectory(alternateProfile)
			if err != nil {
				return err
			}

			changes := calculation.DiffProfiles(baselineProfile, alternateProfile)
			comparison, err := calculation.CompareTrajectories(baseline, alternate, changes, name)
			if err != nil {
				return err
			}

			var formatter output.ComparisonFormatter = output.ConsoleFormatter{}
			if jsonOut {
				formatter = output.JSONFormatter{}
			}
			data, err := formatter.FormatComparison(comparison)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "alternate scenario", "name for the comparison")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the full comparison as JSON")
	return cmd
}

func newServeCmd(debug *bool) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve trajectory generation and comparison over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; environment beats flags only for the address.
			_ = godotenv.Load()
			if env := os.Getenv("FPV_LISTEN_ADDR"); env != "" {
				addr = env
			}

			log := logging.New(*debug)
			srv := server.New(server.Config{
				Addr:   addr,
				Log:    log,
				Engine: newEngine(*debug),
			})

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-stop:
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

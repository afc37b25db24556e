package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"uni-seeder/internal/config/env"
	"uni-seeder/internal/config/logger"
	"uni-seeder/internal/config/monitor"
	"uni-seeder/internal/seeder"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "seed",
	Short:         "Seed the university platform API over HTTP",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// workflow builds a subcommand that loads config, wires the seeder and runs
// one workflow. Any returned error exits with status 1.
func workflow(use, short string, run func(*seeder.Seeder, context.Context) (*seeder.Summary, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := env.Load(cfgFile)
			if err != nil {
				return err
			}
			log := logger.NewLogger(config, cmd.ErrOrStderr())
			monitoring := monitor.NewMonitoring(log, config)
			defer monitoring.Shutdown()

			if _, err := run(seeder.New(log, config), cmd.Context()); err != nil {
				log.WithError(err).Error("Seeding failed")
				return err
			}
			return nil
		},
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yml)")

	rootCmd.AddCommand(
		workflow("reference", "Create countries, cities and universities from CSV files", (*seeder.Seeder).RunReference),
		workflow("roster", "Register a university's users and seed their forum", (*seeder.Seeder).RunRoster),
		workflow("forums", "Seed forum topics and replies for every university", (*seeder.Seeder).RunForums),
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "seed error:", err)
		stop()
		os.Exit(1)
	}
}

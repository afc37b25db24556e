package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	app "uni-seeder/internal"
	"uni-seeder/internal/config/env"
	"uni-seeder/internal/config/logger"
	"uni-seeder/internal/config/monitor"
	"uni-seeder/internal/config/validation"
	"uni-seeder/internal/config/web"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "fakeapi",
	Short:        "Serve an in-memory rehearsal copy of the platform API",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := env.Load(cfgFile)
		if err != nil {
			return err
		}
		log := logger.NewLogger(config, cmd.ErrOrStderr())
		web := web.NewFiber(log, config)
		monitoring := monitor.NewMonitoring(log, config)
		validation := validation.NewValidation()
		defer monitoring.Shutdown()

		server := app.NewApp(log, config, web, validation)

		go func() {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			<-quit
			log.Info("Shutting down rehearsal API")
			_ = server.Shutdown()
		}()

		return server.Run()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yml)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fakeapi error:", err)
		os.Exit(1)
	}
}

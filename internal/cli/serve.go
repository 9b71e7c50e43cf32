package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cpu-scheduler/api"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			app := api.NewApp(cfg, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", cfg.Addr())
				errCh <- app.Listen(cfg.Addr())
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("listen: %w", err)
			case <-ctx.Done():
				logger.Info("shutting down")
				return app.Shutdown()
			}
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 9095, "Listen port (overrides config)")
	return cmd
}

// cmd/promstats/serve.go
package promstats

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/promstats/internal/server"
)

var runServer = server.Serve

// serveCmd implements 'serve', the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the statistics API over HTTP",
	Long:  `The 'serve' command starts the HTTP API (summary, quantile, variance and aggregate endpoints under /api/v1) and stops gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServer(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

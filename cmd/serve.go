package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/trand/counter"
	"github.com/tutils/trand/server"
)

const shutdownTimeout = 5 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve values over HTTP and websocket",
	Long: `Serve generated values over HTTP and websocket, For example:
  trand serve --listen=0.0.0.0:8080 --stats-period=10s
  curl 'http://127.0.0.1:8080/v1/int?seed=7&count=10&min=0&max=100&n=5'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := counter.NewRateCounter(time.Second)
		s := server.New(
			server.WithListenAddress(config.Listen),
			server.WithGenerator(newGenerator(c)),
			server.WithCounter(c),
			server.WithStatsPeriod(config.StatsPeriod),
			server.WithMaxBatch(serveMaxBatch),
		)
		return runUntilSignal(cmd.Context(), s.ListenAndServe, s.Shutdown)
	},
}

var (
	serveMaxBatch int
)

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("listen", "l", server.DefaultListenAddress, "http server listen address")
	flags.Duration("stats-period", 10*time.Second, "how often to log throughput, 0 disables it")
	flags.IntVar(&serveMaxBatch, "max-batch", server.DefaultMaxBatch, "maximum values per request")
	_ = viper.BindPFlag("listen", flags.Lookup("listen"))
	_ = viper.BindPFlag("stats-period", flags.Lookup("stats-period"))
}

// runUntilSignal runs serve until it fails or the process is interrupted,
// then calls stop.
func runUntilSignal(ctx context.Context, serve func() error, stop func(context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- serve()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logrus.Info("shutting down")
	sctx, scancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer scancel()
	if err := stop(sctx); err != nil {
		return err
	}
	return <-errc
}

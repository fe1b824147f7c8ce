package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/trand/counter"
	"github.com/tutils/trand/resp"
)

// respCmd represents the resp command
var respCmd = &cobra.Command{
	Use:   "resp",
	Short: "Serve values over the Redis protocol",
	Long: `Serve generated values over the Redis protocol, For example:
  trand resp --listen=0.0.0.0:6380
  redis-cli -p 6380 RANDOM_INT 7 10 0 100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := resp.New(
			resp.WithListenAddress(config.RespListen),
			resp.WithGenerator(newGenerator(counter.Nop)),
			resp.WithIdleClose(respIdleClose),
		)
		return runUntilSignal(cmd.Context(), s.ListenAndServe, func(context.Context) error {
			return s.Close()
		})
	},
}

var (
	respIdleClose time.Duration
)

func init() {
	rootCmd.AddCommand(respCmd)

	flags := respCmd.Flags()
	flags.StringP("listen", "l", resp.DefaultListenAddress, "resp server listen address")
	flags.DurationVar(&respIdleClose, "idle-close", 0, "close connections idle for this long, 0 keeps them")
	_ = viper.BindPFlag("resp-listen", flags.Lookup("listen"))
}

package cmd

import (
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/trand/counter"
	"github.com/tutils/trand/generator"
	"github.com/tutils/trand/stream"
)

var (
	cfgFile      string
	pprofAddress string
	config       Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trand",
	Short: "Reproducible random SQL values.",
	Long: `Reproducible random SQL values.
Repo: https://github.com/tutils/trand
The Nth of K distinct values for a seed is always the same value. For example:
  trand gen int --seed=7 --count=10 --min=0 --max=100 -n 5
  trand serve --listen=0.0.0.0:8080
  trand resp --listen=0.0.0.0:6380
  trand fill --dsn=test.db --table=t --columns=id:bigint:1:1000,name:string:3:12 --rows=1000`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if replayToken != "" {
			logrus.Debugf("replay with: trand %s%s", prefix, replayToken)
		}
		if pprofAddress != "" {
			startPprof(pprofAddress)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if len(os.Args) == 2 && strings.HasPrefix(os.Args[1], prefix) {
		args, err := decodeCmdline(os.Args[1][len(prefix):])
		if err != nil {
			logrus.Fatalf("decode command line: %v", err)
		}
		rootCmd.SetArgs(args)
	} else if len(os.Args) >= 2 {
		if s, err := encodeCmdline(os.Args[1:]); err == nil {
			replayToken = s
		}
	}

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.trand.yaml)")
	flags.String("log-level", "info", "log level: debug,info,warning,error")
	flags.Uint64("selector-seed", 0, "seed of the value selector, 0 seeds it from system entropy")
	flags.StringVar(&pprofAddress, "pprof", "", "serve net/http/pprof on this address")
	_ = viper.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("selector-seed", flags.Lookup("selector-seed"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			logrus.Fatal(err)
		}

		// Search config in home directory with name ".trand" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".trand")
	}

	viper.SetEnvPrefix("TRAND")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	readErr := viper.ReadInConfig()
	if err := loadConfig(&config); err != nil {
		logrus.Fatal(err)
	}
	if err := setupLogging(config.LogLevel); err != nil {
		logrus.Fatal(err)
	}
	if readErr == nil {
		logrus.Debugf("using config file: %s", viper.ConfigFileUsed())
	} else if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
		logrus.Fatalf("read config: %v", readErr)
	}
}

// newGenerator builds the generator shared by a command, seeded from config.
func newGenerator(c counter.Counter) *generator.Generator {
	sel := stream.NewSelector(stream.WithSeed(config.SelectorSeed))
	return generator.New(generator.WithSelector(sel), generator.WithCounter(c))
}

func startPprof(addr string) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logrus.Warnf("pprof disabled: %v", err)
		return
	}
	logrus.Infof("pprof listening on %s", ln.Addr())
	go http.Serve(ln, nil)
}

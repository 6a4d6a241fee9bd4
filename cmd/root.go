package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fluencelabs/perfmeter/pkg/config"
)

var (
	cfgFile  string
	meterCfg *config.MeterConfig
	logger   = zerolog.New(
		zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC1123,
		}).With().Timestamp().Logger()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "perfmeter",
	Short: "Measure and track benchmark performance per host",
	Long: `Perfmeter runs the configured benchmarks and keeps their timing
history in a local JSON file, keyed by host. Repeated runs on the same
machine accumulate stats per benchmark name, so regressions between
versions stay visible.

Use 'run' to execute benchmarks and record their stats, and 'show' to
render the recorded history.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.perfmeter.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return err
		}

		// Search config in the home and working directory with
		// name ".perfmeter" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".perfmeter")
	}

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			// An explicitly requested config file must be readable.
			return err
		}

		// No config file is fine, flags and defaults still apply.
		logger.Debug().Err(err).Msg("no config file loaded")

		cfg, err := config.NewMeterConfig(viper.GetViper())
		if err != nil {
			return err
		}

		meterCfg = cfg

		return nil
	}

	logger.Info().Str("file", viper.ConfigFileUsed()).Msg("using config file")

	v := viper.Sub("metering")
	if v == nil {
		v = viper.GetViper()
	}

	cfg, err := config.NewMeterConfig(v)
	if err != nil {
		return err
	}

	meterCfg = cfg

	return nil
}

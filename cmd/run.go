package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fluencelabs/perfmeter/pkg/bench"
	"github.com/fluencelabs/perfmeter/pkg/config"
	"github.com/fluencelabs/perfmeter/pkg/db"
	"github.com/fluencelabs/perfmeter/pkg/manifest"
)

var (
	resultPath   string
	manifestPath string
	hostID       string

	// runCmd represents the run command
	runCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run benchmarks and record their stats",
		Long:    "Runs all configured benchmarks and merges their timing stats into the result file.",
		RunE:    runRun,
		PreRunE: preRunRun,
	}
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&resultPath, "result", "",
		"path to the result file (default benches/PERFORMANCE.json)")
	runCmd.Flags().StringVar(&manifestPath, "manifest", "",
		"path to the project manifest the version is read from")
	runCmd.Flags().StringVar(&hostID, "host-id", "",
		"host identifier to record under (default: derived from this machine)")
}

func preRunRun(cmd *cobra.Command, args []string) error {
	if err := initConfig(); err != nil {
		return err
	}

	if resultPath == "" {
		resultPath = meterCfg.ResultPath
	}

	if manifestPath == "" {
		manifestPath = meterCfg.ManifestPath
	}

	if hostID == "" {
		hostID = meterCfg.HostID
	}

	return config.ValidateMeterConfig(meterCfg)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// cancel running benchmarks on sigint and sigterm
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		<-sigs
		logger.Debug().Msg("received sigint or sigterm, canceling benchmarks")
		cancel()
	}()

	logger.Info().
		Str("file", resultPath).
		Str("host_id", hostID).
		Msg("recording benchmark results")

	return db.With(resultPath, hostID, func(d *db.DB) error {
		d.VersionFunc = func() (string, error) {
			return manifest.Version(manifestPath)
		}

		for _, bc := range meterCfg.Benchmarks {
			b := bench.Benchmark{
				BenchName: bc.Name,
				Command:   bc.Command,
				Args:      bc.Args,
				Runs:      bc.Runs,
			}

			logger.Info().
				Str("name", b.BenchName).
				Int("runs", b.Runs).
				Msg("running benchmark")

			stats, err := bench.Run(ctx, b)
			if err != nil {
				logger.Error().Err(err).
					Str("name", b.BenchName).
					Msg("benchmark failed, nothing saved")
				return err
			}

			d.Record(b, stats)
		}

		return nil
	})
}

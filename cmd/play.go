package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gsinfogaurav-sudo/music/internal/game"
	"github.com/gsinfogaurav-sudo/music/internal/logger"
	"github.com/gsinfogaurav-sudo/music/internal/stats"
)

var (
	flagSeed      uint64
	flagVolume    float64
	flagStatsAddr string
	flagMIDI      bool
	flagRecordDir string
	flagDebug     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the trainer window",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.New(flagDebug)
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		defer log.Sync()

		if flagRecordDir != "" {
			if err := os.MkdirAll(flagRecordDir, 0o755); err != nil {
				return fmt.Errorf("record dir: %w", err)
			}
		}

		collector := stats.NewCollector()
		if flagStatsAddr != "" {
			stats.Serve(flagStatsAddr, collector, log)
			log.Info("stats endpoint listening", zap.String("addr", flagStatsAddr))
		}

		return game.RunDesktop(game.Options{
			Seed:      flagSeed,
			Volume:    flagVolume,
			RecordDir: flagRecordDir,
			UseMIDI:   flagMIDI,
			Stats:     collector,
			Log:       log,
		})
	},
}

func init() {
	playCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "random seed, 0 uses the clock")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.55, "output volume 0..1")
	playCmd.Flags().StringVar(&flagStatsAddr, "stats-addr", "", "serve session stats as JSON on this address, e.g. :8973")
	playCmd.Flags().BoolVar(&flagMIDI, "midi", false, "also take input from the first MIDI keyboard")
	playCmd.Flags().StringVar(&flagRecordDir, "record-dir", "", "save free play sessions as MIDI files here")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "verbose logging")
	rootCmd.AddCommand(playCmd)
}

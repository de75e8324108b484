package cmd

import (
	"fmt"

	"github.com/jsphweid/chordparser/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is what every command shares once the root command has loaded the
// config.
type app struct {
	verbose    bool
	configPath string
	cfg        constants.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: constants.Defaults(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "chordparser",
		Short:         "Parses, analyses and transposes chord notation",
		Long:          `Parses chord notation like Cmaj7add#11/E into notes, degrees and intervals, and works with keys and scales.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", constants.GetConfigPath(), "path to the YAML config file")

	rootCmd.AddCommand(
		newChordCmd(a),
		newKeyCmd(a),
		newScaleCmd(a),
		newTransposeCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}

func (a *app) setup() error {
	cfg, err := constants.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	config := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	config.Level = level
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("config loaded", zap.String("path", a.configPath), zap.String("addr", cfg.Addr))
	return nil
}

func Execute() {
	cobra.CheckErr(newRootCmd().Execute())
}

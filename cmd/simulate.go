package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mgirardot/partpilot/config"
	"github.com/mgirardot/partpilot/infra/logger"
	"github.com/mgirardot/partpilot/simulator"
)

var (
	simTarget  string
	simDataset string
	simEngine  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Stream fleet telemetry at a running service",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simTarget, "target", "", "service base URL (overrides config)")
	simulateCmd.Flags().StringVar(&simDataset, "dataset", "", "NASA C-MAPSS file to replay")
	simulateCmd.Flags().IntVar(&simEngine, "engine", 0, "engine unit to replay from the dataset")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	simCfg := cfg.Simulator
	if simTarget != "" {
		simCfg.Target = simTarget
	}
	if simDataset != "" {
		simCfg.DatasetPath = simDataset
	}
	if simEngine != 0 {
		simCfg.EngineID = simEngine
	}

	runner := simulator.NewRunner(simCfg, logger.New("simulator"))
	if err := runner.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

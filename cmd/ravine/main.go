// ravine is a terminal port of the Ravine Despoiler arcade game.
//
// Usage:
//
//	ravine play             - Fly
//	ravine serve            - Start SSH server for remote play
//	ravine flights          - Browse the flight log
//
// Global flags:
//
//	--config <path>  - Platform config YAML
//	--fps <rate>     - Tick rate (default: 60)
//	--seed <value>   - RNG seed for reproducible runs
//	--db <path>      - Flight log path (default: ~/.ravine/flights.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Pharap/arduboy-ravine-despoiler/internal/config"
)

var (
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ravine",
	Short: "Ravine Despoiler - a single-screen arcade game in your terminal",
	Long: `Ravine Despoiler is a terminal port of a tiny arcade game: pilot a
biplane back and forth over a ravine while a zeppelin drifts by.

Available commands:
  play     - Fly
  serve    - Start SSH server for remote play
  flights  - Browse the flight log

Examples:
  ravine play
  ravine play --mute --fps 30
  ravine serve --ssh :2222
  ravine flights`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to platform config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = hardware entropy)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Flight log path (empty = config value)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(flightsCmd)
}

// loadConfig reads the platform config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return cfg, nil
}

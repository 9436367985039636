package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Pharap/arduboy-ravine-despoiler/internal/audio"
	"github.com/Pharap/arduboy-ravine-despoiler/internal/core"
	"github.com/Pharap/arduboy-ravine-despoiler/internal/game"
	"github.com/Pharap/arduboy-ravine-despoiler/internal/platform/tui"
	"github.com/Pharap/arduboy-ravine-despoiler/internal/storage"
)

var (
	flagMute          bool
	flagDebug         bool
	flagShowObjective bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly",
	Long: `Start the game.

Controls:
  Left/Right or H/L  - Steer the plane
  Space/Enter/Z/A    - A button (start)
  X/B                - B button
  Q/Ctrl+C           - Quit

Hold A and tap B during play to reset to the boot logo.

Examples:
  ravine play
  ravine play --mute
  ravine play --show-objective
  ravine play --seed 12345 --fps 30`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable tone playback")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable the level-complete debug key (B during play)")
	playCmd.Flags().BoolVar(&flagShowObjective, "show-objective", false, "Route the title screen through the objective card")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
	}

	opts := game.Options{
		ShowObjective: cfg.ShowObjective || flagShowObjective,
		Debug:         cfg.Debug || flagDebug,
	}

	var sound audio.Player = audio.NullPlayer{}
	if cfg.Sound && !flagMute {
		player, audioErr := audio.NewBeepPlayer()
		if audioErr != nil {
			log.Warn("audio unavailable, playing silent", "error", audioErr)
		} else {
			sound = player
		}
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Warn("could not open flight log", "error", err)
		// Continue without storage - the game still works
		store = nil
	}

	g := game.New(opts, sound, nil)
	runErr := tui.Run(g, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

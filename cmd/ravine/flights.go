package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Pharap/arduboy-ravine-despoiler/internal/platform/tui"
	"github.com/Pharap/arduboy-ravine-despoiler/internal/storage"
)

var flagClearFlights bool

var flightsCmd = &cobra.Command{
	Use:   "flights",
	Short: "Browse the flight log",
	Long: `Show recorded flights: when each one happened, how many screen
passes it made, and how long it lasted.

Examples:
  ravine flights
  ravine flights --clear`,
	Run: runFlights,
}

func init() {
	flightsCmd.Flags().BoolVar(&flagClearFlights, "clear", false, "Delete the entire flight log")
}

func runFlights(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening flight log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearFlights {
		if err := store.ClearFlights(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing flight log: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Flight log cleared.")
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunFlightLog(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing flight log: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/AvengeMedia/dankdim/internal/log"
)

var Version = "dev"

func init() {
	// Add flags
	rootCmd.Flags().StringVar(&overlayBinary, "overlay", defaultOverlayBinary, "Overlay binary launched per dim level")

	// Add subcommands to set
	setCmd.AddCommand(setDimCmd, setWarmCmd)

	// Add commands to root
	rootCmd.AddCommand(versionCmd, panelCmd, setCmd, profileCmd, pauseCmd, breakCmd, quitCmd)
}

func main() {
	if os.Geteuid() == 0 {
		log.Fatal("This program should not be run as root. Exiting.")
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/weathercard/backend/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive weather widget",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	widget, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer widget.Close()

	// the widget owns the terminal
	zerolog.SetGlobalLevel(zerolog.Disabled)

	return tui.Run(cmd.Context(), widget.Search, widget.Theme)
}

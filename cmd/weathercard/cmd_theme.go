package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [show|toggle]",
	Short:     "Show or toggle the saved theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"show", "toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	action := "show"
	if len(args) == 1 {
		action = args[0]
	}
	if action != "show" && action != "toggle" {
		return fmt.Errorf("unknown theme action %q", action)
	}

	widget, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer widget.Close()

	dark := widget.Theme.Dark()
	if action == "toggle" {
		if dark, err = widget.Theme.Toggle(cmd.Context()); err != nil {
			return err
		}
	}

	if dark {
		fmt.Fprintln(cmd.OutOrStdout(), "dark")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "light")
	}
	return nil
}

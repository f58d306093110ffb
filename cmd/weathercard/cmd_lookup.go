package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weathercard/backend/internal/domain"
)

var lookupJSON bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <city...>",
	Short: "Show current weather for a city",
	Long:  `Look up current conditions for a city, e.g. "weathercard lookup New York".`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "print the widget view as JSON")
}

func runLookup(cmd *cobra.Command, args []string) error {
	widget, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer widget.Close()

	widget.Search.SetQuery(strings.Join(args, " "))
	state, err := widget.Search.Submit(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if lookupJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(domain.NewWidgetView(state, widget.Theme.Dark())); err != nil {
			return err
		}
	}

	if state.Error != nil {
		return fmt.Errorf("%s", state.Error.Message)
	}
	if !lookupJSON && state.Result != nil {
		printCard(out, state.Result.Card())
	}
	return nil
}

func printCard(w io.Writer, card domain.Card) {
	fmt.Fprintln(w, card.Title)
	fmt.Fprintf(w, "%d°C  %s\n", card.Temperature, card.Description)
	fmt.Fprintln(w, card.FeelsLike)
	fmt.Fprintf(w, "Humidity  %s\n", card.Humidity)
	fmt.Fprintf(w, "Pressure  %s\n", card.Pressure)
	fmt.Fprintf(w, "Wind      %s\n", card.WindSpeed)
	if card.IconURL != "" {
		fmt.Fprintf(w, "Icon      %s\n", card.IconURL)
	}
}

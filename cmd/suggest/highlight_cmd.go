package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otterbloom/suggestengine/internal/config"
)

func highlightWithCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "highlight-with [left] [right]",
		Short: "Get or set the search result highlight delimiters",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := loadSettings(dataFile)
			if len(args) == 0 {
				left, right := config.HighlightDelimiters(s.left, s.right)
				fmt.Printf("%s %s\n", left, right)
				return nil
			}
			if len(args) != 2 {
				return fmt.Errorf("highlight-with needs both a left and a right delimiter")
			}
			s.left, s.right = args[0], args[1]
			return saveSettings(dataFile, s)
		},
	}
}

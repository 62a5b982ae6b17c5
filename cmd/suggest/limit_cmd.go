package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otterbloom/suggestengine/internal/config"
)

func limitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limit [n]",
		Short: "Get or set the catalogue's result-count limit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := loadSettings(dataFile)
			if len(args) == 0 {
				fmt.Println(config.Limit(s.limit))
				return nil
			}
			var n int
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n <= 0 {
				return fmt.Errorf("limit must be a positive integer, got %q", args[0])
			}
			s.limit = n
			return saveSettings(dataFile, s)
		},
	}
}

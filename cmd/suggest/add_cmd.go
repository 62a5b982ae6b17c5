package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var rating int
	cmd := &cobra.Command{
		Use:   "add [id] [title...]",
		Short: "Append a record to the catalogue file",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			title := strings.Join(args[1:], " ")
			return appendRow(dataFile, catalogueRow{id: id, rating: rating, title: title})
		},
	}
	cmd.Flags().IntVar(&rating, "rating", 0, "Tiebreak rating for this record")
	return cmd
}

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/otterbloom/suggestengine/internal/abi"
)

type searchResultRow struct {
	ID        string `json:"id"`
	Highlight string `json:"highlight"`
}

func searchCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search the catalogue and print the top results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runSearch(query, jsonOut)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func runSearch(query string, jsonOut bool) error {
	storeID, err := buildStore(dataFile)
	if err != nil {
		return err
	}
	defer abi.DestroyStore(storeID)

	count := abi.RunSearch(storeID, query, nil, nil)
	ids := abi.GetResultIDs(storeID)
	titles := strings.Split(abi.GetResultTitles(storeID), "\x00")
	rows := make([]searchResultRow, count)
	for i := 0; i < count; i++ {
		rows[i] = searchResultRow{ID: ids[i], Highlight: titles[i]}
	}

	if jsonOut {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(rows) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	for i, r := range rows {
		fmt.Printf("%d. %s  %s\n", i+1, r.ID, r.Highlight)
	}
	return nil
}

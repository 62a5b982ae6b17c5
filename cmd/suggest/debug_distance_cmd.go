package main

import (
	"fmt"

	"github.com/spf13/cobra"

	engine "github.com/otterbloom/suggestengine"
	"github.com/otterbloom/suggestengine/lang"
)

func debugDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug-distance [word1] [word2]",
		Short: "Compare the engine's weighted distance against the unweighted reference",
		Long: `Prints the class-weighted Damerau-Levenshtein distance the matcher
actually uses next to matchr's unrestricted, unweighted reference
distance and Jaro-Winkler similarity, for manually sanity-checking the
weighting against plain edit distance.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := args[0], args[1]
			weighted := engine.WeightedDistance(lang.English, a, b)
			ref := engine.ReferenceDamerau(a, b)
			jw := engine.ReferenceJaroWinkler(a, b)
			fmt.Printf("weighted distance:   %.2f\n", weighted)
			fmt.Printf("reference damerau:   %d\n", ref)
			fmt.Printf("reference jaro-winkler: %.4f\n", jw)
			return nil
		},
	}
}

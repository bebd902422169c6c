/*
honeyword finds dictionary words traceable through a honeycomb lattice.

It reads a lattice description (ring count, then one line of concatenated
symbols per ring) and a dictionary (one word per line), and prints every
word that can be traced as a simple path through adjacent lattice cells,
sorted ascending, one per line.

Usage:

	honeyword <lattice-file> <dictionary-file>

Exit status is 0 on normal completion (including an empty result) and
non-zero when an input file is missing or malformed.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/honeyword/hexgrid"
	"github.com/katalvlaran/honeyword/search"
)

var rootCmd = &cobra.Command{
	Use:   "honeyword <lattice-file> <dictionary-file>",
	Short: "Find dictionary words traceable through a honeycomb lattice",
	Args:  cobra.ExactArgs(2),
	RunE:  run,
	// Results go to stdout only; diagnostics belong on stderr.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func run(cmd *cobra.Command, args []string) error {
	latticePath, dictPath := args[0], args[1]

	// Lattice first: no point reading the dictionary if the board is broken.
	lf, err := os.Open(latticePath)
	if err != nil {
		return fmt.Errorf("open lattice file %s: %w", latticePath, err)
	}
	defer lf.Close()
	lat, err := hexgrid.Parse(lf)
	if err != nil {
		return fmt.Errorf("parse lattice file %s: %w", latticePath, err)
	}

	df, err := os.Open(dictPath)
	if err != nil {
		return fmt.Errorf("open dictionary file %s: %w", dictPath, err)
	}
	defer df.Close()
	words, err := search.ReadWords(df)
	if err != nil {
		return fmt.Errorf("read dictionary file %s: %w", dictPath, err)
	}

	found, err := search.Run(lat, words, search.WithContext(cmd.Context()))
	if err != nil {
		return err
	}
	for _, w := range found {
		fmt.Fprintln(cmd.OutOrStdout(), w)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger, lerr := zap.NewProduction()
		if lerr != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logger.Error("honeyword failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

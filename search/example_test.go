package search_test

import (
	"fmt"

	"github.com/katalvlaran/honeyword/hexgrid"
	"github.com/katalvlaran/honeyword/search"
)

// ExampleExists checks a single word against a two-ring honeycomb.
func ExampleExists() {
	l, err := hexgrid.New([]string{"A", "BCDEFG"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, word := range []string{"CBA", "CF"} {
		ok, err := search.Exists(l, word)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(word, ok)
	}
	// Output:
	// CBA true
	// CF false
}

// ExampleRun evaluates a small dictionary and prints the found words,
// already sorted.
func ExampleRun() {
	l, err := hexgrid.New([]string{"A", "BCDEFG"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	found, err := search.Run(l, []string{"GF", "AB", "BD", "BA"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, w := range found {
		fmt.Println(w)
	}
	// Output:
	// AB
	// BA
	// GF
}

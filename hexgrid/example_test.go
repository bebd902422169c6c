package hexgrid_test

import (
	"fmt"

	"github.com/katalvlaran/honeyword/hexgrid"
)

// ExampleNew builds the smallest non-trivial honeycomb — a center plus one
// ring of six cells — and inspects the center's neighborhood.
func ExampleNew() {
	l, err := hexgrid.New([]string{"A", "BCDEFG"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("cells:", l.NumCells())
	center := l.Index(hexgrid.Coord{Ring: 0, Pos: 0})
	for _, n := range l.Neighbors(center) {
		fmt.Printf("%c", l.Symbol(n))
	}
	fmt.Println()
	// Output:
	// cells: 7
	// BCDEFG
}

// ExampleRingSize shows the closed-form ring populations.
func ExampleRingSize() {
	for r := 0; r < 4; r++ {
		fmt.Println(r, hexgrid.RingSize(r))
	}
	// Output:
	// 0 1
	// 1 6
	// 2 12
	// 3 18
}

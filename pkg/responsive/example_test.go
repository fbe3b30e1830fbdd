package responsive_test

import (
	"fmt"

	"github.com/matzehuels/gridpack/pkg/grid"
	"github.com/matzehuels/gridpack/pkg/responsive"
)

func ExampleBreakpointFromWidth() {
	b := responsive.Breakpoints{"sm": 0, "md": 768, "lg": 1200}
	fmt.Println(responsive.BreakpointFromWidth(b, 900))
	fmt.Println(responsive.BreakpointFromWidth(b, 768))
	// Output:
	// md
	// sm
}

func ExampleFindOrGenerate() {
	lg := grid.Layout{
		{ID: "table", X: 0, Y: 0, W: 6, H: 2},
		{ID: "chart", X: 6, Y: 0, W: 6, H: 2},
	}
	sm := responsive.FindOrGenerate(responsive.Request{
		Cached:          responsive.Layouts{"lg": lg},
		Breakpoints:     responsive.Breakpoints{"sm": 0, "lg": 1200},
		Breakpoint:      "sm",
		Cols:            6,
		VerticalCompact: true,
	})
	for _, it := range sm {
		fmt.Printf("%s at (%d,%d)\n", it.ID, it.X, it.Y)
	}
	// Output:
	// table at (0,0)
	// chart at (0,2)
}

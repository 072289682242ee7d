// File: geometry/example_test.go
package geometry_test

import (
	"fmt"

	"github.com/katalvlaran/hexwave/geometry"
)

// ExampleBuildHexagonOutline prints the first corner of a rounded hexagon of
// radius 10 with corners rounded by 1.5.
func ExampleBuildHexagonOutline() {
	o, err := geometry.BuildHexagonOutline(geometry.Origin, 10, 1.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("closed:", o.Closed())
	fmt.Println("start:", geometry.FormatNumber(o.Start.X), geometry.FormatNumber(o.Start.Y))
	c := o.Corners[0].Arc
	fmt.Println("arc to:", geometry.FormatNumber(c.To.X), geometry.FormatNumber(c.To.Y))

	// Output:
	// closed: true
	// start: 9.625 -0.6495
	// arc to: 9.625 0.6495
}

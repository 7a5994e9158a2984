package distance_test

import (
	"fmt"

	"github.com/katalvlaran/colscore/distance"
	"github.com/katalvlaran/colscore/imageio"
)

// ExampleColumns compares the three columns of a one-row image.
func ExampleColumns() {
	img, err := imageio.New(3, 1, []uint8{
		0, 0, 0, // column 0
		10, 20, 30, // column 1
		10, 20, 31, // column 2
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, err := distance.Columns(img, distance.Manhattan)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(d)
	// Output:
	// [0, 60, 61]
	// [60, 0, 1]
	// [61, 1, 0]
}

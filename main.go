// Command colscore converts an image into a TSPLIB instance whose cities are
// the image columns.
//
//	colscore scan.png > scan.tsp
package main

import "github.com/katalvlaran/colscore/cmd"

func main() {
	cmd.Execute()
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/slice-d/sliced"
)

func main() {
	var verbose bool
	flag.BoolVar(&verbose, "verbose", false, "print every loop")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: loop_info [flags] <loops.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading loops...")
	loops, err := sliced.LoadLoops(inputPath)
	essentials.Must(err)

	var numClosed int
	var totalArea float64
	for i, l := range loops {
		sense := "open"
		if l.Closed {
			numClosed++
			totalArea += l.Area()
			if l.Degenerate() {
				sense = "degenerate"
			} else if sliced.Sense(l) {
				sense = "ccw"
			} else {
				sense = "cw"
			}
		}
		if verbose {
			fmt.Printf("loop %d: points=%d sense=%s area=%f\n", i, len(l.Vertices()), sense,
				l.Area())
		}
	}
	fmt.Println("Number of loops:", len(loops))
	fmt.Println("Closed loops:", numClosed)
	fmt.Println("Signed area:", totalArea)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/slice-d/sliced"
)

func main() {
	var height float64
	var concurrency int
	var requireClosed bool
	var loopsPath string
	var pngPath string
	var pngSize int
	flag.Float64Var(&height, "z", 0, "height of the cutting plane")
	flag.IntVar(&concurrency, "concurrency", 0, "maximum Goroutines for splitting (0 for GOMAXPROCS)")
	flag.BoolVar(&requireClosed, "require-closed", false, "fail if the cross section is not closed")
	flag.StringVar(&loopsPath, "loops", "", "optional path to save cross section loops")
	flag.StringVar(&pngPath, "loops-png", "", "optional path to draw cross section loops")
	flag.IntVar(&pngSize, "png-size", 512, "size of the cross section drawing")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: slice_mesh [flags] <input.stl> <above.stl> <below.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath, abovePath, belowPath := args[0], args[1], args[2]

	log.Println("Loading mesh...")
	f, err := os.Open(inputPath)
	essentials.Must(err)
	inputTris, err := model3d.ReadSTL(f)
	f.Close()
	essentials.Must(err)
	inputMesh := model3d.NewMeshTriangles(inputTris)
	log.Printf(" => loaded %d triangles", len(inputTris))

	log.Printf("Slicing at z=%f...", height)
	out, err := sliced.Slice(inputMesh, height, &sliced.SliceOptions{
		Concurrency:   concurrency,
		RequireClosed: requireClosed,
	})
	essentials.Must(err)

	var numOpen, numCCW int
	for i, l := range out.Loops {
		if !l.Closed {
			numOpen++
		} else if out.Senses[i] {
			numCCW++
		}
	}
	log.Printf(" => %d loops (%d open, %d counter-clockwise), %d cap triangles",
		len(out.Loops), numOpen, numCCW, len(out.Cap))
	if numOpen > 0 {
		log.Println("warning: open loops were not capped")
	}

	log.Println("Saving meshes...")
	essentials.Must(out.Above.SaveGroupedSTL(abovePath))
	essentials.Must(out.Below.SaveGroupedSTL(belowPath))

	if loopsPath != "" {
		log.Println("Saving loops...")
		essentials.Must(sliced.SaveLoops(loopsPath, out.Loops))
	}
	if pngPath != "" {
		log.Println("Drawing loops...")
		essentials.Must(DrawLoops(pngPath, out.Loops, pngSize))
	}
}

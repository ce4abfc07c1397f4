package sliced

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/unixpickle/model3d/model2d"
)

// Fixtures are SVG files in fixtures/, loaded by name without the extension.
// Every polygon element becomes one closed loop.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []*Loop {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}

	var loops []*Loop
	for _, polygonEl := range polygons {
		loop := &Loop{Closed: true}
		for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
			parts := strings.Split(pointString, ",")
			if len(parts) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			x, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				log.Fatalf("Invalid x value %q: %v", parts[0], err)
			}
			y, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				log.Fatalf("Invalid y value %q: %v", parts[1], err)
			}
			loop.Points = append(loop.Points, model2d.XY(x, y))
		}
		loop.Points = append(loop.Points, loop.Points[0])
		loops = append(loops, loop)
	}
	return loops
}

// Command towergridvis provides a GUI viewer for towergrid runs.
package main

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/towergrid/internal/gen"
	"github.com/elektrokombinacija/towergrid/internal/vis"
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "", "scenario JSON to visualize (default: built-in demo)")
		radius       = flag.Int("radius", 2, "connectivity radius for the path overlay")
	)
	flag.Parse()

	scenario, err := loadScenario(*scenarioPath)
	if err != nil {
		log.Fatal(err)
	}

	application, err := vis.NewApp(scenario, *radius)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("towergrid Viewer"),
			app.Size(unit.Dp(1000), unit.Dp(800)),
		)
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loadScenario(path string) (*gen.Scenario, error) {
	if path == "" {
		return vis.DefaultScenario()
	}
	return gen.Load(path)
}

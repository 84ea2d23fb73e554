package main

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/integrii/flaggy"

	"cgol/src/universe"
	"cgol/src/view"
)

const descr = `Conway's Game of Life in the terminal
 - Esc or 'q' to quit
 - 'j', 'k': decreasing, increasing speed ('J', 'K': bigger steps)
 - press Space to pause, play
 - hit 'n' to switch to the next shape, 'r' to restart it, 'R' to reset
 - '+', '-': grow, shrink the display`

func main() {
	log.SetHandler(text.New(os.Stderr))

	o, noUI := initOptions()

	if noUI {
		c, err := view.NewConsoleOut(o)
		if err != nil {
			log.WithError(err).Fatal("can not create the starting universe")
		}
		c.Run()
		return
	}

	ui, err := view.NewConsoleUI(o)
	if err != nil {
		log.WithError(err).Fatal("can not start the terminal UI")
	}
	ui.Start()
}

func initOptions() (o view.Options, noUI bool) {
	o = view.Options{
		Size:     universe.DefaultSize,
		Shape:    0,
		Interval: universe.DefaultInterval,
		Steps:    100,
	}

	flaggy.SetDescription(descr)
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&o.Size, "w", "size", "Width and height of the display area")
	flaggy.Int(&o.Shape, "f", "shape", "Index of the starting shape (0..4)")
	flaggy.Duration(&o.Interval, "i", "interval", "Poll interval between generations, for example 150ms")
	flaggy.Int(&o.Steps, "s", "steps", "Number of generations to run without the UI")
	flaggy.Bool(&o.Parallel, "p", "parallel", "Shard the generation pass over the CPUs")
	flaggy.Bool(&noUI, "n", "no-ui", "Run headless and print the final universe")

	flaggy.Parse()

	return
}

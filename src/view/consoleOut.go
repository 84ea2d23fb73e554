package view

import (
	"fmt"
	"time"

	"github.com/apex/log"

	"cgol/src/universe"
)

//Options configures either front end
type Options struct {
	Size     int
	Shape    int
	Interval time.Duration
	Steps    int
	Parallel bool
}

//tickFunc selects the generation engine
func tickFunc(parallel bool) func(*universe.Universe) {
	if parallel {
		return (*universe.Universe).TickParallel
	}
	return (*universe.Universe).Tick
}

//ConsoleOut runs the simulation headless and prints the result
type ConsoleOut struct {
	u     *universe.Universe
	tick  func(*universe.Universe)
	steps int
}

//NewConsoleOut creates the headless runner with the starting shape placed
func NewConsoleOut(o Options) (*ConsoleOut, error) {
	u, err := universe.GetShape(o.Size, o.Shape)
	if err != nil {
		return nil, err
	}
	return &ConsoleOut{
		u:     u,
		tick:  tickFunc(o.Parallel),
		steps: o.Steps,
	}, nil
}

//Run advances the universe the configured number of generations,
//reports the progress every 10 and prints the final universe
func (c *ConsoleOut) Run() {
	startTime := time.Now()
	log.WithFields(log.Fields{
		"width":  c.u.Width(),
		"height": c.u.Height(),
		"steps":  c.steps,
	}).Info("simulation started")

	for i := 1; i <= c.steps; i++ {
		c.tick(c.u)
		if i%10 == 0 {
			log.WithFields(log.Fields{
				"generation": i,
				"live":       c.u.LiveCells(),
			}).Info("progress")
		}
	}

	fmt.Print(c.u)
	log.WithFields(log.Fields{
		"generations": c.steps,
		"live":        c.u.LiveCells(),
		"total":       time.Since(startTime).Round(time.Millisecond).String(),
	}).Info("finished")
}

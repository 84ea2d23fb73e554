package view

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"cgol/src/universe"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string //empty for alias keys, they are left out of the help line
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal front end
//all universe mutations run on the gocui main loop, only the poll interval
//is shared with the ticker goroutine and guarded by the mutex
type ConsoleUI struct {
	g *gocui.Gui
	k []keyBinding

	u          *universe.Universe
	tick       func(*universe.Universe)
	shapeIdx   int
	size       int
	generation int
	message    string

	mu     sync.Mutex
	pollT  time.Duration
	savedT time.Duration

	closeCh chan struct{}

	liveFiller string
	deadFiller string
}

//NewConsoleUI creates the terminal UI with the starting shape already placed
func NewConsoleUI(o Options) (*ConsoleUI, error) {
	u, err := universe.GetShape(o.Size, o.Shape)
	if err != nil {
		return nil, err
	}

	t := &ConsoleUI{
		u:          u,
		tick:       tickFunc(o.Parallel),
		shapeIdx:   o.Shape,
		size:       o.Size,
		pollT:      o.Interval,
		closeCh:    make(chan struct{}),
		liveFiller: aurora.Green("◼ ").String(),
		deadFiller: "  ",
	}
	if t.pollT <= 0 {
		t.pollT = universe.DefaultInterval
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}
	t.g.Mouse = true

	t.k = []keyBinding{
		{'q', "Q", "Quit", t.cmdQuit, ""},
		{gocui.KeyEsc, "ESC", "", t.cmdQuit, ""},
		{gocui.KeyCtrlC, "^C", "", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Play/pause", t.cmdPlayPause, ""},
		{'k', "K", "Faster", t.cmdFaster, ""},
		{gocui.KeyArrowUp, "UP", "", t.cmdFaster, ""},
		{'K', "SHIFT-K", "Much faster", t.cmdFasterBig, ""},
		{'j', "J", "Slower", t.cmdSlower, ""},
		{gocui.KeyArrowDown, "DOWN", "", t.cmdSlower, ""},
		{'J', "SHIFT-J", "Much slower", t.cmdSlowerBig, ""},
		{'n', "N", "Next shape", t.cmdNextShape, ""},
		{'r', "R", "Restart", t.cmdRestart, ""},
		{'R', "SHIFT-R", "Reset", t.cmdReset, ""},
		{'+', "+", "Grow", t.cmdBigger, ""},
		{'-', "-", "Shrink", t.cmdSmaller, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseClick, "universe"},
	}
	t.g.SetManagerFunc(t.layout)

	if err := t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}
	return t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBinding) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone,
			func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return err
		}
	}
	return nil
}

//Start runs the UI loop, it returns when the user quits
func (t *ConsoleUI) Start() {
	go t.tickLoop()
	err := t.g.MainLoop()
	close(t.closeCh)
	t.g.Close()
	if err != nil && err != gocui.ErrQuit {
		log.WithError(err).Fatal("terminal loop failed")
	}
}

//tickLoop advances the universe every poll interval while playing
//the mutation itself is queued onto the gocui main loop via g.Update
func (t *ConsoleUI) tickLoop() {
	for {
		d := t.interval()
		if d == universe.Paused {
			d = universe.DefaultInterval
		}
		select {
		case <-t.closeCh:
			return
		case <-time.After(d):
		}
		t.g.Update(func(*gocui.Gui) error {
			if t.interval() != universe.Paused {
				t.step()
			}
			return nil
		})
	}
}

func (t *ConsoleUI) interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pollT
}

func (t *ConsoleUI) step() {
	t.tick(t.u)
	t.generation++
	t.renderField()
	t.renderStatus()
}

//loadShape replaces the universe with the idx. shape at the given size
//on failure the old universe stays and the error shows up in the status pane
func (t *ConsoleUI) loadShape(idx, size int) {
	u, err := universe.GetShape(size, idx)
	if err != nil {
		t.message = err.Error()
		t.renderStatus()
		return
	}
	t.u = u
	t.shapeIdx = idx
	t.size = size
	t.generation = 0
	t.message = ""
	t.renderField()
	t.renderStatus()
}

func (t *ConsoleUI) adjustSpeed(adjust func(time.Duration, bool) time.Duration, big bool) {
	t.mu.Lock()
	if t.pollT == universe.Paused {
		t.savedT = adjust(t.savedT, big)
	} else {
		t.pollT = adjust(t.pollT, big)
	}
	t.mu.Unlock()
	t.renderStatus()
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdPlayPause(_ *gocui.View) error {
	t.mu.Lock()
	if t.pollT == universe.Paused {
		t.pollT = t.savedT
		if t.pollT <= 0 || t.pollT == universe.Paused {
			t.pollT = universe.DefaultInterval
		}
	} else {
		t.savedT = t.pollT
		t.pollT = universe.Paused
	}
	t.mu.Unlock()
	t.renderStatus()
	return nil
}

func (t *ConsoleUI) cmdFaster(_ *gocui.View) error {
	t.adjustSpeed(universe.Faster, false)
	return nil
}

func (t *ConsoleUI) cmdFasterBig(_ *gocui.View) error {
	t.adjustSpeed(universe.Faster, true)
	return nil
}

func (t *ConsoleUI) cmdSlower(_ *gocui.View) error {
	t.adjustSpeed(universe.Slower, false)
	return nil
}

func (t *ConsoleUI) cmdSlowerBig(_ *gocui.View) error {
	t.adjustSpeed(universe.Slower, true)
	return nil
}

func (t *ConsoleUI) cmdNextShape(_ *gocui.View) error {
	t.loadShape((t.shapeIdx+1)%universe.ShapesN, t.size)
	return nil
}

func (t *ConsoleUI) cmdRestart(_ *gocui.View) error {
	t.loadShape(t.shapeIdx, t.size)
	return nil
}

func (t *ConsoleUI) cmdReset(_ *gocui.View) error {
	t.mu.Lock()
	t.pollT = universe.DefaultInterval
	t.savedT = 0
	t.mu.Unlock()
	t.loadShape(0, universe.DefaultSize)
	return nil
}

func (t *ConsoleUI) cmdBigger(_ *gocui.View) error {
	t.loadShape(t.shapeIdx, t.size+1)
	return nil
}

func (t *ConsoleUI) cmdSmaller(_ *gocui.View) error {
	if t.size > 1 {
		t.loadShape(t.shapeIdx, t.size-1)
	}
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	//every cell is rendered two characters wide
	row, col := cy, cx/2
	if row >= 0 && row < t.u.Height() && col >= 0 && col < t.u.Width() {
		t.u.ToggleCell(row, col)
		t.renderField()
		t.renderStatus()
	}
	return nil
}

func (t *ConsoleUI) renderField() {
	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("universe")
		if e != nil {
			return nil
		}
		v.Clear()

		maxW, maxH := v.Size()
		crop := t.u.Width()*2 > maxW || t.u.Height() > maxH

		var b bytes.Buffer
		cells := t.u.Cells()
		w := t.u.Width()

		for row := 0; row < t.u.Height(); row++ {
			if row >= maxH {
				break
			}
			if row != 0 {
				b.WriteByte('\n')
			}
			if crop && row == maxH-1 {
				b.WriteString(aurora.Red("The universe is larger than the viewing area").String())
				break
			}
			for col := 0; col < w; col++ {
				if col*2 >= maxW {
					break
				}
				if cells[row*w+col] == universe.Alive {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("status")
		if e != nil {
			return nil
		}
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Shape", "%v", universe.ShapeName(t.shapeIdx)))
		_, _ = fmt.Fprintln(v, t.renderProp("Size", "%v x %v", t.u.Width(), t.u.Height()))
		_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", t.generation))
		_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", t.u.LiveCells()))
		_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", t.pollString()))
		if t.message != "" {
			_, _ = fmt.Fprintln(v, " "+aurora.Red(t.message).String())
		}
		return nil
	})
}

//pollString formats the poll interval, the paused sentinel reads "max"
func (t *ConsoleUI) pollString() string {
	d := t.interval()
	if d == universe.Paused {
		return "max"
	}
	return d.Round(time.Millisecond).String()
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 26
	minWindowHeight := 12

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("status")
		_ = g.DeleteView("universe")
		return nil
	}

	if _, err := t.headerLayout(g, 2, "Conway's Game of Life"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("status", 0, 2, leftColumnWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("universe", leftColumnWidth+1, 2, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Universe"
		v.Frame = true
		t.renderField()
	} else {
		t.renderField()
	}

	if v, err := g.SetView("help", -1, maxY-4, maxX, maxY-2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		first := true
		for _, k := range t.k {
			if k.descr == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat(" ", pad)+text)
	}
	return
}

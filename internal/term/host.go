package term

import (
	"context"
	"time"

	"particles/internal/app"
	"particles/internal/core"
	"particles/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

var glyphs = map[sand.Material]rune{
	sand.Empty:    ' ',
	sand.Boundary: '█',
	sand.Sand:     '▒',
	sand.Stone:    '█',
	sand.Water:    '≈',
}

// Host runs the sandbox in a terminal. Each world cell is one terminal
// cell and the status line sits under the world.
type Host struct {
	screen tcell.Screen
	ctl    *app.Controller
	clock  *core.FixedStep
	styles []tcell.Style
}

// New wires a host to an initialised screen.
func New(screen tcell.Screen, ctl *app.Controller, tps int) *Host {
	palette := ctl.World().Palette()
	styles := make([]tcell.Style, len(palette))
	for i, c := range palette {
		styles[i] = tcell.StyleDefault
		if c.A == 0 {
			continue
		}
		styles[i] = styles[i].Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	screen.EnableMouse()
	return &Host{screen: screen, ctl: ctl, clock: core.NewFixedStep(tps), styles: styles}
}

// HandleEvent applies one terminal event and reports whether the host
// should keep running.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		h.ctl.Apply(app.ActionForKey(keyName(ev)))
	case *tcell.EventMouse:
		x, y := ev.Position()
		size := h.ctl.World().Size()
		if x < 0 || y < 0 || x >= size.W || y >= size.H {
			break
		}
		switch {
		case ev.Buttons()&tcell.Button1 != 0:
			h.ctl.PaintDisplay(x, y, false)
		case ev.Buttons()&tcell.Button2 != 0:
			h.ctl.PaintDisplay(x, y, true)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return !h.ctl.Quit()
}

func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

// Draw renders the world and the status line.
func (h *Host) Draw() {
	w := h.ctl.World()
	cells := w.Cells()
	size := w.Size()
	h.screen.Clear()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			m := sand.Material(cells[row*size.W+col])
			glyph, ok := glyphs[m]
			if !ok {
				glyph = '?'
			}
			style := tcell.StyleDefault
			if int(m) < len(h.styles) {
				style = h.styles[m]
			}
			h.screen.SetContent(col, row, glyph, nil, style)
		}
	}
	for i, r := range []rune(h.ctl.Status()) {
		h.screen.SetContent(i, size.H, r, nil, tcell.StyleDefault)
	}
	h.screen.Show()
}

// Advance runs the ticks that came due since the previous call.
func (h *Host) Advance() int {
	ran := 0
	for n := h.clock.Due(); n > 0; n-- {
		if _, ok := h.ctl.Advance(); ok {
			ran++
		}
	}
	return ran
}

// Run polls terminal events and drives the clock until the user quits or
// ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go h.pump(ctx, events)

	frame := time.NewTicker(h.clock.Interval())
	defer frame.Stop()
	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !h.HandleEvent(ev) {
				return nil
			}
		case <-frame.C:
			h.Advance()
			h.Draw()
		}
	}
}

// pump forwards screen events until the screen finalizes or ctx is done.
func (h *Host) pump(ctx context.Context, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/automoto/pethub/config"
	"github.com/automoto/pethub/shared/companion"
	"github.com/automoto/pethub/shared/pointer"
	"github.com/gdamore/tcell/v2"
)

// One terminal cell stands for an 8x16 pixel block of the hub, so the
// pixel tuning applies unchanged.
const (
	cellW = 8
	cellH = 16
)

func cellsToViewport(cols, rows int) companion.Viewport {
	return companion.Viewport{Width: float64(cols * cellW), Height: float64(rows * cellH)}
}

// cellCenter maps a cell to the pixel at its centre.
func cellCenter(col, row int) companion.Vec {
	return companion.Vec{X: float64(col*cellW + cellW/2), Y: float64(row*cellH + cellH/2)}
}

func pixelToCell(p companion.Vec) (int, int) {
	return int(p.X) / cellW, int(p.Y) / cellH
}

// mouseState turns raw tcell mouse reports into pointer events. tcell has
// no click event, so a click is a Button1 release.
type mouseState struct {
	tracker *pointer.Tracker
	down    bool
}

func (m *mouseState) translate(col, row int, pressed bool) []companion.Event {
	if m.tracker == nil {
		m.tracker = pointer.NewTracker(config.Tap.MaxDuration, config.Tap.MaxTravel)
	}
	events, _ := m.tracker.Update(pointer.Frame{
		Cursor:  cellCenter(col, row),
		MouseUp: m.down && !pressed,
	}, time.Now())
	m.down = pressed
	return events
}

var (
	styleAnchor = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	stylePet    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// petArt returns the sprite rows for a pose, facing right. Left-facing
// sprites are mirrored by mirrorArt.
func petArt(species companion.Species, state companion.BehaviorState) []string {
	eyes := "o.o"
	if state == companion.Sleeping {
		eyes = "-.-"
	}
	switch species {
	case companion.Cat:
		feet := " > ^ <"
		if state == companion.Walking || state == companion.Running {
			feet = " /   \\"
		}
		return []string{
			" /\\_/\\",
			"( " + eyes + " )~",
			feet,
		}
	default:
		feet := "o(\")(\")"
		if state == companion.Walking || state == companion.Running {
			feet = " (\") (\")"
		}
		return []string{
			" (\\(\\",
			" (" + eyes + ")",
			feet,
		}
	}
}

var mirrorRunes = map[rune]rune{
	'(': ')', ')': '(', '/': '\\', '\\': '/', '<': '>', '>': '<',
}

func mirrorArt(rows []string) []string {
	width := 0
	for _, r := range rows {
		width = max(width, len([]rune(r)))
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		rs := []rune(r + strings.Repeat(" ", width-len([]rune(r))))
		for l, h := 0, len(rs)-1; l < h; l, h = l+1, h-1 {
			rs[l], rs[h] = rs[h], rs[l]
		}
		for j, c := range rs {
			if m, ok := mirrorRunes[c]; ok {
				rs[j] = m
			}
		}
		out[i] = strings.TrimRight(string(rs), " ")
	}
	return out
}

func putString(s tcell.Screen, col, row int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(col+i, row, r, nil, style)
	}
}

func drawBox(s tcell.Screen, r companion.Rect, label string) {
	c0, r0 := pixelToCell(companion.Vec{X: r.X, Y: r.Y})
	c1, r1 := pixelToCell(companion.Vec{X: r.X + r.W - 1, Y: r.Y + r.H - 1})
	for c := c0; c <= c1; c++ {
		s.SetContent(c, r0, tcell.RuneHLine, nil, styleAnchor)
		s.SetContent(c, r1, tcell.RuneHLine, nil, styleAnchor)
	}
	for rr := r0; rr <= r1; rr++ {
		s.SetContent(c0, rr, tcell.RuneVLine, nil, styleAnchor)
		s.SetContent(c1, rr, tcell.RuneVLine, nil, styleAnchor)
	}
	s.SetContent(c0, r0, tcell.RuneULCorner, nil, styleAnchor)
	s.SetContent(c1, r0, tcell.RuneURCorner, nil, styleAnchor)
	s.SetContent(c0, r1, tcell.RuneLLCorner, nil, styleAnchor)
	s.SetContent(c1, r1, tcell.RuneLRCorner, nil, styleAnchor)
	if r1 > r0+1 {
		putString(s, c0+1, r0+1, label, styleAnchor)
	}
}

func (a *app) draw() {
	a.mu.Lock()
	vp := a.viewport
	snap := a.latest
	mounted := a.mounted
	species := a.species
	a.mu.Unlock()

	s := a.screen
	s.Clear()

	for _, region := range a.hub.Regions {
		drawBox(s, region.Resolve(vp), region.Label)
	}

	status := fmt.Sprintf("pet off  species %s  [p] pet  [s] species  [q] quit", species)
	if mounted {
		col, row := pixelToCell(snap.Position)
		rows := petArt(species, snap.State)
		if snap.Facing == companion.Left {
			rows = mirrorArt(rows)
		}
		switch snap.State {
		case companion.Sleeping:
			putString(s, col+7, row-1, "z", stylePet)
		case companion.Playing:
			row--
		case companion.Eating:
			putString(s, col+8, row+len(rows)-1, "\\_/", stylePet)
		}
		for i, line := range rows {
			putString(s, col, row+i, line, stylePet)
		}
		status = fmt.Sprintf("%-8s %-9s %s  speed %4.1f  [p] pet  [s] species  [q] quit",
			snap.State, snap.Mode, species, snap.Speed)
	}

	_, rows := s.Size()
	putString(s, 0, rows-1, status, styleStatus)
	s.Show()
}

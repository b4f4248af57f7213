package twig

import (
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
)

// Key identifies a non-character key. Character keys use KeyRune with the
// character in Event.Rune.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
)

var keyNames = map[string]Key{
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"space":     KeySpace,
	"enter":     KeyEnter,
	"escape":    KeyEscape,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
}

// ebitenKeyEvent converts an ebiten key to an Event. Keys without a mapping
// are dropped.
func ebitenKeyEvent(t EventType, k ebiten.Key) (Event, bool) {
	e := Event{Type: t}
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		e.Key, e.Rune = KeyRune, 'a'+rune(k-ebiten.KeyA)
		return e, true
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		e.Key, e.Rune = KeyRune, '0'+rune(k-ebiten.KeyDigit0)
		return e, true
	}
	switch k {
	case ebiten.KeyArrowUp:
		e.Key = KeyUp
	case ebiten.KeyArrowDown:
		e.Key = KeyDown
	case ebiten.KeyArrowLeft:
		e.Key = KeyLeft
	case ebiten.KeyArrowRight:
		e.Key = KeyRight
	case ebiten.KeySpace:
		e.Key = KeySpace
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		e.Key = KeyEnter
	case ebiten.KeyEscape:
		e.Key = KeyEscape
	case ebiten.KeyTab:
		e.Key = KeyTab
	case ebiten.KeyBackspace:
		e.Key = KeyBackspace
	default:
		return Event{}, false
	}
	return e, true
}

// terminalKeyEvent converts a tcell key to an Event. Escape and Ctrl-C
// become EventQuit.
func terminalKeyEvent(k tcell.Key, r rune) (Event, bool) {
	e := Event{Type: EventKeyDown}
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Event{Type: EventQuit}, true
	case tcell.KeyRune:
		if r == ' ' {
			e.Key = KeySpace
		} else {
			e.Key, e.Rune = KeyRune, r
		}
	case tcell.KeyUp:
		e.Key = KeyUp
	case tcell.KeyDown:
		e.Key = KeyDown
	case tcell.KeyLeft:
		e.Key = KeyLeft
	case tcell.KeyRight:
		e.Key = KeyRight
	case tcell.KeyEnter:
		e.Key = KeyEnter
	case tcell.KeyTab:
		e.Key = KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.Key = KeyBackspace
	default:
		return Event{}, false
	}
	return e, true
}

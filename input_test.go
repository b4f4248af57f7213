package twig

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEbitenKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		key  ebiten.Key
		want Event
		ok   bool
	}{
		{"letter a", ebiten.KeyA, Event{Type: EventKeyDown, Key: KeyRune, Rune: 'a'}, true},
		{"letter z", ebiten.KeyZ, Event{Type: EventKeyDown, Key: KeyRune, Rune: 'z'}, true},
		{"digit 0", ebiten.KeyDigit0, Event{Type: EventKeyDown, Key: KeyRune, Rune: '0'}, true},
		{"digit 9", ebiten.KeyDigit9, Event{Type: EventKeyDown, Key: KeyRune, Rune: '9'}, true},
		{"up", ebiten.KeyArrowUp, Event{Type: EventKeyDown, Key: KeyUp}, true},
		{"down", ebiten.KeyArrowDown, Event{Type: EventKeyDown, Key: KeyDown}, true},
		{"left", ebiten.KeyArrowLeft, Event{Type: EventKeyDown, Key: KeyLeft}, true},
		{"right", ebiten.KeyArrowRight, Event{Type: EventKeyDown, Key: KeyRight}, true},
		{"space", ebiten.KeySpace, Event{Type: EventKeyDown, Key: KeySpace}, true},
		{"enter", ebiten.KeyEnter, Event{Type: EventKeyDown, Key: KeyEnter}, true},
		{"numpad enter", ebiten.KeyNumpadEnter, Event{Type: EventKeyDown, Key: KeyEnter}, true},
		{"escape", ebiten.KeyEscape, Event{Type: EventKeyDown, Key: KeyEscape}, true},
		{"tab", ebiten.KeyTab, Event{Type: EventKeyDown, Key: KeyTab}, true},
		{"backspace", ebiten.KeyBackspace, Event{Type: EventKeyDown, Key: KeyBackspace}, true},
		{"unmapped", ebiten.KeyF1, Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ebitenKeyEvent(EventKeyDown, tt.key)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ebitenKeyEvent(%v) = %+v, %v; want %+v, %v", tt.key, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestEbitenKeyEventRelease(t *testing.T) {
	got, ok := ebitenKeyEvent(EventKeyUp, ebiten.KeyArrowLeft)
	if !ok || got.Type != EventKeyUp || got.Key != KeyLeft {
		t.Errorf("got %+v, %v", got, ok)
	}
}

func TestKeyNamesRoundTrip(t *testing.T) {
	for name, k := range keyNames {
		got, r, ok := parseKey(name)
		if !ok || got != k || r != 0 {
			t.Errorf("parseKey(%q) = %v, %q, %v; want %v", name, got, r, ok, k)
		}
	}
}

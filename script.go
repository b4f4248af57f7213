package twig

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected key events across frames, for driving a game
// without a keyboard. Attach it to a Loop with SetScript.
//
// Actions are "key_down", "key_up", "press" (down then up on the next
// frame), "wait" (for Frames frames), "screenshot" (saved under Label) and
// "quit". Keys are named ("up", "space", "escape", ...) or given as a
// single character.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("twig: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("twig: parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "key_down", "key_up", "press":
			if _, _, ok := parseKey(st.Key); !ok {
				return nil, fmt.Errorf("twig: parse script: step %d: unknown key %q", i, st.Key)
			}
		case "wait", "quit", "screenshot":
		default:
			return nil, fmt.Errorf("twig: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// parseKey maps a key name or single character to a Key and rune.
func parseKey(name string) (Key, rune, bool) {
	if k, ok := keyNames[name]; ok {
		return k, 0, true
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return KeyRune, r, true
	}
	return KeyUnknown, 0, false
}

// step advances the script by one frame. Called from Loop.Frame.
func (s *Script) step(l *Loop) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(l.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "screenshot":
		l.Screenshot(st.Label)
	case "key_down":
		l.InjectKeyDown(st.Key)
	case "key_up":
		l.InjectKeyUp(st.Key)
	case "press":
		l.InjectPress(st.Key)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		l.InjectQuit()
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(l.injectQueue) == 0 {
		s.done = true
	}
}

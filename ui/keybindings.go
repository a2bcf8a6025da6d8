package ui

import (
	"github.com/gdamore/tcell/v2"
)

// KeyAction represents an action that can be triggered by keybindings
type KeyAction struct {
	name    string
	handler func()
}

// KeyBindingManager maps special keys, runes and two-rune sequences (like
// 'gg') to actions and dispatches key events.
type KeyBindingManager struct {
	bindings  map[tcell.Key]KeyAction
	runeMap   map[rune]KeyAction
	sequences map[string]KeyAction
	pending   rune
}

// NewKeyBindingManager creates a new key binding manager
func NewKeyBindingManager() *KeyBindingManager {
	return &KeyBindingManager{
		bindings:  make(map[tcell.Key]KeyAction),
		runeMap:   make(map[rune]KeyAction),
		sequences: make(map[string]KeyAction),
	}
}

// RegisterKeyBinding registers an action for special keys and/or runes.
func (km *KeyBindingManager) RegisterKeyBinding(action KeyAction, keys []tcell.Key, runes []rune) {
	for _, key := range keys {
		km.bindings[key] = action
	}
	for _, r := range runes {
		km.runeMap[r] = action
	}
}

// RegisterSequence registers a two-rune sequence like "gg".
func (km *KeyBindingManager) RegisterSequence(seq string, action KeyAction) {
	km.sequences[seq] = action
}

// HandleKey handles a keyboard event and returns true if it was consumed.
func (km *KeyBindingManager) HandleKey(event *tcell.EventKey) bool {
	if event.Key() != tcell.KeyRune {
		km.pending = 0
		if action, ok := km.bindings[event.Key()]; ok {
			action.handler()
			return true
		}
		return false
	}

	r := event.Rune()

	if km.pending != 0 {
		seq := string([]rune{km.pending, r})
		km.pending = 0
		if action, ok := km.sequences[seq]; ok {
			action.handler()
			return true
		}
		// fall through: the second rune may be a standalone binding
	}

	// a rune that starts a registered sequence is held back
	for seq := range km.sequences {
		if []rune(seq)[0] == r {
			km.pending = r
			return true
		}
	}

	if action, ok := km.runeMap[r]; ok {
		action.handler()
		return true
	}
	return false
}

// ResetPending resets the pending key sequence
func (km *KeyBindingManager) ResetPending() {
	km.pending = 0
}

package recall

import "github.com/harrison/pxhist/internal/config"

// handleKey dispatches a decoded keystroke to the mode-specific handler,
// mirroring original_source/src/recall/tui.rs's handle_key/
// handle_key_emacs/handle_key_vim_insert/handle_key_vim_normal split: a
// shared set of navigation/selection bindings works in every mode, and
// each mode layers its own text-editing bindings on top.
func (s *state) handleKey(ev keyEvent) action {
	switch s.keymapMode {
	case config.ModeVimInsert:
		return s.handleKeyVimInsert(ev)
	case config.ModeVimNormal:
		return s.handleKeyVimNormal(ev)
	default:
		return s.handleKeyEmacs(ev)
	}
}

// handleCommonKey processes bindings shared across every keymap mode.
// The second return value is false when ev isn't a common binding, so
// the caller can fall through to its own mode-specific handling.
func (s *state) handleCommonKey(ev keyEvent) (action, bool) {
	switch {
	case ev.key == keyEnter:
		return actionSelect, true
	case ev.key == keyTab:
		return actionEdit, true
	case ev.key == keyChar && ev.char == 'c' && ev.ctrl:
		return actionCancel, true
	case ev.key == keyChar && ev.char == 'r' && ev.ctrl:
		s.moveSelectionUp()
		return actionContinue, true
	case ev.key == keyUp:
		s.moveSelectionUp()
		return actionContinue, true
	case ev.key == keyDown:
		s.moveSelectionDown()
		return actionContinue, true
	case ev.key == keyPageUp:
		s.pageUp()
		return actionContinue, true
	case ev.key == keyPageDown:
		s.pageDown()
		return actionContinue, true
	case ev.key == keyChar && ev.char >= '1' && ev.char <= '9' && ev.alt:
		num := int(ev.char - '0')
		target := s.selectedIndex + (num - 1)
		if target < len(s.results) {
			s.selectedIndex = target
			return actionSelect, true
		}
		return actionContinue, true
	case ev.key == keyChar && ev.char == 'h' && ev.ctrl:
		s.toggleHostFilter()
		return actionContinue, true
	default:
		return actionContinue, false
	}
}

func (s *state) handleKeyEmacs(ev keyEvent) action {
	if a, handled := s.handleCommonKey(ev); handled {
		return a
	}

	switch {
	case ev.key == keyEsc:
		return actionCancel
	case ev.key == keyChar && ev.char == 'p' && ev.ctrl:
		s.moveSelectionUp()
	case ev.key == keyChar && ev.char == 'n' && ev.ctrl:
		s.moveSelectionDown()
	case ev.key == keyBackspace:
		s.deleteCharBeforeCursor()
	case ev.key == keyDelete:
		s.deleteCharAtCursor()
	case ev.key == keyLeft:
		s.moveCursorLeft()
	case ev.key == keyRight:
		s.moveCursorRight()
	case ev.key == keyHome, ev.key == keyChar && ev.char == 'a' && ev.ctrl:
		s.cursorPosition = 0
	case ev.key == keyEnd, ev.key == keyChar && ev.char == 'e' && ev.ctrl:
		s.cursorPosition = len(s.query)
	case ev.key == keyChar && ev.char == 'u' && ev.ctrl:
		s.deleteToLineStart()
	case ev.key == keyChar && ev.char == 'w' && ev.ctrl:
		s.deleteWordBeforeCursor()
	case ev.key == keyChar:
		s.insertChar(ev.char)
	}
	return actionContinue
}

func (s *state) handleKeyVimInsert(ev keyEvent) action {
	if a, handled := s.handleCommonKey(ev); handled {
		return a
	}

	switch {
	case ev.key == keyEsc:
		s.keymapMode = config.ModeVimNormal
		if s.cursorPosition > 0 {
			s.cursorPosition--
		}
	case ev.key == keyBackspace:
		s.deleteCharBeforeCursor()
	case ev.key == keyDelete:
		s.deleteCharAtCursor()
	case ev.key == keyLeft:
		s.moveCursorLeft()
	case ev.key == keyRight:
		s.moveCursorRight()
	case ev.key == keyHome:
		s.cursorPosition = 0
	case ev.key == keyEnd:
		s.cursorPosition = len(s.query)
	case ev.key == keyChar:
		s.insertChar(ev.char)
	}
	return actionContinue
}

func (s *state) handleKeyVimNormal(ev keyEvent) action {
	if a, handled := s.handleCommonKey(ev); handled {
		return a
	}

	switch {
	case ev.key == keyEsc:
		return actionCancel
	case ev.key == keyChar && ev.char == 'j':
		s.moveSelectionDown()
	case ev.key == keyChar && ev.char == 'k':
		s.moveSelectionUp()
	case ev.key == keyChar && ev.char == 'h', ev.key == keyLeft:
		s.moveCursorLeft()
	case ev.key == keyChar && ev.char == 'l', ev.key == keyRight:
		s.moveCursorRight()
	case ev.key == keyChar && ev.char == '0', ev.key == keyHome:
		s.cursorPosition = 0
	case ev.key == keyChar && ev.char == '$', ev.key == keyEnd:
		s.cursorPosition = saturatingSub(len(s.query), 1)
	case ev.key == keyChar && ev.char == 'w':
		s.moveCursorWordForward()
	case ev.key == keyChar && ev.char == 'b':
		s.moveCursorWordBackward()
	case ev.key == keyChar && ev.char == 'i':
		s.keymapMode = config.ModeVimInsert
	case ev.key == keyChar && ev.char == 'a':
		s.keymapMode = config.ModeVimInsert
		if s.cursorPosition < len(s.query) {
			s.cursorPosition++
		}
	case ev.key == keyChar && ev.char == 'A':
		s.keymapMode = config.ModeVimInsert
		s.cursorPosition = len(s.query)
	case ev.key == keyChar && ev.char == 'I':
		s.keymapMode = config.ModeVimInsert
		s.cursorPosition = 0
	case ev.key == keyChar && ev.char == 'x':
		s.deleteCharAtCursor()
	case ev.key == keyChar && ev.char == 'X':
		s.deleteCharBeforeCursor()
	}
	return actionContinue
}

package recall

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harrison/pxhist/internal/config"
)

func TestHandleKeyEmacsInsertsChar(t *testing.T) {
	st := newTestState(t)
	a := st.handleKey(keyEvent{key: keyChar, char: 'x'})
	require.Equal(t, actionContinue, a)
	require.Equal(t, "x", st.queryString())
}

func TestHandleKeyEmacsEnterSelects(t *testing.T) {
	st := newTestState(t)
	a := st.handleKey(keyEvent{key: keyEnter})
	require.Equal(t, actionSelect, a)
}

func TestHandleKeyEmacsTabEdits(t *testing.T) {
	st := newTestState(t)
	a := st.handleKey(keyEvent{key: keyTab})
	require.Equal(t, actionEdit, a)
}

func TestHandleKeyEmacsEscCancels(t *testing.T) {
	st := newTestState(t)
	a := st.handleKey(keyEvent{key: keyEsc})
	require.Equal(t, actionCancel, a)
}

func TestHandleKeyEmacsCtrlCCancels(t *testing.T) {
	st := newTestState(t)
	a := st.handleKey(keyEvent{key: keyChar, char: 'c', ctrl: true})
	require.Equal(t, actionCancel, a)
}

func TestHandleKeyVimNormalEscCancels(t *testing.T) {
	st := newTestState(t)
	st.keymapMode = config.ModeVimNormal
	a := st.handleKey(keyEvent{key: keyEsc})
	require.Equal(t, actionCancel, a)
}

func TestHandleKeyVimInsertEscSwitchesToNormal(t *testing.T) {
	st := newTestState(t)
	st.keymapMode = config.ModeVimInsert
	a := st.handleKey(keyEvent{key: keyEsc})
	require.Equal(t, actionContinue, a)
	require.Equal(t, config.ModeVimNormal, st.keymapMode)
}

func TestHandleKeyVimNormalJKNavigate(t *testing.T) {
	st := newTestState(t)
	st.keymapMode = config.ModeVimNormal
	st.handleKey(keyEvent{key: keyChar, char: 'k'})
	require.Equal(t, 1, st.selectedIndex)
	st.handleKey(keyEvent{key: keyChar, char: 'j'})
	require.Equal(t, 0, st.selectedIndex)
}

func TestHandleKeyVimNormalIEntersInsertMode(t *testing.T) {
	st := newTestState(t)
	st.keymapMode = config.ModeVimNormal
	st.handleKey(keyEvent{key: keyChar, char: 'i'})
	require.Equal(t, config.ModeVimInsert, st.keymapMode)
}

func TestHandleKeyAltDigitQuickSelects(t *testing.T) {
	st := newTestState(t)
	a := st.handleKey(keyEvent{key: keyChar, char: '1', alt: true})
	require.Equal(t, actionSelect, a)
	require.Equal(t, 0, st.selectedIndex)
}

func TestHandleKeyCtrlHTogglesHostFilter(t *testing.T) {
	st := newTestState(t)
	before := st.hostFilter
	st.handleKey(keyEvent{key: keyChar, char: 'h', ctrl: true})
	require.NotEqual(t, before, st.hostFilter)
}

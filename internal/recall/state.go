package recall

import (
	"context"
	"unicode"

	"github.com/harrison/pxhist/internal/config"
	"github.com/harrison/pxhist/internal/search"
)

const scrollMargin = 5

// action is what a handled keystroke resolves to.
type action int

const (
	actionContinue action = iota
	actionSelect
	actionEdit
	actionCancel
)

// state holds the picker's full in-memory session: the current query,
// cursor and selection positions, and the entries/ranked results backing
// the visible list. One state is owned by exactly one Session for the
// session's lifetime.
type state struct {
	engine           *search.Engine
	filterMode       search.Scope
	hostFilter       search.HostFilter
	entries          []search.Entry
	results          []search.Result
	query            []rune
	cursorPosition   int
	selectedIndex    int
	scrollOffset     int
	keymapMode       config.KeymapMode
	showPreview      bool
	previewConfig    config.PreviewConfig
	currentHostname  string
	workingDirectory string
	termHeight       int
}

func newState(engine *search.Engine, filterMode search.Scope, initialQuery string, cfg *config.Config, currentHostname, workingDirectory string) (*state, error) {
	s := &state{
		engine:           engine,
		filterMode:       filterMode,
		hostFilter:       search.HostFilterThisHost,
		query:            []rune(initialQuery),
		keymapMode:       cfg.Recall.InitialKeymapMode(),
		showPreview:      cfg.Recall.ShowPreview,
		previewConfig:    cfg.Recall.Preview,
		currentHostname:  currentHostname,
		workingDirectory: workingDirectory,
	}
	s.cursorPosition = len(s.query)

	if err := s.reload(context.Background()); err != nil {
		return nil, err
	}
	s.adjustScrollForSelection()
	return s, nil
}

func (s *state) queryString() string {
	return string(s.query)
}

func (s *state) reload(ctx context.Context) error {
	entries, err := s.engine.LoadEntries(ctx, s.filterMode, s.hostFilter, s.queryString())
	if err != nil {
		return err
	}
	s.entries = entries
	s.results = search.Rank(entries, s.queryString())

	if s.selectedIndex >= len(s.results) {
		s.selectedIndex = 0
	}
	s.adjustScrollForSelection()
	return nil
}

func (s *state) toggleHostFilter() {
	if s.hostFilter == search.HostFilterThisHost {
		s.hostFilter = search.HostFilterAny
	} else {
		s.hostFilter = search.HostFilterThisHost
	}
	_ = s.reload(context.Background())
}

// resultsHeight returns how many rows the results area occupies, leaving
// two rows for the input/help lines and (when enabled) five more for the
// preview pane.
func (s *state) resultsHeight() int {
	base := s.termHeight - 2
	if base < 0 {
		base = 0
	}
	if s.showPreview {
		base -= previewHeight
		if base < 0 {
			base = 0
		}
	}
	return base
}

// adjustScrollForSelection keeps the selected row within view, scrolling
// by the minimum amount needed once the selection gets within
// scrollMargin rows of either edge. Entry 0 (most recent) renders at the
// bottom of the results area; scrollOffset is the entry index shown at
// the bottom of the visible window.
func (s *state) adjustScrollForSelection() {
	resultsHeight := s.resultsHeight()
	if resultsHeight == 0 || len(s.results) == 0 {
		s.scrollOffset = 0
		return
	}

	viewBottom := s.scrollOffset
	viewTop := viewBottom + resultsHeight - 1
	if viewTop < 0 {
		viewTop = 0
	}

	if s.selectedIndex < viewBottom+scrollMargin {
		s.scrollOffset = saturatingSub(s.selectedIndex, scrollMargin)
	} else if s.selectedIndex > saturatingSub(viewTop, scrollMargin) {
		newViewTop := s.selectedIndex + scrollMargin
		s.scrollOffset = saturatingSub(newViewTop, resultsHeight-1)
	}

	maxScroll := saturatingSub(len(s.results), resultsHeight)
	if s.scrollOffset > maxScroll {
		s.scrollOffset = maxScroll
	}
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

func (s *state) moveSelectionUp() {
	if s.selectedIndex+1 < len(s.results) {
		s.selectedIndex++
		s.adjustScrollForSelection()
	}
}

func (s *state) moveSelectionDown() {
	if s.selectedIndex > 0 {
		s.selectedIndex--
		s.adjustScrollForSelection()
	}
}

func (s *state) pageUp() {
	page := saturatingSub(s.resultsHeight(), 2)
	maxIndex := saturatingSub(len(s.results), 1)
	s.selectedIndex += page
	if s.selectedIndex > maxIndex {
		s.selectedIndex = maxIndex
	}
	s.adjustScrollForSelection()
}

func (s *state) pageDown() {
	page := saturatingSub(s.resultsHeight(), 2)
	s.selectedIndex = saturatingSub(s.selectedIndex, page)
	s.adjustScrollForSelection()
}

func (s *state) moveCursorLeft() {
	if s.cursorPosition > 0 {
		s.cursorPosition--
	}
}

func (s *state) moveCursorRight() {
	if s.cursorPosition < len(s.query) {
		s.cursorPosition++
	}
}

func (s *state) moveCursorWordForward() {
	pos := s.cursorPosition
	for pos < len(s.query) && !unicode.IsSpace(s.query[pos]) {
		pos++
	}
	for pos < len(s.query) && unicode.IsSpace(s.query[pos]) {
		pos++
	}
	s.cursorPosition = pos
}

func (s *state) moveCursorWordBackward() {
	pos := saturatingSub(s.cursorPosition, 1)
	for pos > 0 && unicode.IsSpace(s.query[pos]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(s.query[pos-1]) {
		pos--
	}
	s.cursorPosition = pos
}

func (s *state) insertChar(c rune) {
	s.query = append(s.query[:s.cursorPosition], append([]rune{c}, s.query[s.cursorPosition:]...)...)
	s.cursorPosition++
	_ = s.reload(context.Background())
}

func (s *state) deleteCharBeforeCursor() {
	if s.cursorPosition > 0 {
		s.query = append(s.query[:s.cursorPosition-1], s.query[s.cursorPosition:]...)
		s.cursorPosition--
		_ = s.reload(context.Background())
	}
}

func (s *state) deleteCharAtCursor() {
	if s.cursorPosition < len(s.query) {
		s.query = append(s.query[:s.cursorPosition], s.query[s.cursorPosition+1:]...)
		_ = s.reload(context.Background())
	}
}

func (s *state) deleteToLineStart() {
	s.query = append([]rune{}, s.query[s.cursorPosition:]...)
	s.cursorPosition = 0
	_ = s.reload(context.Background())
}

func (s *state) deleteWordBeforeCursor() {
	if s.cursorPosition == 0 {
		return
	}
	wordStart := s.cursorPosition
	for wordStart > 0 && unicode.IsSpace(s.query[wordStart-1]) {
		wordStart--
	}
	for wordStart > 0 && !unicode.IsSpace(s.query[wordStart-1]) {
		wordStart--
	}
	s.query = append(append([]rune{}, s.query[:wordStart]...), s.query[s.cursorPosition:]...)
	s.cursorPosition = wordStart
	_ = s.reload(context.Background())
}

func (s *state) selectedResult() *search.Result {
	if s.selectedIndex < 0 || s.selectedIndex >= len(s.results) {
		return nil
	}
	return &s.results[s.selectedIndex]
}

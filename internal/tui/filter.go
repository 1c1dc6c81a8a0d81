package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// filterState provides generic filter-as-you-type functionality for list views.
type filterState[T any] struct {
	items    []T // full item list (set externally)
	filtered []T // nil when not filtering
	active   bool
	input    textinput.Model
	cursor   int
	getName  func(T) string // returns the filterable name for an item
	getID    func(T) int    // returns the selectable ID for an item
}

// filterResult is returned by updateFilter to signal actions to the caller.
type filterResult int

const (
	filterNone     filterResult = iota
	filterSelected              // user pressed Enter on a filtered item
	filterExited                // user pressed Escape to clear filter
)

// startFilter begins a new filter session over all items.
func (f *filterState[T]) startFilter() tea.Cmd {
	f.active = true
	f.input = newFilterInput()
	f.input.Focus()
	f.cursor = 0
	f.filtered = make([]T, len(f.items))
	copy(f.filtered, f.items)
	return textinput.Blink
}

// clearFilter exits filter mode and resets state.
func (f *filterState[T]) clearFilter() {
	f.active = false
	f.filtered = nil
	f.input.SetValue("")
	f.cursor = 0
}

// displayItems returns the filtered list if active, otherwise the full list.
func (f *filterState[T]) displayItems() []T {
	if f.active || f.filtered != nil {
		return f.filtered
	}
	return f.items
}

// selectedID returns the ID of the item at the current cursor position, or nil.
func (f *filterState[T]) selectedID() *int {
	items := f.displayItems()
	if f.cursor >= 0 && f.cursor < len(items) {
		id := f.getID(items[f.cursor])
		return &id
	}
	return nil
}

// moveCursorUp moves the cursor one position up, clamping at 0.
func (f *filterState[T]) moveCursorUp() {
	if f.cursor > 0 {
		f.cursor--
	}
}

// moveCursorDown moves the cursor one position down, clamping at the last item.
func (f *filterState[T]) moveCursorDown() {
	if f.cursor < len(f.displayItems())-1 {
		f.cursor++
	}
}

// recompute rebuilds the filtered list for the current query and clamps
// the cursor into it.
func (f *filterState[T]) recompute() {
	query := strings.ToLower(f.input.Value())
	f.filtered = f.filtered[:0]
	for _, item := range f.items {
		if strings.Contains(strings.ToLower(f.getName(item)), query) {
			f.filtered = append(f.filtered, item)
		}
	}
	if f.cursor >= len(f.filtered) {
		f.cursor = max(0, len(f.filtered)-1)
	}
}

// updateFilter handles input while filter mode is active. It reports the
// resulting action and whether the cursor moved; the caller is
// responsible for reloading thumbnails after cursor changes.
func (f *filterState[T]) updateFilter(msg tea.Msg, keys KeyMap) (filterResult, bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Escape):
			f.clearFilter()
			return filterExited, true, nil
		case key.Matches(msg, keys.Enter):
			return filterSelected, true, nil
		case msg.String() == "up":
			f.moveCursorUp()
			return filterNone, true, nil
		case msg.String() == "down":
			f.moveCursorDown()
			return filterNone, true, nil
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.recompute()
	return filterNone, false, cmd
}

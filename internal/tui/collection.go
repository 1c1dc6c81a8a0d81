package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	bgg "github.com/arnauldvm/boardgamegeek"

	"github.com/arnauldvm/boardgamegeek/internal/config"
)

type collectionState int

const (
	collectionStateInput collectionState = iota
	collectionStateLoading
	collectionStateResults
	collectionStateError
)

type collectionModel struct {
	state     collectionState
	styles    Styles
	keys      KeyMap
	config    *config.Config
	input     textinput.Model
	errMsg    string
	selected  *int // Selected game ID for detail view
	wantsBack bool
	wantsMenu bool

	allItems []*bgg.CollectionBoardGame // full fetch, before status filtering
	statuses map[CollectionStatus]bool  // active statuses; empty shows everything

	picking    bool // status picker overlay open
	pickCursor int

	filter filterState[*bgg.CollectionBoardGame]

	img listImageState
}

// collectionResultMsg is sent when collection results are received.
type collectionResultMsg struct {
	items []*bgg.CollectionBoardGame
	err   error
}

func newCollectionModel(cfg *config.Config, styles Styles, keys KeyMap, imageEnabled bool, cache *imageCache) collectionModel {
	ti := textinput.New()
	ti.Placeholder = "Enter BGG username..."
	ti.CharLimit = 64
	ti.Width = 40
	ti.SetValue(cfg.Collection.DefaultUsername)
	ti.Focus()

	statuses := make(map[CollectionStatus]bool)
	for _, k := range cfg.Collection.StatusFilter {
		if s := statusFromConfigKey(k); s >= 0 {
			statuses[s] = true
		}
	}

	return collectionModel{
		state:    collectionStateInput,
		styles:   styles,
		keys:     keys,
		config:   cfg,
		input:    ti,
		statuses: statuses,
		img:      listImageState{enabled: imageEnabled, cache: cache},
		filter: filterState[*bgg.CollectionBoardGame]{
			getName: func(item *bgg.CollectionBoardGame) string { return item.Name },
			getID:   func(item *bgg.CollectionBoardGame) int { return item.ID },
		},
	}
}

func (m collectionModel) loadCollection(client *bgg.Client, username string) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return collectionResultMsg{err: errors.New(errNoToken)}
		}
		items, err := client.GetCollection(context.Background(), username, bgg.CollectionOptions{})
		return collectionResultMsg{items: items, err: err}
	}
}

// applyStatusFilter rebuilds the visible item set from allItems and the
// active statuses. An empty status set shows the whole collection.
func (m *collectionModel) applyStatusFilter() {
	if len(m.statuses) == 0 {
		m.filter.items = m.allItems
	} else {
		items := make([]*bgg.CollectionBoardGame, 0, len(m.allItems))
		for _, item := range m.allItems {
			for s := range m.statuses {
				if itemMatchesStatus(item, s) {
					items = append(items, item)
					break
				}
			}
		}
		m.filter.items = items
	}
	if m.filter.cursor >= len(m.filter.items) {
		m.filter.cursor = max(0, len(m.filter.items)-1)
	}
}

// saveStatusFilter persists the active statuses, in picker order.
func (m collectionModel) saveStatusFilter() {
	keys := make([]string, 0, len(m.statuses))
	for _, s := range allStatuses {
		if m.statuses[s] {
			keys = append(keys, statusConfigKey(s))
		}
	}
	m.config.Collection.StatusFilter = keys
	m.config.Save()
}

func (m collectionModel) currentThumbURL() string {
	items := m.filter.displayItems()
	if m.filter.cursor >= 0 && m.filter.cursor < len(items) {
		return items[m.filter.cursor].Thumbnail
	}
	return ""
}

func (m collectionModel) maybeLoadThumb() (collectionModel, tea.Cmd) {
	cmd := m.img.maybeLoad(m.currentThumbURL())
	return m, cmd
}

func (m collectionModel) Update(msg tea.Msg, client *bgg.Client) (collectionModel, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case collectionStateInput:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, m.keys.Enter):
				username := strings.TrimSpace(m.input.Value())
				if username != "" {
					m.state = collectionStateLoading
					return m, m.loadCollection(client, username)
				}
			case key.Matches(msg, m.keys.Escape):
				m.wantsMenu = true
				return m, nil
			}
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case collectionStateLoading:
		switch msg := msg.(type) {
		case collectionResultMsg:
			if msg.err != nil {
				m.state = collectionStateError
				m.errMsg = msg.err.Error()
			} else {
				m.state = collectionStateResults
				m.allItems = msg.items
				m.filter.cursor = 0
				m.applyStatusFilter()
				m, cmd := m.maybeLoadThumb()
				return m, cmd
			}
		}
		return m, nil

	case collectionStateResults:
		if msg, ok := msg.(listImageMsg); ok {
			m.img.handleLoaded(msg)
			return m, nil
		}

		if m.picking {
			switch msg := msg.(type) {
			case tea.KeyMsg:
				switch {
				case key.Matches(msg, m.keys.Up):
					if m.pickCursor > 0 {
						m.pickCursor--
					}
				case key.Matches(msg, m.keys.Down):
					if m.pickCursor < len(allStatuses)-1 {
						m.pickCursor++
					}
				case key.Matches(msg, m.keys.Enter), msg.String() == " ":
					s := allStatuses[m.pickCursor]
					if m.statuses[s] {
						delete(m.statuses, s)
					} else {
						m.statuses[s] = true
					}
					m.applyStatusFilter()
				case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.StatusFilter):
					m.picking = false
					m.saveStatusFilter()
					m, cmd := m.maybeLoadThumb()
					return m, cmd
				}
			}
			return m, nil
		}

		if m.filter.active {
			result, _, cmd := m.filter.updateFilter(msg, m.keys)
			switch result {
			case filterExited:
				m, thumbCmd := m.maybeLoadThumb()
				return m, thumbCmd
			case filterSelected:
				m.selected = m.filter.selectedID()
				return m, nil
			}
			m, thumbCmd := m.maybeLoadThumb()
			return m, tea.Batch(cmd, thumbCmd)
		}

		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, m.keys.Up):
				if m.filter.cursor > 0 {
					m.filter.cursor--
				}
				m, cmd := m.maybeLoadThumb()
				return m, cmd
			case key.Matches(msg, m.keys.Down):
				if m.filter.cursor < len(m.filter.items)-1 {
					m.filter.cursor++
				}
				m, cmd := m.maybeLoadThumb()
				return m, cmd
			case key.Matches(msg, m.keys.Enter):
				if len(m.filter.items) > 0 {
					id := m.filter.items[m.filter.cursor].ID
					m.selected = &id
				}
			case key.Matches(msg, m.keys.Filter):
				filterCmd := m.filter.startFilter()
				m, thumbCmd := m.maybeLoadThumb()
				return m, tea.Batch(filterCmd, thumbCmd)
			case key.Matches(msg, m.keys.StatusFilter):
				m.picking = true
				m.pickCursor = 0
			case key.Matches(msg, m.keys.User):
				// Change user, back to the username prompt.
				m.state = collectionStateInput
				m.input.Focus()
				m.allItems = nil
				m.filter.items = nil
				m.filter.cursor = 0
				return m, textinput.Blink
			case key.Matches(msg, m.keys.Back):
				m.wantsBack = true
			case key.Matches(msg, m.keys.Escape):
				m.wantsMenu = true
			}
		}
		return m, nil

	case collectionStateError:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, m.keys.Enter):
				// Retry
				m.state = collectionStateInput
				m.input.Focus()
				m.errMsg = ""
				return m, textinput.Blink
			case key.Matches(msg, m.keys.Back):
				m.wantsBack = true
			case key.Matches(msg, m.keys.Escape):
				m.wantsMenu = true
			}
		}
		return m, nil
	}

	return m, nil
}

func (m collectionModel) View(width, height int, selType string, animFrame int) string {
	var b strings.Builder
	var transmit string

	switch m.state {
	case collectionStateInput:
		b.WriteString(m.styles.Title.Render("User Collection"))
		b.WriteString("\n\n")
		b.WriteString("Enter BGG username:\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.Help.Render("Enter: Load Collection  Esc: Menu"))

	case collectionStateLoading:
		b.WriteString(m.styles.Title.Render("User Collection"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Loading.Render("Loading collection..."))
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("(This may take a moment)"))

	case collectionStateResults:
		username := strings.TrimSpace(m.input.Value())
		b.WriteString(m.styles.Title.Render(fmt.Sprintf("%s's Collection", username)))
		if m.filter.active {
			b.WriteString("  Filter: ")
			b.WriteString(m.filter.input.View())
		}
		b.WriteString("\n")

		if m.picking {
			m.writeStatusPicker(&b)
			break
		}

		displayItems := m.filter.displayItems()

		counts := fmt.Sprintf("%d/%d games", len(displayItems), len(m.allItems))
		if note := m.statusNote(); note != "" {
			counts += "  |  " + note
		}
		b.WriteString(m.styles.Subtitle.Render(counts))
		b.WriteString("\n\n")

		if len(displayItems) == 0 {
			b.WriteString(m.styles.Subtitle.Render("No games found."))
			b.WriteString("\n")
		} else {
			listHeight := height
			if HasBorder(m.config.Interface.BorderStyle) {
				listHeight -= BorderHeightOverhead
			}
			start, end := calcListRange(m.filter.cursor, len(displayItems), listHeight, m.config.Interface.ListDensity)

			for i := start; i < end; i++ {
				item := displayItems[i]

				// Show the user's rating if present.
				ratingStr := ""
				if item.Rating > 0 {
					ratingStr = fmt.Sprintf(" %.1f", item.Rating)
				}

				prefix, name := renderListItem(i, m.filter.cursor, item.Name, m.styles, selType, animFrame)
				fmt.Fprintf(&b, "%s%s (%s)%s\n", prefix, name, yearString(item.YearPublished), m.styles.Rating.Render(ratingStr))
			}
		}

		b.WriteString("\n")
		if m.filter.active {
			b.WriteString(m.styles.Help.Render(helpFilterActive))
		} else {
			b.WriteString(m.styles.Help.Render("j/k ↑↓: Navigate  Enter: Detail  /: Filter  s: Status  u: Change User  ?: Help  b: Back  Esc: Menu"))
		}

		transmit = renderImagePanel(&b, m.img.enabled, m.img.placeholder, m.img.transmit, m.img.loading, m.img.hasError)

	case collectionStateError:
		writeErrorView(&b, m.styles, "User Collection", m.errMsg, "Enter: Retry  b: Back  Esc: Menu")
	}

	return transmit + renderView(b.String(), m.styles, width, height, m.config.Interface.BorderStyle)
}

// writeStatusPicker renders the status filter overlay in place of the list.
func (m collectionModel) writeStatusPicker(b *strings.Builder) {
	b.WriteString(m.styles.Subtitle.Render("Status Filter"))
	b.WriteString("\n\n")

	for i, s := range allStatuses {
		cursor := "  "
		style := m.styles.MenuItem
		if i == m.pickCursor {
			cursor = "> "
			style = m.styles.MenuItemFocus
		}

		mark := "[ ]"
		if m.statuses[s] {
			mark = "[x]"
		}
		fmt.Fprintf(b, "%s%s %s\n", cursor, mark, style.Render(statusLabel(s)))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("Space/Enter: Toggle  s/Esc: Apply"))
}

// statusNote summarizes the active statuses for the list header.
func (m collectionModel) statusNote() string {
	if len(m.statuses) == 0 {
		return ""
	}
	labels := make([]string, 0, len(m.statuses))
	for _, s := range allStatuses {
		if m.statuses[s] {
			labels = append(labels, statusLabel(s))
		}
	}
	return strings.Join(labels, ", ")
}

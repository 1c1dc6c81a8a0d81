package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	bgg "github.com/arnauldvm/boardgamegeek"

	"github.com/arnauldvm/boardgamegeek/internal/config"
)

type hotState int

const (
	hotStateLoading hotState = iota
	hotStateResults
	hotStateError
)

type hotModel struct {
	state    hotState
	config   *config.Config
	styles   Styles
	keys     KeyMap
	errMsg   string
	selected *int // Selected game ID for detail view

	filter filterState[bgg.HotItem]

	wantsBack bool
	wantsMenu bool

	img listImageState
}

// hotResultMsg is sent when the hotness list is received.
type hotResultMsg struct {
	items []bgg.HotItem
	err   error
}

func newHotModel(cfg *config.Config, styles Styles, keys KeyMap, imageEnabled bool, cache *imageCache) hotModel {
	return hotModel{
		state:  hotStateLoading,
		config: cfg,
		styles: styles,
		keys:   keys,
		img:    listImageState{enabled: imageEnabled, cache: cache},
		filter: filterState[bgg.HotItem]{
			getName: func(it bgg.HotItem) string { return it.Name },
			getID:   func(it bgg.HotItem) int { return it.ID },
		},
	}
}

func (m hotModel) loadHotItems(client *bgg.Client) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return hotResultMsg{err: errors.New(errNoToken)}
		}
		items, err := client.GetHotItems(context.Background(), "boardgame")
		return hotResultMsg{items: items, err: err}
	}
}

func (m hotModel) currentThumbURL() string {
	items := m.filter.displayItems()
	if m.filter.cursor >= 0 && m.filter.cursor < len(items) {
		return items[m.filter.cursor].Thumbnail
	}
	return ""
}

func (m hotModel) maybeLoadThumb() (hotModel, tea.Cmd) {
	cmd := m.img.maybeLoad(m.currentThumbURL())
	return m, cmd
}

func (m hotModel) Update(msg tea.Msg, client *bgg.Client) (hotModel, tea.Cmd) {
	switch m.state {
	case hotStateLoading:
		switch msg := msg.(type) {
		case hotResultMsg:
			if msg.err != nil {
				m.state = hotStateError
				m.errMsg = msg.err.Error()
			} else {
				m.state = hotStateResults
				m.filter.items = msg.items
				m.filter.cursor = 0
				m, cmd := m.maybeLoadThumb()
				return m, cmd
			}
		}
		return m, nil

	case hotStateResults:
		if msg, ok := msg.(listImageMsg); ok {
			m.img.handleLoaded(msg)
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
			case key.Matches(msg, m.keys.Refresh):
				m.state = hotStateLoading
				m.filter.items = nil
				m.filter.cursor = 0
				return m, m.loadHotItems(client)
			case key.Matches(msg, m.keys.Back):
				m.wantsBack = true
			case key.Matches(msg, m.keys.Escape):
				m.wantsMenu = true
			}
		}
		return m, nil

	case hotStateError:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Refresh):
				m.state = hotStateLoading
				m.errMsg = ""
				return m, m.loadHotItems(client)
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

func (m hotModel) View(width, height int, selType string, animFrame int) string {
	var b strings.Builder
	var transmit string

	switch m.state {
	case hotStateLoading:
		writeLoadingView(&b, m.styles, "Hot Games", "Loading...")

	case hotStateResults:
		b.WriteString(m.styles.Title.Render("Hot Games"))
		if m.filter.active {
			b.WriteString("  Filter: ")
			b.WriteString(m.filter.input.View())
		}
		b.WriteString("\n")

		displayItems := m.filter.displayItems()

		b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("%d/%d trending games", len(displayItems), len(m.filter.items))))
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

				year := item.Year
				if year == "" {
					year = "N/A"
				}

				rankStr := fmt.Sprintf("#%-3d", item.Rank)
				prefix, name := renderListItem(i, m.filter.cursor, item.Name, m.styles, selType, animFrame)
				fmt.Fprintf(&b, "%s%s %s (%s)\n", prefix, m.styles.Rank.Render(rankStr), name, year)
			}
		}

		b.WriteString("\n")
		if m.filter.active {
			b.WriteString(m.styles.Help.Render(helpFilterActive))
		} else {
			b.WriteString(m.styles.Help.Render("j/k ↑↓: Navigate  Enter: Detail  /: Filter  r: Refresh  ?: Help  Esc: Menu"))
		}

		transmit = renderImagePanel(&b, m.img.enabled, m.img.placeholder, m.img.transmit, m.img.loading, m.img.hasError)

	case hotStateError:
		writeErrorView(&b, m.styles, "Hot Games", m.errMsg, "Enter/r: Retry  Esc: Menu")
	}

	return transmit + renderView(b.String(), m.styles, width, height, m.config.Interface.BorderStyle)
}

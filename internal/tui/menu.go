package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	label string
	key   string
	view  View
}

type menuModel struct {
	cursor   int
	items    []menuItem
	styles   Styles
	keys     KeyMap
	hasToken bool
	selected *View
}

func newMenuModel(styles Styles, keys KeyMap, hasToken bool) menuModel {
	return menuModel{
		cursor: 0,
		items: []menuItem{
			{label: "Search Games", key: "1", view: ViewSearchInput},
			{label: "Hot Games", key: "2", view: ViewHot},
			{label: "User Collection", key: "3", view: ViewCollectionInput},
			{label: "Settings", key: "4", view: ViewSettings},
		},
		styles:   styles,
		keys:     keys,
		hasToken: hasToken,
	}
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Enter):
			view := m.items[m.cursor].view
			m.selected = &view
		case key.Matches(msg, m.keys.Search):
			view := ViewSearchInput
			m.selected = &view
		case key.Matches(msg, m.keys.Hot):
			view := ViewHot
			m.selected = &view
		case key.Matches(msg, m.keys.Collect):
			view := ViewCollectionInput
			m.selected = &view
		case key.Matches(msg, m.keys.Settings):
			view := ViewSettings
			m.selected = &view
		}
	}
	return m, nil
}

func (m menuModel) View(width, height int) string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("BGG TUI"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("BoardGameGeek Terminal Client"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := m.styles.MenuItem
		if i == m.cursor {
			cursor = "> "
			style = m.styles.MenuItemFocus
		}

		fmt.Fprintf(&b, "%s[%s] %s\n", cursor, item.key, style.Render(item.label))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  [q] %s\n", m.styles.MenuItem.Render("Quit"))

	if !m.hasToken {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("No API token configured"))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("Open Settings to add one"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("j/k: Navigate  Enter: Select  q: Quit"))

	return centerContent(b.String(), width, height)
}

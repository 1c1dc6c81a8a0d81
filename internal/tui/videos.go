package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	bgg "github.com/arnauldvm/boardgamegeek"

	"github.com/arnauldvm/boardgamegeek/internal/config"
)

// videosModel browses the videos attached to a game. The list arrives with
// the game detail, so there is no loading state here.
type videosModel struct {
	styles   Styles
	keys     KeyMap
	config   *config.Config
	gameName string

	filter filterState[bgg.Video]

	wantsBack bool
	wantsMenu bool
}

func newVideosModel(gameName string, videos []bgg.Video, cfg *config.Config, styles Styles, keys KeyMap) videosModel {
	sorted := make([]bgg.Video, len(videos))
	copy(sorted, videos)
	// Most recent first. Stable keeps payload order for undated entries.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PostDate.After(sorted[j].PostDate)
	})

	return videosModel{
		styles:   styles,
		keys:     keys,
		config:   cfg,
		gameName: gameName,
		filter: filterState[bgg.Video]{
			items:   sorted,
			getName: func(v bgg.Video) string { return v.Name },
			getID:   func(v bgg.Video) int { return v.ID },
		},
	}
}

func (m videosModel) openSelected() {
	items := m.filter.displayItems()
	if m.filter.cursor < 0 || m.filter.cursor >= len(items) {
		return
	}
	if link := items[m.filter.cursor].Link; link != "" {
		openBrowser(link)
	}
}

func (m videosModel) Update(msg tea.Msg) (videosModel, tea.Cmd) {
	if m.filter.active {
		result, _, cmd := m.filter.updateFilter(msg, m.keys)
		if result == filterSelected {
			m.openSelected()
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.filter.cursor > 0 {
				m.filter.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.filter.cursor < len(m.filter.items)-1 {
				m.filter.cursor++
			}
		case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Open):
			m.openSelected()
		case key.Matches(msg, m.keys.Filter):
			return m, m.filter.startFilter()
		case key.Matches(msg, m.keys.Back):
			m.wantsBack = true
		case key.Matches(msg, m.keys.Escape):
			m.wantsMenu = true
		}
	}
	return m, nil
}

func (m videosModel) View(width, height int, selType string, animFrame int) string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(fmt.Sprintf("%s - Videos", m.gameName)))
	if m.filter.active {
		b.WriteString("  Filter: ")
		b.WriteString(m.filter.input.View())
	}
	b.WriteString("\n")

	displayItems := m.filter.displayItems()

	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("%d/%d videos", len(displayItems), len(m.filter.items))))
	b.WriteString("\n\n")

	if len(displayItems) == 0 {
		b.WriteString(m.styles.Subtitle.Render("No videos found."))
		b.WriteString("\n")
	} else {
		listHeight := height
		if HasBorder(m.config.Interface.BorderStyle) {
			listHeight -= BorderHeightOverhead
		}
		start, end := calcListRangeMultiLine(m.filter.cursor, len(displayItems), listHeight, m.config.Interface.ListDensity, 2)

		hasBorder := HasBorder(m.config.Interface.BorderStyle)
		contentWidth := listContentWidth(m.config.Display.ListWidth, width, hasBorder)
		maxTitleW := contentWidth - 2 // prefix
		if maxTitleW < 10 {
			maxTitleW = 10
		}

		for i := start; i < end; i++ {
			video := displayItems[i]

			title := truncateName(video.Name, maxTitleW)
			prefix, rendered := renderListItem(i, m.filter.cursor, title, m.styles, selType, animFrame)
			b.WriteString(prefix)
			b.WriteString(rendered)
			b.WriteString("\n")

			b.WriteString(m.styles.Subtitle.Render("    " + videoMeta(video, m.config.Interface.DateFormat)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.filter.active {
		b.WriteString(m.styles.Help.Render("↑/↓: Navigate  Enter: Watch  Esc: Clear filter"))
	} else {
		b.WriteString(m.styles.Help.Render("j/k ↑↓: Navigate  Enter/o: Watch  /: Filter  b: Back  Esc: Menu"))
	}

	return renderView(b.String(), m.styles, width, height, m.config.Interface.BorderStyle)
}

// videoMeta builds the second list line for a video: category, language,
// uploader and upload date, skipping whatever is missing.
func videoMeta(v bgg.Video, dateFormat string) string {
	var parts []string
	for _, p := range []string{v.Category, v.Language, v.Uploader} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if !v.PostDate.IsZero() {
		parts = append(parts, formatTime(v.PostDate, dateFormat))
	}
	return strings.Join(parts, " · ")
}

// DateFormatNames lists the available date format options.
var DateFormatNames = []string{"YYYY-MM-DD", "MM/DD/YYYY", "DD/MM/YYYY"}

// dateLayout returns the Go time layout for the given format name.
func dateLayout(format string) string {
	switch format {
	case "MM/DD/YYYY":
		return "01/02/2006 15:04"
	case "DD/MM/YYYY":
		return "02/01/2006 15:04"
	default:
		return "2006-01-02 15:04"
	}
}

// formatTime formats a timestamp for display using the given format name.
func formatTime(t time.Time, format string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout(format))
}

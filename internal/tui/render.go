package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const errNoToken = "API token not configured. Please set your token in Settings."

const helpFilterActive = "↑/↓: Navigate  Enter: Detail  Esc: Clear filter"

// BorderHeightOverhead is the number of rows a border frame adds around
// view content (top and bottom edge plus padding).
const BorderHeightOverhead = 4

// BorderWidthOverhead is the number of columns a border frame adds.
const BorderWidthOverhead = 4

// listChromeOverhead is the rows a list view spends outside the item
// rows: title, subtitle, blank separators and the help line. Denser
// layouts reclaim spacing rows, relaxed ones give them up.
const (
	listChromeCompact = 8
	listChromeNormal  = 12
	listChromeRelaxed = 16
)

// BorderStyleNames lists the border styles available for cycling in settings.
var BorderStyleNames = []string{"none", "rounded", "thick", "double"}

// ListDensityNames lists the list density options for cycling in settings.
var ListDensityNames = []string{"compact", "normal", "relaxed"}

// HasBorder returns true if the given border style draws a frame.
func HasBorder(style string) bool {
	return style != "" && style != "none"
}

// borderForStyle maps a border style name to a lipgloss border.
func borderForStyle(style string) lipgloss.Border {
	switch style {
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// newFilterInput returns the text input used for filter-as-you-type.
func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.CharLimit = 64
	ti.Width = 24
	ti.Prompt = "/"
	return ti
}

// visibleListRows returns how many item rows fit in a view of the given
// height for the configured density.
func visibleListRows(height int, density string) int {
	var rows int
	switch density {
	case "compact":
		rows = height - listChromeCompact
	case "relaxed":
		rows = height - listChromeRelaxed
	default: // normal
		rows = height - listChromeNormal
	}
	if rows < 3 {
		rows = 3
	}
	return rows
}

// calcListRange returns the half-open [start, end) window of list items to
// render, keeping the cursor visible.
func calcListRange(cursor, total, height int, density string) (int, int) {
	visible := visibleListRows(height, density)
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > total {
		end = total
	}
	return start, end
}

// calcListRangeMultiLine is calcListRange for lists whose entries render
// as linesPerItem rows each.
func calcListRangeMultiLine(cursor, total, height int, density string, linesPerItem int) (int, int) {
	if linesPerItem < 1 {
		linesPerItem = 1
	}
	visible := visibleListRows(height, density) / linesPerItem
	if visible < 1 {
		visible = 1
	}
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > total {
		end = total
	}
	return start, end
}

// renderListItem renders the cursor prefix and name for a list row,
// applying the selection animation to the focused row.
func renderListItem(i, cursor int, name string, styles Styles, selType string, animFrame int) (prefix, rendered string) {
	if i != cursor {
		return "  ", styles.ListItem.Render(name)
	}
	if selType != "" && selType != "none" {
		return "> ", renderSelectionAnim(name, selType, animFrame)
	}
	return "> ", styles.ListItemFocus.Render(name)
}

// truncateName shortens a name to maxWidth display columns, appending an
// ellipsis when it had to cut.
func truncateName(name string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	return runewidth.Truncate(name, maxWidth, "...")
}

// yearString formats an optional publication year for list lines.
func yearString(year *int) string {
	if year == nil {
		return "N/A"
	}
	return strconv.Itoa(*year)
}

// listContentWidth returns the usable content width for a list view,
// bounded by the configured list width and the terminal.
func listContentWidth(configured, termWidth int, hasBorder bool) int {
	w := termWidth
	if hasBorder {
		w -= BorderWidthOverhead
	}
	if configured > 0 && configured < w {
		w = configured
	}
	if w < 20 {
		w = 20
	}
	return w
}

// writeLoadingView writes a titled loading screen into b.
func writeLoadingView(b *strings.Builder, styles Styles, title, msg string) {
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(styles.Loading.Render(msg))
}

// writeErrorView writes a titled error screen into b.
func writeErrorView(b *strings.Builder, styles Styles, title, errMsg, help string) {
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(styles.Error.Render("Error: " + errMsg))
	b.WriteString("\n\n")
	b.WriteString(styles.Help.Render(help))
}

// centerContent centers a block of content in the terminal. The block is
// centered as a whole; lines stay left-aligned inside it.
func centerContent(content string, width, height int) string {
	lines := strings.Split(content, "\n")

	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	leftPadding := (width - maxWidth) / 2
	if leftPadding < 0 {
		leftPadding = 0
	}

	centered := make([]string, len(lines))
	for i, line := range lines {
		if hasKittyImage(line) {
			centered[i] = line
			continue
		}
		centered[i] = strings.Repeat(" ", leftPadding) + line
	}

	contentHeight := len(lines)
	topPadding := (height - contentHeight) / 3
	if topPadding < 0 {
		topPadding = 0
	}

	result := strings.Repeat("\n", topPadding) + strings.Join(centered, "\n")
	return lipgloss.NewStyle().Width(width).Height(height).Render(result)
}

// renderView centers view content, framing it first when a border style
// is configured.
func renderView(content string, styles Styles, width, height int, borderStyle string) string {
	if !HasBorder(borderStyle) {
		return centerContent(content, width, height)
	}

	framed := styles.Border.
		Border(borderForStyle(borderStyle)).
		Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, framed)
}

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

type commentsState int

const (
	commentsStateLoading commentsState = iota
	commentsStateResults
	commentsStateError
)

// commentsModel shows the user comments for a game as one scrolling page.
// Comments are fetched here rather than with the detail view because large
// games carry hundreds of comment pages.
type commentsModel struct {
	state      commentsState
	styles     Styles
	keys       KeyMap
	config     *config.Config
	gameID     int
	gameName   string
	comments   []bgg.Comment
	scroll     int
	maxScroll  int
	viewLines  []string // pre-rendered content lines
	viewHeight int      // terminal height for dynamic layout
	errMsg     string
	wantsBack  bool
}

// commentsResultMsg is sent when the comment pages have been fetched.
type commentsResultMsg struct {
	comments []bgg.Comment
	err      error
}

func newCommentsModel(gameID int, gameName string, cfg *config.Config, styles Styles, keys KeyMap, viewHeight int) commentsModel {
	return commentsModel{
		state:      commentsStateLoading,
		styles:     styles,
		keys:       keys,
		config:     cfg,
		gameID:     gameID,
		gameName:   gameName,
		viewHeight: viewHeight,
	}
}

// visibleLines returns how many content lines fit in the viewport.
// Overhead: title(2) + subtitle(1) + blank(1) + scroll pos(2) + help(2) = 8
func (m commentsModel) visibleLines() int {
	v := m.viewHeight - 8
	if v < 1 {
		v = 1
	}
	return v
}

func (m *commentsModel) recalcScroll() {
	m.maxScroll = len(m.viewLines) - m.visibleLines()
	if m.maxScroll < 0 {
		m.maxScroll = 0
	}
	if m.scroll > m.maxScroll {
		m.scroll = m.maxScroll
	}
}

func (m commentsModel) loadComments(client *bgg.Client) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return commentsResultMsg{err: errors.New(errNoToken)}
		}
		game, err := client.GetBoardGame(context.Background(), m.gameID, bgg.GameOptions{Comments: true})
		if err != nil {
			return commentsResultMsg{err: err}
		}
		return commentsResultMsg{comments: game.Comments}
	}
}

func (m commentsModel) Update(msg tea.Msg) (commentsModel, tea.Cmd) {
	switch m.state {
	case commentsStateLoading:
		switch msg := msg.(type) {
		case tea.WindowSizeMsg:
			m.viewHeight = msg.Height
		case commentsResultMsg:
			if msg.err != nil {
				m.state = commentsStateError
				m.errMsg = msg.err.Error()
			} else {
				m.state = commentsStateResults
				m.comments = msg.comments
				m.scroll = 0
				m.viewLines = m.renderComments()
				m.recalcScroll()
			}
		}
		return m, nil

	case commentsStateResults:
		switch msg := msg.(type) {
		case tea.WindowSizeMsg:
			m.viewHeight = msg.Height
			m.recalcScroll()
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, m.keys.Up):
				if m.scroll > 0 {
					m.scroll--
				}
			case key.Matches(msg, m.keys.Down):
				if m.scroll < m.maxScroll {
					m.scroll++
				}
			case key.Matches(msg, m.keys.PageUp):
				m.scroll -= m.visibleLines()
				if m.scroll < 0 {
					m.scroll = 0
				}
			case key.Matches(msg, m.keys.PageDown):
				m.scroll += m.visibleLines()
				if m.scroll > m.maxScroll {
					m.scroll = m.maxScroll
				}
			case key.Matches(msg, m.keys.Open):
				openBrowser(fmt.Sprintf("https://boardgamegeek.com/boardgame/%d", m.gameID))
			case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Escape):
				m.wantsBack = true
			}
		}
		return m, nil

	case commentsStateError:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Escape):
				m.wantsBack = true
			}
		}
		return m, nil
	}

	return m, nil
}

func (m commentsModel) View(width, height int) string {
	var b strings.Builder

	switch m.state {
	case commentsStateLoading:
		b.WriteString(m.styles.Title.Render(fmt.Sprintf("%s - Comments", m.gameName)))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Loading.Render("Loading comments..."))
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("(All comment pages are fetched, this may take a while)"))

	case commentsStateResults:
		b.WriteString(m.styles.Title.Render(fmt.Sprintf("%s - Comments", m.gameName)))
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("%d comments", len(m.comments))))
		b.WriteString("\n\n")

		start := m.scroll
		end := start + m.visibleLines()
		if end > len(m.viewLines) {
			end = len(m.viewLines)
		}
		for i := start; i < end; i++ {
			b.WriteString(m.viewLines[i])
			b.WriteString("\n")
		}

		if m.maxScroll > 0 {
			b.WriteString("\n")
			b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("(%d/%d)", m.scroll+1, m.maxScroll+1)))
		}

		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("j/k: Scroll  n/p: Page  o: Open BGG  b: Back"))

	case commentsStateError:
		writeErrorView(&b, m.styles, "Comments", m.errMsg, "b: Back")
	}

	return renderView(b.String(), m.styles, width, height, m.config.Interface.BorderStyle)
}

// renderComments pre-renders all comments into lines for scrolling.
func (m commentsModel) renderComments() []string {
	var lines []string

	for i, c := range m.comments {
		lines = append(lines, m.styles.Label.Width(0).Render(commentHeader(c)))
		lines = append(lines, linkifyLines(htmlToText(c.Text, m.config.Display.DetailWidth))...)
		if i < len(m.comments)-1 {
			lines = append(lines, "")
		}
	}

	return lines
}

// commentHeader builds the separator line above a comment body. Ratings
// come through as raw strings and may be "N/A".
func commentHeader(c bgg.Comment) string {
	if c.Rating != "" && c.Rating != "N/A" {
		return fmt.Sprintf("--- %s · rated %s ---", c.Username, c.Rating)
	}
	return fmt.Sprintf("--- %s ---", c.Username)
}

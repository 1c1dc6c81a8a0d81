package tui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	bgg "github.com/arnauldvm/boardgamegeek"

	"github.com/arnauldvm/boardgamegeek/internal/config"
)

type detailState int

const (
	detailStateLoading detailState = iota
	detailStateResults
	detailStateError
)

// Detail view image slot. The placement grid is larger than the list
// thumbnails and uses its own image ID so both can be on screen.
const (
	detailImageID   uint32 = 1
	detailImageCols        = 20
	detailImageRows        = 10
)

type detailModel struct {
	state         detailState
	config        *config.Config
	styles        Styles
	keys          KeyMap
	gameID        int
	game          *bgg.BoardGame
	errMsg        string
	scroll        int
	maxScroll     int
	viewHeight    int
	descLines     []string // pre-wrapped description lines
	wantsBack     bool
	wantsVideos   bool
	wantsComments bool

	imageEnabled   bool
	imgTransmit    string // Kitty APC transmit sequence
	imgPlaceholder string // Unicode placeholder grid
	imgLoading     bool
	cache          *imageCache
}

// detailResultMsg is sent when game details are received.
type detailResultMsg struct {
	game *bgg.BoardGame
	err  error
}

func newDetailModel(gameID int, cfg *config.Config, styles Styles, keys KeyMap, imgEnabled bool, cache *imageCache, viewHeight int) detailModel {
	return detailModel{
		state:        detailStateLoading,
		config:       cfg,
		styles:       styles,
		keys:         keys,
		gameID:       gameID,
		viewHeight:   viewHeight,
		imageEnabled: imgEnabled,
		cache:        cache,
	}
}

// visibleLines is how many description lines fit under the info block.
func (m detailModel) visibleLines() int {
	lines := m.viewHeight - 6
	if lines < 1 {
		lines = 1
	}
	return lines
}

// recalcScroll re-clamps scroll bounds after a resize or content change.
func (m *detailModel) recalcScroll() {
	m.maxScroll = len(m.descLines) - m.visibleLines()
	if m.maxScroll < 0 {
		m.maxScroll = 0
	}
	if m.scroll > m.maxScroll {
		m.scroll = m.maxScroll
	}
}

func (m detailModel) loadGame(client *bgg.Client) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return detailResultMsg{err: errors.New(errNoToken)}
		}
		// Videos ride along so the videos browser needs no second fetch.
		game, err := client.GetBoardGame(context.Background(), m.gameID, bgg.GameOptions{Videos: true})
		return detailResultMsg{game: game, err: err}
	}
}

func (m detailModel) loadImage(url string) tea.Cmd {
	return func() tea.Msg {
		ri, err := renderKittyImage(m.cache, url, detailImageID, detailImageCols, detailImageRows, false)
		if err != nil {
			return imageLoadedMsg{url: url, err: err}
		}
		return imageLoadedMsg{url: url, imgTransmit: ri.transmit, imgPlaceholder: ri.placeholder}
	}
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.viewHeight = ws.Height
		m.recalcScroll()
		return m, nil
	}

	switch m.state {
	case detailStateLoading:
		switch msg := msg.(type) {
		case detailResultMsg:
			if msg.err != nil {
				m.state = detailStateError
				m.errMsg = msg.err.Error()
				return m, nil
			}

			m.state = detailStateResults
			m.game = msg.game
			m.scroll = 0

			desc := msg.game.Description
			if desc == "" {
				desc = "No description available."
			}
			m.descLines = linkifyLines(htmlToText(desc, m.config.Display.DetailWidth))
			m.recalcScroll()

			if m.imageEnabled && m.cache != nil && msg.game.Image != "" {
				m.imgLoading = true
				return m, m.loadImage(msg.game.Image)
			}
		}
		return m, nil

	case detailStateResults:
		switch msg := msg.(type) {
		case imageLoadedMsg:
			m.imgLoading = false
			if msg.err == nil {
				m.imgTransmit = msg.imgTransmit
				m.imgPlaceholder = msg.imgPlaceholder
			}
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
			case key.Matches(msg, m.keys.Videos):
				m.wantsVideos = true
			case key.Matches(msg, m.keys.Comments):
				m.wantsComments = true
			case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Escape):
				m.wantsBack = true
			}
		}
		return m, nil

	case detailStateError:
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

func (m detailModel) View(width, height int) string {
	var b strings.Builder
	var transmit string

	switch m.state {
	case detailStateLoading:
		writeLoadingView(&b, m.styles, "Game Details", "Loading...")

	case detailStateResults:
		game := m.game

		b.WriteString(m.styles.Title.Render(game.Name))
		if game.Expansion {
			b.WriteString(" ")
			b.WriteString(m.styles.Badge.Render("Expansion"))
		}
		b.WriteString("\n\n")

		if m.imgTransmit != "" {
			transmit = m.imgTransmit
			b.WriteString(m.imgPlaceholder)
			b.WriteString("\n")
		} else if m.imgLoading {
			b.WriteString(m.styles.Loading.Render("Loading image..."))
			b.WriteString("\n\n")
		}

		for _, line := range m.infoLines() {
			b.WriteString(line)
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("Description"))
		b.WriteString("\n")

		start := m.scroll
		end := start + m.visibleLines()
		if end > len(m.descLines) {
			end = len(m.descLines)
		}
		for i := start; i < end; i++ {
			b.WriteString(m.descLines[i])
			b.WriteString("\n")
		}

		if m.maxScroll > 0 {
			b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("(%d/%d)", m.scroll+1, m.maxScroll+1)))
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("j/k: Scroll  o: Open BGG  v: Videos  c: Comments  b: Back"))

	case detailStateError:
		writeErrorView(&b, m.styles, "Game Details", m.errMsg, "b: Back")
	}

	return transmit + renderView(b.String(), m.styles, width, height, m.config.Interface.BorderStyle)
}

// infoLines builds the labeled facts block above the description.
func (m detailModel) infoLines() []string {
	game := m.game
	var lines []string

	lines = append(lines, fmt.Sprintf("%s %s", m.styles.Label.Render("Year"), yearString(game.YearPublished)))

	ratingStr := "N/A"
	if game.Stats.Average > 0 {
		ratingStr = fmt.Sprintf("%.2f (%d votes)", game.Stats.Average, game.Stats.UsersRated)
	}
	lines = append(lines, fmt.Sprintf("%s %s", m.styles.Label.Render("Rating"), m.styles.Rating.Render(ratingStr)))

	rankStr := "Not Ranked"
	if rank := game.BGGRank(); rank != nil {
		rankStr = fmt.Sprintf("#%d", *rank)
	}
	lines = append(lines, fmt.Sprintf("%s %s", m.styles.Label.Render("Rank"), m.styles.Rank.Render(rankStr)))

	playersStr := fmt.Sprintf("%d-%d", game.MinPlayers, game.MaxPlayers)
	if game.MinPlayers == game.MaxPlayers {
		playersStr = fmt.Sprintf("%d", game.MinPlayers)
	}
	if best := bestPlayerCount(game.PlayerSuggestions); best != "" {
		playersStr += fmt.Sprintf(" (best: %s)", best)
	}
	lines = append(lines, fmt.Sprintf("%s %s", m.styles.Label.Render("Players"), m.styles.Players.Render(playersStr)))

	timeStr := fmt.Sprintf("%d min", game.PlayingTime)
	if game.MinPlayTime != game.MaxPlayTime {
		timeStr = fmt.Sprintf("%d-%d min", game.MinPlayTime, game.MaxPlayTime)
	}
	lines = append(lines, fmt.Sprintf("%s %s", m.styles.Label.Render("Time"), m.styles.Time.Render(timeStr)))

	weightStr := "N/A"
	if game.Stats.AverageWeight > 0 {
		weightStr = fmt.Sprintf("%.2f / 5", game.Stats.AverageWeight)
	}
	lines = append(lines, fmt.Sprintf("%s %s", m.styles.Label.Render("Weight"), weightStr))

	if game.MinAge > 0 {
		lines = append(lines, fmt.Sprintf("%s %d+", m.styles.Label.Render("Age"), game.MinAge))
	}

	if len(game.Designers) > 0 {
		lines = append(lines, fmt.Sprintf("%s %s", m.styles.Label.Render("Designer"), strings.Join(game.Designers, ", ")))
	}

	if len(game.Categories) > 0 {
		lines = append(lines, fmt.Sprintf("%s %s", m.styles.Label.Render("Categories"), strings.Join(game.Categories, ", ")))
	}

	if len(game.Mechanics) > 0 {
		lines = append(lines, fmt.Sprintf("%s %s", m.styles.Label.Render("Mechanics"), strings.Join(game.Mechanics, ", ")))
	}

	return lines
}

// bestPlayerCount returns the player-count label with the most "best" votes,
// or "" when nobody voted.
func bestPlayerCount(suggestions []bgg.PlayerSuggestion) string {
	best := ""
	votes := 0
	for _, s := range suggestions {
		if s.Best > votes {
			votes = s.Best
			best = s.PlayerCount
		}
	}
	return best
}

// wrapText wraps text to the specified width, keeping paragraph breaks.
// Lines starting with quote prefixes keep the prefix on every wrapped
// continuation line and wrap within the remaining width.
func wrapText(text string, width int) []string {
	var lines []string
	paragraphs := strings.Split(text, "\n")

	for _, para := range paragraphs {
		if para == "" {
			lines = append(lines, "")
			continue
		}

		prefix := ""
		rest := para
		for strings.HasPrefix(rest, quotePrefix) {
			prefix += quotePrefix
			rest = rest[len(quotePrefix):]
		}
		avail := width - len(prefix)
		if avail < 1 {
			avail = 1
		}

		words := strings.Fields(rest)
		if len(words) == 0 {
			lines = append(lines, prefix)
			continue
		}

		currentLine := words[0]
		for _, word := range words[1:] {
			if len(currentLine)+1+len(word) <= avail {
				currentLine += " " + word
			} else {
				lines = append(lines, prefix+currentLine)
				currentLine = word
			}
		}
		lines = append(lines, prefix+currentLine)
	}

	return lines
}

// openBrowser opens the URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return
	}

	cmd.Start()
}

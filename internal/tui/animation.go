package tui

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Animation tick interval (~15 fps).
const animTickInterval = 66 * time.Millisecond

// animTickMsg is sent on every animation tick.
type animTickMsg time.Time

// animTickCmd returns a tea.Cmd that sends an animTickMsg after animTickInterval.
func animTickCmd() tea.Cmd {
	return tea.Tick(animTickInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// waveColors is the palette cycled by the wave selection animation.
var waveColors = []lipgloss.Color{
	"#FF6B6B", "#FFE66D", "#4ECDC4", "#45B7D1", "#96CEB4",
}

// TransitionNames lists all available transition types for cycling in settings.
var TransitionNames = []string{"none", "fade", "typing", "dissolve", "sweep"}

// SelectionNames lists all available selection animation types for cycling in settings.
var SelectionNames = []string{"none", "wave", "blink"}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripAnsi removes ANSI escape sequences from a string.
func stripAnsi(str string) string {
	return ansiRegex.ReplaceAllString(str, "")
}

// hasKittyImage returns true if the line contains Kitty graphics protocol
// sequences (\x1b_G) or the Kitty placeholder character (U+10EEEE).
// Animation renderers must pass such lines through untouched.
func hasKittyImage(line string) bool {
	return strings.Contains(line, "\x1b_G") || strings.ContainsRune(line, 0x10EEEE)
}

// transitionState holds the state of an active view transition.
type transitionState struct {
	active   bool
	name     string
	frame    int
	maxFrame int
}

// startTransition creates a new transitionState for the given transition type.
func startTransition(name string) transitionState {
	if name == "" || name == "none" {
		return transitionState{}
	}
	return transitionState{
		active:   true,
		name:     name,
		maxFrame: 15,
	}
}

// tick advances the transition by one frame, deactivating it when done.
func (t *transitionState) tick() {
	if !t.active {
		return
	}
	t.frame++
	if t.frame >= t.maxFrame {
		t.active = false
	}
}

// progress returns the transition progress in [0, 1].
func (t transitionState) progress() float64 {
	if t.maxFrame == 0 {
		return 1
	}
	return float64(t.frame) / float64(t.maxFrame)
}

// renderTransition dispatches to the appropriate transition renderer.
// Returns the content as-is if the transition type is unknown.
func renderTransition(content string, t transitionState) string {
	switch t.name {
	case "fade":
		return renderTransitionFade(content, t.progress())
	case "typing":
		return renderTransitionTyping(content, t.frame, t.maxFrame)
	case "dissolve":
		return renderTransitionDissolve(content, t.progress())
	case "sweep":
		return renderTransitionSweep(content, t.progress())
	}
	return content
}

// forEachAnimLine applies fn to every line of content, passing kitty
// image lines through untouched.
func forEachAnimLine(content string, fn func(plain string, index int) string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		if hasKittyImage(line) {
			out[i] = line
			continue
		}
		out[i] = fn(stripAnsi(line), i)
	}
	return strings.Join(out, "\n")
}

// renderTransitionFade brightens content from dark gray to full white
// using the ANSI256 grayscale ramp.
func renderTransitionFade(content string, progress float64) string {
	gray := 232 + int(progress*23)
	if gray > 255 {
		gray = 255
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("%d", gray)))

	return forEachAnimLine(content, func(plain string, _ int) string {
		return style.Render(plain)
	})
}

// renderTransitionTyping reveals lines top to bottom with a cursor block
// on the reveal edge.
func renderTransitionTyping(content string, frame, maxFrame int) string {
	lines := strings.Split(content, "\n")
	total := len(lines)
	if total == 0 || maxFrame == 0 {
		return content
	}

	revealed := frame * total / maxFrame
	out := make([]string, total)
	for i, line := range lines {
		switch {
		case hasKittyImage(line):
			out[i] = line
		case i < revealed:
			out[i] = line
		case i == revealed:
			out[i] = "▌"
		default:
			out[i] = ""
		}
	}
	return strings.Join(out, "\n")
}

// renderTransitionDissolve reveals characters in a fixed pseudo-random
// order: each cell has a positional threshold and appears once progress
// passes it.
func renderTransitionDissolve(content string, progress float64) string {
	return forEachAnimLine(content, func(plain string, li int) string {
		var b strings.Builder
		for ci, ch := range []rune(plain) {
			threshold := float64((li*2654435+ci*40503)%997+1) / 998.0
			if progress >= threshold {
				b.WriteRune(ch)
				continue
			}
			for i := 0; i < runewidth.RuneWidth(ch); i++ {
				b.WriteByte(' ')
			}
		}
		return b.String()
	})
}

// easeOutQuad applies quadratic ease-out: fast start, slow finish.
func easeOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// renderTransitionSweep reveals content column by column from the left,
// drawing a highlighted edge at the reveal boundary.
func renderTransitionSweep(content string, progress float64) string {
	lines := strings.Split(content, "\n")

	maxWidth := 0
	for _, line := range lines {
		if hasKittyImage(line) {
			continue
		}
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth == 0 {
		return content
	}

	sweepCol := int(easeOutQuad(progress) * float64(maxWidth))
	edge := lipgloss.NewStyle().Foreground(ColorAccent).Render("▌")

	return forEachAnimLine(content, func(plain string, _ int) string {
		var b strings.Builder
		col := 0
		for _, ch := range []rune(plain) {
			w := runewidth.RuneWidth(ch)
			switch {
			case col+w <= sweepCol:
				b.WriteRune(ch)
			case col <= sweepCol && sweepCol > 0:
				b.WriteString(edge)
				for i := 0; i < w-1; i++ {
					b.WriteByte(' ')
				}
			default:
				for i := 0; i < w; i++ {
					b.WriteByte(' ')
				}
			}
			col += w
		}
		return b.String()
	})
}

// renderSelectionAnim dispatches to the appropriate selection animation
// renderer. Returns the text as-is if the selection type is empty,
// "none", or unknown.
func renderSelectionAnim(text string, selType string, frame int) string {
	switch selType {
	case "wave":
		return renderSelectionWave(text, frame)
	case "blink":
		return renderSelectionBlink(text, frame)
	}
	return text
}

// renderSelectionWave applies a sine color wave across the characters.
func renderSelectionWave(text string, frame int) string {
	var b strings.Builder
	for i, ch := range text {
		wave := math.Sin(float64(frame)*0.25 + float64(i)*0.3)
		idx := int((wave + 1) / 2 * float64(len(waveColors)-1))
		style := lipgloss.NewStyle().Foreground(waveColors[idx]).Bold(true)
		b.WriteString(style.Render(string(ch)))
	}
	return b.String()
}

// renderSelectionBlink toggles between bright and dim colors with bold.
func renderSelectionBlink(text string, frame int) string {
	color := lipgloss.Color("#F8F8F2")
	if (frame/10)%2 == 1 {
		color = lipgloss.Color("#44475A")
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(text)
}

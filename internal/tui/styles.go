package tui

import "github.com/charmbracelet/lipgloss"

// Colors shared by every theme.
var (
	ColorError  = lipgloss.Color("#EF4444") // Red
	ColorMuted  = lipgloss.Color("#6B7280") // Gray
	ColorBorder = lipgloss.Color("#374151") // Dark gray
	ColorAccent = lipgloss.Color("#F59E0B") // Amber
)

// ThemeNames lists the color themes available for cycling in settings.
var ThemeNames = []string{"default", "blue", "orange", "green"}

// themePalette returns the primary and secondary colors for a theme.
// Unknown names fall back to the default purple/green palette.
func themePalette(theme string) (primary, secondary lipgloss.Color) {
	switch theme {
	case "blue":
		return lipgloss.Color("#3B82F6"), lipgloss.Color("#06B6D4")
	case "orange":
		return lipgloss.Color("#F97316"), lipgloss.Color("#FACC15")
	case "green":
		return lipgloss.Color("#22C55E"), lipgloss.Color("#86EFAC")
	default:
		return lipgloss.Color("#7C3AED"), lipgloss.Color("#10B981")
	}
}

// Styles contains all the styles used in the application.
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	MenuItem      lipgloss.Style
	MenuItemFocus lipgloss.Style
	ListItem      lipgloss.Style
	ListItemFocus lipgloss.Style
	Help          lipgloss.Style
	Error         lipgloss.Style
	Loading       lipgloss.Style
	Border        lipgloss.Style
	Badge         lipgloss.Style
	Rating        lipgloss.Style
	Rank          lipgloss.Style
	Players       lipgloss.Style
	Time          lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
}

// DefaultStyles returns the styles for the default theme.
func DefaultStyles() Styles {
	return NewStyles("default")
}

// NewStyles builds the style set for the given color theme.
func NewStyles(theme string) Styles {
	primary, secondary := themePalette(theme)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),

		MenuItem: lipgloss.NewStyle().
			PaddingLeft(2),

		MenuItemFocus: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(primary).
			Bold(true),

		ListItem: lipgloss.NewStyle().
			PaddingLeft(2),

		ListItemFocus: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(secondary).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),

		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		Loading: lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primary).
			Padding(0, 1),

		Rating: lipgloss.NewStyle().
			Foreground(ColorAccent),

		Rank: lipgloss.NewStyle().
			Foreground(secondary),

		Players: lipgloss.NewStyle().
			Foreground(primary),

		Time: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Label: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(12),

		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")),
	}
}

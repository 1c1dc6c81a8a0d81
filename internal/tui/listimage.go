package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Thumbnail panel geometry for list views.
const (
	listImageID   uint32 = 2
	listImageCols        = 16
	listImageRows        = 8
)

// listImageState bundles the thumbnail panel state shared by the list views.
type listImageState struct {
	enabled     bool
	cache       *imageCache
	transmit    string
	placeholder string
	loading     bool
	hasError    bool
	lastURL     string
}

// listImageMsg is sent when a list thumbnail has been fetched and rendered.
type listImageMsg struct {
	url            string
	imgTransmit    string
	imgPlaceholder string
	err            error
}

// maybeLoad starts loading the thumbnail at url unless it is already the
// one on display. Returns nil when images are off or there is nothing to do.
func (s *listImageState) maybeLoad(url string) tea.Cmd {
	if !s.enabled || s.cache == nil {
		return nil
	}
	if url == "" || url == s.lastURL {
		return nil
	}
	s.lastURL = url
	s.loading = true
	s.hasError = false
	s.transmit = ""
	s.placeholder = ""
	return loadListImage(s.cache, url)
}

// handleLoaded applies a finished load, ignoring stale results for URLs
// the cursor has already moved away from.
func (s *listImageState) handleLoaded(msg listImageMsg) {
	if msg.url != s.lastURL {
		return
	}
	s.loading = false
	if msg.err != nil {
		s.hasError = true
		return
	}
	s.transmit = msg.imgTransmit
	s.placeholder = msg.imgPlaceholder
}

// loadListImage downloads and renders a thumbnail for the list panel.
func loadListImage(cache *imageCache, url string) tea.Cmd {
	return func() tea.Msg {
		ri, err := renderKittyImage(cache, url, listImageID, listImageCols, listImageRows, true)
		if err != nil {
			return listImageMsg{url: url, err: err}
		}
		return listImageMsg{url: url, imgTransmit: ri.transmit, imgPlaceholder: ri.placeholder}
	}
}

// renderedImage is a transmitted Kitty image plus the placeholder grid
// that displays it.
type renderedImage struct {
	transmit    string
	placeholder string
}

// renderKittyImage downloads url, scales it into a cols x rows cell box
// and produces the transmit sequence and placeholder grid. With padToGrid
// the placeholder always spans the full grid so the surrounding layout
// stays stable; otherwise it matches the scaled image.
func renderKittyImage(cache *imageCache, url string, id uint32, cols, rows int, padToGrid bool) (renderedImage, error) {
	path, err := cache.Download(url)
	if err != nil {
		return renderedImage{}, err
	}

	cellW, cellH := termCellSize()
	img, err := loadAndResize(path, cols*cellW, rows*cellH)
	if err != nil {
		return renderedImage{}, err
	}

	transmit, err := kittyTransmitString(img, id)
	if err != nil {
		return renderedImage{}, err
	}

	phCols, phRows := cols, rows
	if !padToGrid {
		bounds := img.Bounds()
		phCols = max(1, (bounds.Dx()+cellW-1)/cellW)
		phRows = max(1, (bounds.Dy()+cellH-1)/cellH)
	}

	return renderedImage{
		transmit:    transmit,
		placeholder: kittyPlaceholder(id, phRows, phCols),
	}, nil
}

// fixedSizeLoadingPanel renders a cols x rows block shown while a
// thumbnail downloads.
func fixedSizeLoadingPanel(cols, rows int) string {
	return fixedSizePanel(cols, rows, "Loading...")
}

// fixedSizeNoImagePanel renders a cols x rows block shown when a
// thumbnail is unavailable.
func fixedSizeNoImagePanel(cols, rows int) string {
	return fixedSizePanel(cols, rows, "No image")
}

func fixedSizePanel(cols, rows int, label string) string {
	style := lipgloss.NewStyle().
		Width(cols).
		Height(rows).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(ColorMuted)
	return style.Render(label)
}

// renderImagePanel joins the list content in b with the thumbnail panel
// and returns the transmit sequence to prepend to the frame. The builder
// is rewritten in place.
func renderImagePanel(b *strings.Builder, enabled bool, placeholder, transmit string, loading, hasError bool) string {
	if !enabled {
		return ""
	}

	var panel string
	switch {
	case placeholder != "":
		panel = "\n" + placeholder + "\n"
	case loading:
		panel = "\n" + fixedSizeLoadingPanel(listImageCols, listImageRows) + "\n"
	case hasError:
		panel = "\n" + fixedSizeNoImagePanel(listImageCols, listImageRows) + "\n"
	default:
		return ""
	}

	listContent := b.String()
	b.Reset()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, listContent, "  ", panel))

	if placeholder != "" {
		return transmit
	}
	return ""
}

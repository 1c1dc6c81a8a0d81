//go:build !windows

package tui

import (
	"os"

	"golang.org/x/sys/unix"
)

// Fallback cell size for terminals that do not report pixel dimensions.
const (
	defaultCellW = 8
	defaultCellH = 16
)

// termCellSize returns the pixel size of one terminal cell, used to scale
// Kitty graphics to a cell grid. TIOCGWINSZ reports zero pixel fields on
// terminals without graphics support; those fall back to a typical size.
func termCellSize() (cellW, cellH int) {
	cellW, cellH = defaultCellW, defaultCellH
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return cellW, cellH
	}
	if ws.Col > 0 && ws.Xpixel > 0 {
		if w := int(ws.Xpixel) / int(ws.Col); w > 0 {
			cellW = w
		}
	}
	if ws.Row > 0 && ws.Ypixel > 0 {
		if h := int(ws.Ypixel) / int(ws.Row); h > 0 {
			cellH = h
		}
	}
	return cellW, cellH
}

package tui

import (
	"testing"

	bgg "github.com/arnauldvm/boardgamegeek"
)

func TestVisibleLines(t *testing.T) {
	tests := []struct {
		name       string
		viewHeight int
		want       int
	}{
		{"tall terminal", 40, 34},
		{"default height", 30, 24},
		{"barely room", 8, 2},
		{"info block eats everything", 6, 1},
		{"zero height", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := detailModel{viewHeight: tt.viewHeight}
			if got := m.visibleLines(); got != tt.want {
				t.Errorf("visibleLines() with viewHeight=%d = %d, want %d", tt.viewHeight, got, tt.want)
			}
		})
	}
}

func TestRecalcScroll(t *testing.T) {
	m := detailModel{viewHeight: 30, descLines: make([]string, 50), scroll: 100}
	m.recalcScroll()
	if m.maxScroll != 26 {
		t.Errorf("maxScroll = %d, want 26", m.maxScroll)
	}
	if m.scroll != 26 {
		t.Errorf("scroll = %d, want clamped to 26", m.scroll)
	}

	m = detailModel{viewHeight: 30, descLines: make([]string, 10), scroll: 5}
	m.recalcScroll()
	if m.maxScroll != 0 {
		t.Errorf("maxScroll = %d, want 0 when everything fits", m.maxScroll)
	}
	if m.scroll != 0 {
		t.Errorf("scroll = %d, want 0 when everything fits", m.scroll)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "fits on one line",
			text:  "Catan",
			width: 80,
			want:  []string{"Catan"},
		},
		{
			name:  "wraps at word boundaries",
			text:  "Terraforming Mars is a heavy engine builder",
			width: 20,
			want:  []string{"Terraforming Mars is", "a heavy engine", "builder"},
		},
		{
			name:  "paragraph breaks preserved",
			text:  "first\n\nsecond",
			width: 80,
			want:  []string{"first", "", "second"},
		},
		{
			name:  "quote prefix carried onto continuation lines",
			text:  "│ Measure twice and cut once every time",
			width: 18,
			want:  []string{"│ Measure twice", "│ and cut once", "│ every time"},
		},
		{
			name:  "nested quote prefix carried",
			text:  "│ │ Measure twice and cut once every time",
			width: 22,
			want:  []string{"│ │ Measure twice", "│ │ and cut once", "│ │ every time"},
		},
		{
			name:  "quoted line that already fits",
			text:  "│ fine",
			width: 40,
			want:  []string{"│ fine"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			assertLines(t, got, tt.want)
		})
	}
}

func TestBestPlayerCount(t *testing.T) {
	suggestions := []bgg.PlayerSuggestion{
		{PlayerCount: "2", Best: 40, Recommended: 120},
		{PlayerCount: "3", Best: 310, Recommended: 80},
		{PlayerCount: "4", Best: 150, Recommended: 90},
		{PlayerCount: "4+", Best: 0, NotRecommended: 200},
	}
	if got := bestPlayerCount(suggestions); got != "3" {
		t.Errorf("bestPlayerCount = %q, want %q", got, "3")
	}

	if got := bestPlayerCount(nil); got != "" {
		t.Errorf("bestPlayerCount(nil) = %q, want empty", got)
	}
	if got := bestPlayerCount([]bgg.PlayerSuggestion{{PlayerCount: "2"}}); got != "" {
		t.Errorf("bestPlayerCount with zero votes = %q, want empty", got)
	}
}

// assertLines compares two line slices and reports the first mismatch.
func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("line count mismatch:\n  got  (%d): %q\n  want (%d): %q", len(got), got, len(want), want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d mismatch:\n  got:  %q\n  want: %q", i, got[i], want[i])
		}
	}
}

package tui

import (
	"errors"
	"strings"
	"testing"

	bgg "github.com/arnauldvm/boardgamegeek"

	"github.com/arnauldvm/boardgamegeek/internal/config"
)

func TestCommentsVisibleLines(t *testing.T) {
	tests := []struct {
		name       string
		viewHeight int
		want       int
	}{
		{"normal height", 30, 22},
		{"small height", 10, 2},
		{"no room clamps to 1", 8, 1},
		{"zero height", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := commentsModel{viewHeight: tt.viewHeight}
			if got := m.visibleLines(); got != tt.want {
				t.Errorf("visibleLines() with viewHeight=%d = %d, want %d", tt.viewHeight, got, tt.want)
			}
		})
	}
}

func TestCommentHeader(t *testing.T) {
	tests := []struct {
		name    string
		comment bgg.Comment
		want    string
	}{
		{"with rating", bgg.Comment{Username: "alice", Rating: "8"}, "--- alice · rated 8 ---"},
		{"rating N/A", bgg.Comment{Username: "bob", Rating: "N/A"}, "--- bob ---"},
		{"no rating", bgg.Comment{Username: "carol"}, "--- carol ---"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := commentHeader(tt.comment); got != tt.want {
				t.Errorf("commentHeader() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommentsUpdateResult(t *testing.T) {
	cfg := config.DefaultConfig()
	styles := NewStyles("default")
	keys := DefaultKeyMap()

	m := newCommentsModel(13, "CATAN", cfg, styles, keys, 24)
	if m.state != commentsStateLoading {
		t.Fatalf("initial state = %d, want loading", m.state)
	}

	comments := []bgg.Comment{
		{Username: "alice", Rating: "8", Text: "Great game"},
		{Username: "bob", Rating: "N/A", Text: "Plays &amp; trades well"},
	}
	m, _ = m.Update(commentsResultMsg{comments: comments})

	if m.state != commentsStateResults {
		t.Errorf("state = %d, want results", m.state)
	}
	if len(m.comments) != 2 {
		t.Errorf("len(comments) = %d, want 2", len(m.comments))
	}
	if len(m.viewLines) == 0 {
		t.Fatal("viewLines should be rendered")
	}

	joined := strings.Join(m.viewLines, "\n")
	if !strings.Contains(joined, "alice") {
		t.Error("rendered lines should contain the first username")
	}
	if !strings.Contains(joined, "Plays & trades well") {
		t.Error("rendered lines should contain the decoded comment body")
	}
}

func TestCommentsUpdateError(t *testing.T) {
	cfg := config.DefaultConfig()
	styles := NewStyles("default")
	keys := DefaultKeyMap()

	m := newCommentsModel(13, "CATAN", cfg, styles, keys, 24)
	m, _ = m.Update(commentsResultMsg{err: errors.New("boom")})

	if m.state != commentsStateError {
		t.Errorf("state = %d, want error", m.state)
	}
	if m.errMsg != "boom" {
		t.Errorf("errMsg = %q, want boom", m.errMsg)
	}
}

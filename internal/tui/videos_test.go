package tui

import (
	"testing"
	"time"

	bgg "github.com/arnauldvm/boardgamegeek"

	"github.com/arnauldvm/boardgamegeek/internal/config"
)

func TestFormatTime(t *testing.T) {
	ts := time.Date(2025, 2, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		input  time.Time
		format string
		want   string
	}{
		{"YYYY-MM-DD default", ts, "YYYY-MM-DD", "2025-02-10 14:30"},
		{"MM/DD/YYYY format", ts, "MM/DD/YYYY", "02/10/2025 14:30"},
		{"DD/MM/YYYY format", ts, "DD/MM/YYYY", "10/02/2025 14:30"},
		{"unknown format falls back", ts, "bogus", "2025-02-10 14:30"},
		{"zero time", time.Time{}, "YYYY-MM-DD", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatTime(tt.input, tt.format)
			if got != tt.want {
				t.Errorf("formatTime(%v, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
			}
		})
	}
}

func TestVideoMeta(t *testing.T) {
	posted := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		video bgg.Video
		want  string
	}{
		{
			name: "all fields",
			video: bgg.Video{
				Category: "review",
				Language: "English",
				Uploader: "someuser",
				PostDate: posted,
			},
			want: "review · English · someuser · 2025-01-15 00:00",
		},
		{
			name: "missing language",
			video: bgg.Video{
				Category: "instructional",
				Uploader: "someuser",
				PostDate: posted,
			},
			want: "instructional · someuser · 2025-01-15 00:00",
		},
		{
			name:  "no fields at all",
			video: bgg.Video{},
			want:  "",
		},
		{
			name: "unparsed date omitted",
			video: bgg.Video{
				Category: "session",
			},
			want: "session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := videoMeta(tt.video, "YYYY-MM-DD")
			if got != tt.want {
				t.Errorf("videoMeta() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewVideosModelSortsNewestFirst(t *testing.T) {
	cfg := config.DefaultConfig()
	styles := NewStyles("default")
	keys := DefaultKeyMap()

	videos := []bgg.Video{
		{Thing: bgg.Thing{ID: 1, Name: "Old Review"}, PostDate: time.Date(2024, 12, 20, 8, 32, 0, 0, time.UTC)},
		{Thing: bgg.Thing{ID: 2, Name: "New Review"}, PostDate: time.Date(2025, 2, 10, 14, 30, 0, 0, time.UTC)},
		{Thing: bgg.Thing{ID: 3, Name: "Undated"}},
		{Thing: bgg.Thing{ID: 4, Name: "Mid Review"}, PostDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	m := newVideosModel("Catan", videos, cfg, styles, keys)

	got := make([]string, len(m.filter.items))
	for i, v := range m.filter.items {
		got[i] = v.Name
	}

	want := []string{"New Review", "Mid Review", "Old Review", "Undated"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("items[%d] = %q, want %q (order %v)", i, got[i], want[i], got)
		}
	}

	// The caller's slice must not be reordered.
	if videos[0].Name != "Old Review" {
		t.Error("input slice should not be mutated")
	}
}

func TestDateFormatNames(t *testing.T) {
	want := []string{"YYYY-MM-DD", "MM/DD/YYYY", "DD/MM/YYYY"}
	if len(DateFormatNames) != len(want) {
		t.Fatalf("DateFormatNames = %v, want %v", DateFormatNames, want)
	}
	for i := range want {
		if DateFormatNames[i] != want[i] {
			t.Errorf("DateFormatNames[%d] = %q, want %q", i, DateFormatNames[i], want[i])
		}
	}
}

package boardgamegeek

import (
	"errors"
	"testing"
	"time"
)

func TestNewVideo(t *testing.T) {
	p := NewPayload().
		Set("id", 101).
		Set("name", "How to Play CATAN").
		Set("category", "instructional").
		Set("link", "http://www.youtube.com/watch?v=abc123").
		Set("language", "English").
		Set("uploader", "alice").
		Set("uploader_id", "2077").
		Set("post_date", "2020-05-01T10:00:00-0400")

	v, err := NewVideo(p)
	if err != nil {
		t.Fatalf("NewVideo() error = %v", err)
	}
	if v.ID != 101 {
		t.Errorf("ID = %d, want 101", v.ID)
	}
	if v.Name != "How to Play CATAN" {
		t.Errorf("Name = %q, want %q", v.Name, "How to Play CATAN")
	}
	if v.Category != "instructional" {
		t.Errorf("Category = %q, want %q", v.Category, "instructional")
	}
	if v.Language != "English" {
		t.Errorf("Language = %q, want %q", v.Language, "English")
	}
	if v.Uploader != "alice" {
		t.Errorf("Uploader = %q, want %q", v.Uploader, "alice")
	}
	if v.UploaderID != 2077 {
		t.Errorf("UploaderID = %d, want 2077", v.UploaderID)
	}
	want := time.Date(2020, time.May, 1, 10, 0, 0, 0, time.UTC)
	if !v.PostDate.Equal(want) {
		t.Errorf("PostDate = %v, want %v", v.PostDate, want)
	}
}

func TestNewVideo_BadPostDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "sometime last week"},
		{"too short", "2020"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPayload().
				Set("id", 101).
				Set("name", "How to Play").
				Set("post_date", tt.raw)

			v, err := NewVideo(p)
			if err != nil {
				t.Fatalf("NewVideo() error = %v", err)
			}
			if !v.PostDate.IsZero() {
				t.Errorf("PostDate = %v, want zero time", v.PostDate)
			}
		})
	}
}

func TestNewVideo_BadUploaderID(t *testing.T) {
	p := NewPayload().
		Set("id", 101).
		Set("name", "How to Play").
		Set("uploader_id", "n/a")

	v, err := NewVideo(p)
	if err != nil {
		t.Fatalf("NewVideo() error = %v", err)
	}
	if v.UploaderID != 0 {
		t.Errorf("UploaderID = %d, want 0", v.UploaderID)
	}
}

func TestNewVideo_RequiresIdentity(t *testing.T) {
	_, err := NewVideo(NewPayload().Set("name", "How to Play"))
	if err == nil {
		t.Fatal("expected error for missing id, got nil")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("expected ValidationError, got %T: %v", err, err)
	}
}

package boardgamegeek

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewVideoGame(t *testing.T) {
	p := itemPayload(69527, "Catan: The Computer Game").
		Set("platforms", []any{"Windows", "Mac", "Xbox 360"}).
		Set("videos", []any{
			NewPayload().Set("id", 501).Set("name", "Launch trailer"),
		}).
		Set("comments", []any{
			NewPayload().Set("username", "carol").Set("rating", "7").Set("comment", "Faithful port"),
		})

	g, err := NewVideoGame(p)
	if err != nil {
		t.Fatalf("NewVideoGame() error = %v", err)
	}
	if g.ID != 69527 {
		t.Errorf("ID = %d, want 69527", g.ID)
	}
	if want := []string{"Windows", "Mac", "Xbox 360"}; !reflect.DeepEqual(g.Platforms, want) {
		t.Errorf("Platforms = %v, want %v", g.Platforms, want)
	}
	if len(g.Videos) != 1 || g.Videos[0].ID != 501 {
		t.Errorf("Videos = %v, want one entry with id 501", g.Videos)
	}
	if len(g.Comments) != 1 || g.Comments[0].Username != "carol" {
		t.Errorf("Comments = %v, want one entry from carol", g.Comments)
	}
}

func TestNewVideoGame_MissingStats(t *testing.T) {
	p := NewPayload().
		Set("id", 69527).
		Set("name", "Catan: The Computer Game").
		Set("platforms", []any{"Windows"})

	_, err := NewVideoGame(p)
	if err == nil {
		t.Fatal("expected error for missing stats, got nil")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if valErr.Message != "'stats' missing in item data" {
		t.Errorf("Message = %q, want %q", valErr.Message, "'stats' missing in item data")
	}
}

func TestNewVideoGame_NoPlatforms(t *testing.T) {
	g, err := NewVideoGame(itemPayload(69527, "Catan: The Computer Game"))
	if err != nil {
		t.Fatalf("NewVideoGame() error = %v", err)
	}
	if len(g.Platforms) != 0 {
		t.Errorf("Platforms = %v, want empty", g.Platforms)
	}
}

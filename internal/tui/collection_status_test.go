package tui

import (
	"testing"

	bgg "github.com/arnauldvm/boardgamegeek"
)

func TestStatusConfigKeyRoundTrip(t *testing.T) {
	for _, s := range allStatuses {
		key := statusConfigKey(s)
		if key == "" {
			t.Errorf("statusConfigKey(%d) is empty", s)
			continue
		}
		if got := statusFromConfigKey(key); got != s {
			t.Errorf("statusFromConfigKey(%q) = %d, want %d", key, got, s)
		}
	}

	if got := statusFromConfigKey("bogus"); got != -1 {
		t.Errorf("statusFromConfigKey(bogus) = %d, want -1", got)
	}
}

func TestStatusLabelsComplete(t *testing.T) {
	if len(allStatuses) != int(statusCount) {
		t.Fatalf("allStatuses has %d entries, want %d", len(allStatuses), statusCount)
	}
	for _, s := range allStatuses {
		if statusLabel(s) == "" {
			t.Errorf("statusLabel(%d) is empty", s)
		}
	}
}

func TestItemMatchesStatus(t *testing.T) {
	tests := []struct {
		name   string
		item   bgg.CollectionBoardGame
		status CollectionStatus
		want   bool
	}{
		{"owned matches", bgg.CollectionBoardGame{Owned: true}, StatusOwned, true},
		{"owned does not match wishlist", bgg.CollectionBoardGame{Owned: true}, StatusWishlist, false},
		{"wishlist matches", bgg.CollectionBoardGame{Wishlist: true}, StatusWishlist, true},
		{"preordered matches", bgg.CollectionBoardGame{Preordered: true}, StatusPreordered, true},
		{"want to play matches", bgg.CollectionBoardGame{WantToPlay: true}, StatusWantToPlay, true},
		{"no flags match nothing", bgg.CollectionBoardGame{}, StatusOwned, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := itemMatchesStatus(&tt.item, tt.status); got != tt.want {
				t.Errorf("itemMatchesStatus(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

package boardgamegeek

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
)

func TestGetCollection(t *testing.T) {
	testData, err := os.ReadFile("testdata/collection_response.xml")
	if err != nil {
		t.Fatalf("failed to read test data: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request path
		if r.URL.Path != "/collection" {
			t.Errorf("expected path '/collection', got '%s'", r.URL.Path)
		}

		// Verify query parameters
		username := r.URL.Query().Get("username")
		if username != "testuser" {
			t.Errorf("expected username 'testuser', got '%s'", username)
		}

		stats := r.URL.Query().Get("stats")
		if stats != "1" {
			t.Errorf("expected stats '1', got '%s'", stats)
		}

		w.WriteHeader(http.StatusOK)
		w.Write(testData)
	}))
	defer server.Close()

	client := createTestClient(t, server)

	games, err := client.GetCollection(context.Background(), "testuser", CollectionOptions{})
	if err != nil {
		t.Fatalf("GetCollection failed: %v", err)
	}

	if len(games) != 3 {
		t.Fatalf("expected 3 items, got %d", len(games))
	}

	// Verify first item
	first := games[0]
	if first.ID != 13 {
		t.Errorf("expected ID 13, got %d", first.ID)
	}
	if first.Name != "CATAN" {
		t.Errorf("expected name 'CATAN', got '%s'", first.Name)
	}
	if first.YearPublished == nil || *first.YearPublished != 1995 {
		t.Errorf("expected YearPublished 1995, got %v", first.YearPublished)
	}
	if first.NumPlays != 23 {
		t.Errorf("expected NumPlays 23, got %d", first.NumPlays)
	}
	if !first.Owned {
		t.Error("expected Owned to be true")
	}
	if !first.WantToPlay {
		t.Error("expected WantToPlay to be true")
	}
	if first.Wishlist {
		t.Error("expected Wishlist to be false")
	}
	if first.Rating != 7.5 {
		t.Errorf("expected Rating 7.5, got %f", first.Rating)
	}
	if first.Stats.Average < 7.14 || first.Stats.Average > 7.16 {
		t.Errorf("expected Average ~7.15, got %f", first.Stats.Average)
	}
	if rank := first.BGGRank(); rank == nil || *rank != 429 {
		t.Errorf("expected BGGRank 429, got %v", rank)
	}
	if first.LastModified != "2024-09-13 10:59:47" {
		t.Errorf("unexpected LastModified: %s", first.LastModified)
	}
	if first.Comment != "House rules: friendly robber." {
		t.Errorf("unexpected Comment: %s", first.Comment)
	}
	if first.MinPlayers != 3 || first.MaxPlayers != 4 {
		t.Errorf("unexpected player bounds: %d-%d", first.MinPlayers, first.MaxPlayers)
	}

	// Verify the owned version
	v := first.Version()
	if v == nil {
		t.Fatal("expected a version, got nil")
	}
	if v.ID != 254188 {
		t.Errorf("expected version ID 254188, got %d", v.ID)
	}
	if v.ProductCode != "999-KOL25" {
		t.Errorf("expected product code '999-KOL25', got '%s'", v.ProductCode)
	}
	if v.Language != "Dutch" {
		t.Errorf("expected language 'Dutch', got '%s'", v.Language)
	}

	// Verify wishlist item
	second := games[1]
	if !second.PrevOwned {
		t.Error("expected PrevOwned to be true")
	}
	if !second.Wishlist {
		t.Error("expected Wishlist to be true")
	}
	if second.WishlistPriority != 2 {
		t.Errorf("expected WishlistPriority 2, got %d", second.WishlistPriority)
	}
	if second.Rating != 0 {
		t.Errorf("expected Rating 0 for 'N/A', got %f", second.Rating)
	}
	if second.Version() != nil {
		t.Error("expected nil version")
	}

	// Verify preordered item
	third := games[2]
	if !third.Want || !third.WantToBuy || !third.Preordered {
		t.Errorf("unexpected status flags: %+v", third)
	}
	if third.Rating != 9 {
		t.Errorf("expected Rating 9, got %f", third.Rating)
	}
	if third.NumPlays != 0 {
		t.Errorf("expected NumPlays 0, got %d", third.NumPlays)
	}
}

func TestGetCollection_Options(t *testing.T) {
	testData, err := os.ReadFile("testdata/collection_response.xml")
	if err != nil {
		t.Fatalf("failed to read test data: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("own") != "1" {
			t.Errorf("expected own '1', got '%s'", q.Get("own"))
		}
		if q.Get("wishlist") != "1" {
			t.Errorf("expected wishlist '1', got '%s'", q.Get("wishlist"))
		}
		if q.Get("excludesubtype") != "boardgameexpansion" {
			t.Errorf("expected excludesubtype 'boardgameexpansion', got '%s'", q.Get("excludesubtype"))
		}
		if q.Get("version") != "1" {
			t.Errorf("expected version '1', got '%s'", q.Get("version"))
		}

		w.WriteHeader(http.StatusOK)
		w.Write(testData)
	}))
	defer server.Close()

	client := createTestClient(t, server)

	opts := CollectionOptions{
		OwnedOnly:         true,
		WishlistOnly:      true,
		ExcludeExpansions: true,
		IncludeVersions:   true,
	}
	if _, err := client.GetCollection(context.Background(), "testuser", opts); err != nil {
		t.Fatalf("GetCollection failed: %v", err)
	}
}

func TestGetCollection_EmptyUsername(t *testing.T) {
	client, _ := NewClient(Config{Token: "test-token"})

	_, err := client.GetCollection(context.Background(), "", CollectionOptions{})
	if err == nil {
		t.Error("expected error for empty username")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected ParseError, got %T", err)
	}
}

func TestGetCollection_RetryOn202(t *testing.T) {
	testData, err := os.ReadFile("testdata/collection_response.xml")
	if err != nil {
		t.Fatalf("failed to read test data: %v", err)
	}

	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count := atomic.AddInt32(&requestCount, 1)

		// Return 202 for first 2 requests, then 200
		if count <= 2 {
			w.WriteHeader(http.StatusAccepted)
			w.Write([]byte(""))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(testData)
	}))
	defer server.Close()

	client := createTestClient(t, server)

	games, err := client.GetCollection(context.Background(), "testuser", CollectionOptions{})
	if err != nil {
		t.Fatalf("GetCollection failed: %v", err)
	}

	if len(games) != 3 {
		t.Errorf("expected 3 items, got %d", len(games))
	}

	if requestCount != 3 {
		t.Errorf("expected 3 requests (2 retries), got %d", requestCount)
	}
}

func TestGetCollectionJSON(t *testing.T) {
	testData, err := os.ReadFile("testdata/collection_response.xml")
	if err != nil {
		t.Fatalf("failed to read test data: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write(testData)
	}))
	defer server.Close()

	client := createTestClient(t, server)

	jsonStr, err := client.GetCollectionJSON(context.Background(), "testuser", CollectionOptions{})
	if err != nil {
		t.Fatalf("GetCollectionJSON failed: %v", err)
	}

	// Verify it's valid JSON
	var games []CollectionBoardGame
	if err := json.Unmarshal([]byte(jsonStr), &games); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if len(games) != 3 {
		t.Errorf("expected 3 items, got %d", len(games))
	}
}

func TestGetCollection_AuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := createTestClient(t, server)

	_, err := client.GetCollection(context.Background(), "testuser", CollectionOptions{})
	if err == nil {
		t.Error("expected error for unauthorized request")
	}
}

package wishlist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/morikazuSuma/symbol-grounding/internal/model"
)

func TestImageFetcher_SkipsExisting(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "AAAA000001.jpg"), []byte("old"), 0o644); err != nil {
		t.Fatalf("Failed to seed existing cover: %v", err)
	}

	entries := []Entry{
		{Item: model.Item{ID: "AAAA000001"}, ImageURL: server.URL + "/a.jpg"},
		{Item: model.Item{ID: "BBBB000002"}, ImageURL: server.URL + "/b.jpg"},
		{Item: model.Item{ID: "CCCC000003"}},
	}

	fetcher := NewImageFetcher(dir)
	written, err := fetcher.FetchAll(context.Background(), entries)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if written != 1 {
		t.Errorf("Expected 1 new cover, got %d", written)
	}
	if got := atomic.LoadInt32(&requests); got != 1 {
		t.Errorf("Expected 1 HTTP request, got %d", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "BBBB000002.jpg")); err != nil {
		t.Errorf("Expected new cover on disk: %v", err)
	}
}

func TestImageFetcher_ContinuesPastFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad.jpg" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	entries := []Entry{
		{Item: model.Item{ID: "AAAA000001"}, ImageURL: server.URL + "/bad.jpg"},
		{Item: model.Item{ID: "BBBB000002"}, ImageURL: server.URL + "/good.jpg"},
	}

	fetcher := NewImageFetcher(t.TempDir())
	written, err := fetcher.FetchAll(context.Background(), entries)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if written != 1 {
		t.Errorf("Expected 1 cover past the failure, got %d", written)
	}
}

func TestWriteData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	items := []model.Item{
		{ID: "B00ABCDE12", Image: "images/B00ABCDE12.jpg", URL: "https://www.amazon.co.jp/dp/B00ABCDE12", Title: "記号接地問題入門"},
	}

	if err := WriteData(path, items); err != nil {
		t.Fatalf("WriteData failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read catalog: %v", err)
	}
	var decoded []model.Item
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Catalog is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].ID != "B00ABCDE12" {
		t.Errorf("Unexpected catalog content: %+v", decoded)
	}
	if data[len(data)-1] != '\n' {
		t.Error("Expected trailing newline in catalog file")
	}
}

func TestUpdater_MergeExistingPreservesDialog(t *testing.T) {
	dir := t.TempDir()
	existing := []byte(`[
  {
    "id": "B00ABCDE12",
    "image": "images/B00ABCDE12.jpg",
    "url": "https://www.amazon.co.jp/dp/B00ABCDE12",
    "author": "今井むつみ",
    "dialog": {"summary": "あらすじ", "reason": "きっかけ"}
  }
]`)
	if err := os.WriteFile(filepath.Join(dir, model.DataPath), existing, 0o644); err != nil {
		t.Fatalf("Failed to seed data.json: %v", err)
	}

	u := NewUpdater(DefaultWishlistURL, dir)
	items := u.mergeExisting([]Entry{
		{Item: model.Item{ID: "B00ABCDE12", Title: "記号接地問題入門"}},
		{Item: model.Item{ID: "4001234567", Title: "ことばと身体"}},
	})

	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].Dialog.Form != model.DialogMapping {
		t.Errorf("Expected preserved mapping dialog, got form %v", items[0].Dialog.Form)
	}
	if items[0].Author != "今井むつみ" {
		t.Errorf("Expected preserved author, got %q", items[0].Author)
	}
	if items[1].Dialog.Form != model.DialogNone {
		t.Errorf("Expected no dialog on the new item, got form %v", items[1].Dialog.Form)
	}
}

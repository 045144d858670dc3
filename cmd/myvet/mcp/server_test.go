package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/proyectmyvet/myvet/internal/core/history"
	"github.com/proyectmyvet/myvet/internal/core/store"
)

func newTestCache(t *testing.T) *history.Cache {
	t.Helper()
	kv, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return history.New(kv)
}

func TestListHistoryHandler_LimitClamping(t *testing.T) {
	cache := newTestCache(t)
	for _, e := range []history.Entry{
		{ID: 1, Pet: "Coco", Reason: "vacuna", Date: "2026-08-01", Time: "10:00"},
		{ID: 2, Pet: "Luna", Reason: "control", Date: "2026-08-15", Time: "11:00"},
	} {
		if err := cache.Append(e); err != nil {
			t.Fatal(err)
		}
	}

	handler := makeListHistoryHandler(cache)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"negative clamps to default", -1, 2},
		{"zero clamps to default", 0, 2},
		{"positive truncates", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var request mcp.CallToolRequest
			request.Params.Arguments = map[string]any{"limit": tt.limit}

			result, err := handler(context.Background(), request)
			if err != nil {
				t.Fatalf("handler error = %v", err)
			}
			if result.IsError {
				t.Fatalf("tool call failed: %v", result.Content)
			}

			text, ok := result.Content[0].(mcp.TextContent)
			if !ok {
				t.Fatalf("Content[0] = %T, want TextContent", result.Content[0])
			}
			var payload struct {
				Entries []HistoryEntry `json:"entries"`
			}
			if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
				t.Fatalf("tool output is not JSON: %v", err)
			}
			if len(payload.Entries) != tt.want {
				t.Errorf("len(entries) = %d, want %d", len(payload.Entries), tt.want)
			}
		})
	}
}

package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

func TestRelevantContent(t *testing.T) {
	tests := []struct {
		ev   fsnotify.Event
		want bool
	}{
		{fsnotify.Event{Name: "/c/projects.yaml", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/c/about.md", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "/c/projects.yaml", Op: fsnotify.Rename}, true},
		{fsnotify.Event{Name: "/c/projects.yaml", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "/c/projects.yaml.swp", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		if got := relevantContent(tt.ev); got != tt.want {
			t.Errorf("relevantContent(%v) = %v, want %v", tt.ev, got, tt.want)
		}
	}
}

func TestWatchCatalogInvalidates(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, projectsFile, sampleCatalog)

	c := NewCatalog(dir, time.Hour)
	if _, err := c.Projects(); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := WatchCatalog(ctx, c, zap.NewNop()); err != nil {
		t.Fatalf("WatchCatalog: %v", err)
	}

	writeContent(t, dir, projectsFile, "projects: []\n")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		projects, err := c.Projects()
		if err == nil && len(projects) == 0 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("catalog was not reloaded after projects.yaml changed")
}

func TestWatchCatalogMissingDir(t *testing.T) {
	c := NewCatalog("/nonexistent/portfolio/content", time.Hour)
	if err := WatchCatalog(context.Background(), c, zap.NewNop()); err == nil {
		t.Fatal("expected error watching a missing directory")
	}
}

package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/forkful/pkg/recipe"
)

func TestWatchSeesCollectionWrites(t *testing.T) {
	cfg := &testConfig{path: t.TempDir()}
	p, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := p.Write(KeyBookmarks, []recipe.Recipe{{ID: "abc"}}); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("watch channel closed early")
			}
			if ev.Key == KeyBookmarks {
				return
			}
		case <-deadline:
			t.Fatalf("no event for bookmark write")
		}
	}
}

// A store built over a watched persistence relays change notifications, so
// a long-lived surface can reload collections written by another process.
func TestStoreWatchSeesForeignBookmarkWrite(t *testing.T) {
	cfg := &testConfig{path: t.TempDir()}
	p, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s := New(&fakeService{}, p)
	s.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	other, err := Open(cfg)
	if err != nil {
		t.Fatalf("open second handle: %v", err)
	}
	if err := other.Write(KeyBookmarks, []recipe.Recipe{{ID: "abc", Title: "Pizza"}}); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("watch channel closed early")
			}
			if ev.Key != KeyBookmarks {
				continue
			}
			s.Init()
			if len(s.Bookmarks) != 1 || s.Bookmarks[0].ID != "abc" {
				t.Fatalf("reload after change = %v", s.Bookmarks)
			}
			return
		case <-deadline:
			t.Fatalf("no event for bookmark write")
		}
	}
}

func TestWatchChannelClosesOnCancel(t *testing.T) {
	p, err := Open(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("channel not closed after cancel")
		}
	}
}

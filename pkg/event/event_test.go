package event

import (
	"testing"
	"time"
)

func TestNewIDMonotonic(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	prev := ""
	for i := 0; i < 100; i++ {
		id := NewID(now)
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
		if prev != "" && id <= prev {
			t.Fatalf("ids not increasing: %s after %s", id, prev)
		}
		prev = id
	}
}

func TestDateOnly(t *testing.T) {
	if got := DateOnly("2026-03-01T12:30:00Z"); got != "2026-03-01" {
		t.Fatalf("DateOnly = %q", got)
	}
	if got := DateOnly("2026-03-01"); got != "2026-03-01" {
		t.Fatalf("DateOnly mangled a bare date: %q", got)
	}
}

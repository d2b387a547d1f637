// Package event holds calendar events and the payloads exchanged with the
// scheduling surface.
package event

import (
	"strconv"
	"sync"
	"time"
)

// Event is a meal placed on the calendar. URL is a back-reference to the
// originating recipe, used only for navigation.
type Event struct {
	Title string `json:"title"`
	ID    string `json:"id"`
	Start string `json:"start"`
	URL   string `json:"url,omitempty"`
}

// DropInfo describes a scheduled meal dropped onto a calendar date.
type DropInfo struct {
	Title    string
	Date     string
	RecipeID string
}

// ChangeInfo describes an event moved or retitled on the calendar. Start may
// carry a time component; only the date part is kept.
type ChangeInfo struct {
	ID    string
	Title string
	Start string
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID derives an event id from the creation time in milliseconds. Ids are
// strictly increasing even when two events land in the same millisecond.
func NewID(now time.Time) string {
	idMu.Lock()
	defer idMu.Unlock()
	ms := now.UnixMilli()
	if ms <= lastID {
		ms = lastID + 1
	}
	lastID = ms
	return strconv.FormatInt(ms, 10)
}

// DateOnly truncates an ISO timestamp to its date component.
func DateOnly(start string) string {
	if len(start) > 10 && start[10] == 'T' {
		return start[:10]
	}
	return start
}

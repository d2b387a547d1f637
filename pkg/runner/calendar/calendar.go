package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/forkful/pkg/event"
	"tableflip.dev/forkful/pkg/printers"
	"tableflip.dev/forkful/pkg/store"
)

const layoutMonth = "2006-01"

type Show struct {
	Month  string
	ShowID bool

	Store *store.Store
}

func (n *Show) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not show calendar, no store")
	}

	on := time.Now()
	if n.Month != "" {
		parsed, err := time.Parse(layoutMonth, n.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", n.Month, err)
		}
		on = parsed
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Calendar(on, n.Store.Events)
	return nil
}

// Drop places a scheduled meal on a calendar date, the CLI's stand-in for
// dragging a list item onto the calendar widget.
type Drop struct {
	RecipeID string
	Date     string

	Store *store.Store
}

func (n *Drop) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not place meal, no store")
	}

	var title string
	for _, m := range n.Store.Schedules {
		if m.ID == n.RecipeID {
			title = m.Title
			break
		}
	}
	if title == "" {
		return fmt.Errorf("recipe %q is not a scheduled meal", n.RecipeID)
	}

	if _, err := time.Parse("2006-01-02", event.DateOnly(n.Date)); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", n.Date, err)
	}

	e := n.Store.AddEvent(event.DropInfo{
		Title:    title,
		Date:     n.Date,
		RecipeID: n.RecipeID,
	})

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(fmt.Sprintf("Placed %q on %s", e.Title, e.Start))

	show := Show{Month: e.Start[:len(layoutMonth)], Store: n.Store}
	return show.Do(ctx)
}

// Move changes an existing event's date (and optionally title).
type Move struct {
	EventID string
	Date    string
	Title   string

	Store *store.Store
}

func (n *Move) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not move event, no store")
	}

	title := n.Title
	if title == "" {
		for _, e := range n.Store.Events {
			if e.ID == n.EventID {
				title = e.Title
				break
			}
		}
	}

	if _, err := time.Parse("2006-01-02", event.DateOnly(n.Date)); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", n.Date, err)
	}

	n.Store.UpdateEvent(event.ChangeInfo{
		ID:    n.EventID,
		Title: title,
		Start: n.Date,
	})

	show := Show{Month: event.DateOnly(n.Date)[:len(layoutMonth)], Store: n.Store}
	return show.Do(ctx)
}

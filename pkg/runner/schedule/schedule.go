package schedule

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/forkful/pkg/printers"
	"tableflip.dev/forkful/pkg/store"
	"tableflip.dev/forkful/pkg/view"
)

type Add struct {
	ID     string
	ShowID bool

	Store *store.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not schedule, no store")
	}
	if n.Store.IsScheduled(n.ID) {
		return nil
	}

	if err := n.Store.LoadRecipe(ctx, n.ID); err != nil {
		return err
	}
	n.Store.AddSchedule(*n.Store.Recipe)

	list := List{ShowID: n.ShowID, Store: n.Store}
	return list.Do(ctx)
}

type Delete struct {
	ID     string
	ShowID bool

	Store *store.Store
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete schedule, no store")
	}
	n.Store.DeleteSchedule(n.ID)

	list := List{ShowID: n.ShowID, Store: n.Store}
	return list.Do(ctx)
}

type Clear struct {
	Store *store.Store
}

func (n *Clear) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not clear schedules, no store")
	}
	n.Store.ClearSchedules()

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Scheduled meals cleared")
	return nil
}

type List struct {
	ShowID bool
	HTML   bool

	Store *store.Store
}

func (n *List) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not list schedules, no store")
	}

	if n.HTML {
		v := view.NewScheduleView()
		v.Render(n.Store.Schedules)
		fmt.Println(v.Markup())
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Scheduled meals", len(n.Store.Schedules))
	pp.Recipes(n.Store.Schedules)
	return nil
}

package bookmark

import (
	"context"
	"errors"

	"tableflip.dev/forkful/pkg/printers"
	"tableflip.dev/forkful/pkg/store"
)

type Add struct {
	ID     string
	ShowID bool

	Store *store.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not bookmark, no store")
	}
	if n.Store.IsBookmarked(n.ID) {
		return nil
	}

	if err := n.Store.LoadRecipe(ctx, n.ID); err != nil {
		return err
	}
	n.Store.AddBookmark(*n.Store.Recipe)

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
		return errors.New("can not delete bookmark, no store")
	}
	n.Store.DeleteBookmark(n.ID)

	list := List{ShowID: n.ShowID, Store: n.Store}
	return list.Do(ctx)
}

type List struct {
	ShowID bool

	Store *store.Store
}

func (n *List) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not list bookmarks, no store")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Bookmarks", len(n.Store.Bookmarks))
	pp.Recipes(n.Store.Bookmarks)
	return nil
}

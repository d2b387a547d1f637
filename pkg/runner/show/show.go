package show

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/forkful/pkg/printers"
	"tableflip.dev/forkful/pkg/store"
	"tableflip.dev/forkful/pkg/view"
)

type Show struct {
	ID       string
	Servings int
	HTML     bool
	ShowID   bool

	Store *store.Store
}

func (n *Show) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not show, no store")
	}

	if err := n.Store.LoadRecipe(ctx, n.ID); err != nil {
		return err
	}
	if n.Servings > 0 {
		n.Store.UpdateServings(n.Servings)
	}

	if n.HTML {
		v := view.NewRecipeView()
		v.Render(n.Store.Recipe)
		fmt.Println(v.Markup())
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Recipe(n.Store.Recipe)
	return nil
}

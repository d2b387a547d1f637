package shopping

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/forkful/pkg/printers"
	"tableflip.dev/forkful/pkg/store"
	"tableflip.dev/forkful/pkg/view"
)

type Add struct {
	RecipeID string

	Store *store.Store
}

// Do fetches the recipe and merges its ingredients into the shopping list.
func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add ingredients, no store")
	}

	if err := n.Store.LoadRecipe(ctx, n.RecipeID); err != nil {
		return err
	}
	n.Store.AddIngredients(n.Store.Recipe.Ingredients)

	list := List{Store: n.Store}
	return list.Do(ctx)
}

type Delete struct {
	Index int
	Count int

	Store *store.Store
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete ingredient, no store")
	}
	n.Store.DeleteIngredient(n.Index, n.Count)

	list := List{Store: n.Store}
	return list.Do(ctx)
}

type Clear struct {
	Store *store.Store
}

func (n *Clear) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not clear shopping list, no store")
	}
	n.Store.DeleteIngredient(0, len(n.Store.ShoppingList))

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Shopping list cleared")
	return nil
}

type List struct {
	HTML bool

	Store *store.Store
}

func (n *List) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not list ingredients, no store")
	}

	if n.HTML {
		v := view.NewShoppingView()
		v.Render(n.Store.ShoppingList)
		fmt.Println(v.Markup())
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Shopping list")
	pp.ShoppingList(n.Store.ShoppingList)
	return nil
}

package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/forkful/pkg/paginate"
	"tableflip.dev/forkful/pkg/recipe"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" recipe")
	default:
		_, _ = c.Println(" recipes")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Recipe prints the full recipe detail.
func (pp *PrettyPrint) Recipe(r *recipe.Recipe) {
	if r == nil {
		pp.none()
		return
	}

	t := color.New(color.Bold, color.Underline)
	f := color.New(color.Faint)
	p := color.New()

	_, _ = t.Println(r.Title)
	_, _ = f.Printf("by %s", r.Publisher)
	marks := ""
	if r.Bookmarked {
		marks += "  [bookmarked]"
	}
	if r.Scheduled {
		marks += "  [scheduled]"
	}
	if marks != "" {
		_, _ = color.New(color.FgHiYellow).Print(marks)
	}
	_, _ = f.Println("")
	_, _ = p.Printf("%d minutes, %d servings\n\n", r.CookingTime, r.Servings)

	for _, ing := range r.Ingredients {
		pp.Ingredient(ing)
	}

	if pp.ShowID {
		_, _ = f.Printf("\nid: %s\n", r.ID)
	}
	_, _ = f.Printf("source: %s\n", r.SourceURL)
}

// Ingredient prints one "quantity unit description" row.
func (pp *PrettyPrint) Ingredient(ing recipe.Ingredient) {
	p := color.New()
	q := color.New(color.FgHiYellow)

	if ing.Quantity != nil {
		_, _ = q.Printf("%6s ", ing.Quantity)
	} else {
		_, _ = q.Print("       ")
	}
	if ing.Unit != "" {
		_, _ = p.Printf("%s ", ing.Unit)
	}
	_, _ = p.Printf("%s\n", ing.Description)
}

// Results prints one page of search results with the pagination controls
// below it.
func (pp *PrettyPrint) Results(page []recipe.SearchResult, pageNum, total int) {
	if len(page) == 0 {
		pp.none()
		return
	}

	p := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, res := range page {
		if pp.ShowID {
			_, _ = y.Printf("%-10s ", res.ID)
		}
		_, _ = p.Printf("%s ", res.Title)
		_, _ = color.New(color.Faint).Printf("(%s)\n", res.Publisher)
	}

	controls := paginate.PageControls(pageNum, total, 10)
	if controls.Indicator == "" {
		_, _ = p.Println("")
		return
	}
	f := color.New(color.Faint)
	_, _ = f.Print("\npage ", controls.Indicator)
	if controls.Prev {
		_, _ = f.Print("  [prev]")
	}
	if controls.Next {
		_, _ = f.Print("  [next]")
	}
	_, _ = f.Print("\n\n")
}

// ShoppingList prints the consolidated list as an indexed table.
func (pp *PrettyPrint) ShoppingList(items []recipe.Ingredient) {
	if len(items) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.AddRow("#", "QUANTITY", "UNIT", "INGREDIENT")
	for i, ing := range items {
		qty := ""
		if ing.Quantity != nil {
			qty = ing.Quantity.String()
		}
		table.AddRow(i, qty, ing.Unit, ing.Description)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Recipes prints a bookmark or schedule listing.
func (pp *PrettyPrint) Recipes(list []recipe.Recipe) {
	if len(list) == 0 {
		pp.none()
		return
	}

	p := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, r := range list {
		if pp.ShowID {
			_, _ = y.Printf("%-10s ", r.ID)
		}
		_, _ = p.Printf("%s ", r.Title)
		_, _ = color.New(color.Faint).Printf("(%s)\n", r.Publisher)
	}
	_, _ = p.Println("")
}

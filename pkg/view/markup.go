package view

import (
	"fmt"
	stdhtml "html"
	"strings"

	"tableflip.dev/forkful/pkg/paginate"
	"tableflip.dev/forkful/pkg/recipe"
)

func escape(s string) string { return stdhtml.EscapeString(s) }

func recipeMarkup(r *recipe.Recipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<figure class="recipe__fig"><img src="%s" alt="%s" class="recipe__img"/></figure>`,
		escape(r.Image), escape(r.Title))
	fmt.Fprintf(&b, `<h1 class="recipe__title"><span>%s</span></h1>`, escape(r.Title))

	fmt.Fprintf(&b, `<div class="recipe__details">`)
	fmt.Fprintf(&b, `<div class="recipe__info"><span class="recipe__info-data recipe__info-data--minutes">%d</span><span class="recipe__info-text">minutes</span></div>`,
		r.CookingTime)
	fmt.Fprintf(&b, `<div class="recipe__info"><span class="recipe__info-data recipe__info-data--people">%d</span><span class="recipe__info-text">servings</span></div>`,
		r.Servings)
	bookmarkState := "off"
	if r.Bookmarked {
		bookmarkState = "on"
	}
	scheduleState := "off"
	if r.Scheduled {
		scheduleState = "on"
	}
	fmt.Fprintf(&b, `<button class="btn--bookmark" data-marked="%s">bookmark</button>`, bookmarkState)
	fmt.Fprintf(&b, `<button class="btn--schedule" data-marked="%s">schedule</button>`, scheduleState)
	b.WriteString(`</div>`)

	b.WriteString(`<div class="recipe__ingredients"><ul class="recipe__ingredient-list">`)
	for _, ing := range r.Ingredients {
		b.WriteString(ingredientMarkup(ing))
	}
	b.WriteString(`</ul></div>`)

	fmt.Fprintf(&b, `<div class="recipe__directions"><p class="recipe__directions-text">Directions by <span class="recipe__publisher">%s</span></p><a class="recipe__btn" href="%s">How to cook it</a></div>`,
		escape(r.Publisher), escape(r.SourceURL))

	return b.String()
}

func ingredientMarkup(ing recipe.Ingredient) string {
	qty := ""
	if ing.Quantity != nil {
		qty = ing.Quantity.String()
	}
	return fmt.Sprintf(`<li class="recipe__ingredient"><div class="recipe__quantity">%s</div><div class="recipe__description"><span class="recipe__unit">%s</span>%s</div></li>`,
		escape(qty), escape(ing.Unit), escape(ing.Description))
}

func resultsMarkup(results []recipe.SearchResult, activeID string) string {
	var b strings.Builder
	for _, res := range results {
		cls := "preview__link"
		if res.ID == activeID {
			cls += " preview__link--active"
		}
		fmt.Fprintf(&b, `<li class="preview"><a class="%s" href="#%s"><figure class="preview__fig"><img src="%s" alt="%s"/></figure><div class="preview__data"><h4 class="preview__title">%s</h4><p class="preview__publisher">%s</p></div></a></li>`,
			cls, escape(res.ID), escape(res.Image), escape(res.Title), escape(res.Title), escape(res.Publisher))
	}
	return b.String()
}

// Paging is what the pagination view renders from.
type Paging struct {
	Page     int
	Total    int
	PageSize int
}

func paginationMarkup(p Paging) string {
	c := paginate.PageControls(p.Page, p.Total, p.PageSize)
	var b strings.Builder
	if c.Prev {
		fmt.Fprintf(&b, `<button data-goto="%d" class="btn--inline pagination__btn--prev"><span>Page %d</span></button>`,
			p.Page-1, p.Page-1)
	}
	if c.Indicator != "" {
		fmt.Fprintf(&b, `<div><h2 class="pages__number">%s</h2></div>`, c.Indicator)
	}
	if c.Next {
		fmt.Fprintf(&b, `<button data-goto="%d" class="btn--inline pagination__btn--next"><span>Page %d</span></button>`,
			p.Page+1, p.Page+1)
	}
	return b.String()
}

func shoppingMarkup(items []recipe.Ingredient) string {
	var b strings.Builder
	for i, ing := range items {
		qty := ""
		if ing.Quantity != nil {
			qty = ing.Quantity.String()
		}
		fmt.Fprintf(&b, `<li class="shopping__item" data-index="%d"><div class="shopping__count">%s %s</div><p class="shopping__description">%s</p><button class="shopping__delete btn--tiny">&times;</button></li>`,
			i, escape(qty), escape(ing.Unit), escape(ing.Description))
	}
	return b.String()
}

func scheduleMarkup(meals []recipe.Recipe) string {
	var b strings.Builder
	for _, m := range meals {
		// draggable marker lets the calendar surface pick list items up
		fmt.Fprintf(&b, `<li class="schedule__item draggable__el"><a class="schedule__link" href="#%s"><h4 class="schedule__title">%s</h4></a></li>`,
			escape(m.ID), escape(m.Title))
	}
	return b.String()
}

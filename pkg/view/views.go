package view

import "tableflip.dev/forkful/pkg/recipe"

// RecipeView renders the recipe detail region.
type RecipeView struct {
	base
}

func NewRecipeView() *RecipeView {
	return &RecipeView{base: newBase(
		"We could not find that recipe. Please try another one!", "")}
}

func (v *RecipeView) Render(r *recipe.Recipe) {
	if r == nil {
		v.RenderError()
		return
	}
	v.render(recipeMarkup(r))
}

// Update patches the live tree in place; servings changes and bookmark or
// schedule toggles keep every untouched node's identity.
func (v *RecipeView) Update(r *recipe.Recipe) {
	if r == nil {
		return
	}
	v.update(recipeMarkup(r))
}

// ResultsView renders a page of search results.
type ResultsView struct {
	base
	activeID string
}

func NewResultsView() *ResultsView {
	return &ResultsView{base: newBase(
		"No recipes found for your query. Please try again!", "")}
}

// SetActive marks the currently-open recipe so its row is highlighted.
func (v *ResultsView) SetActive(id string) { v.activeID = id }

func (v *ResultsView) Render(results []recipe.SearchResult) {
	if len(results) == 0 {
		v.RenderError()
		return
	}
	v.render(resultsMarkup(results, v.activeID))
}

func (v *ResultsView) Update(results []recipe.SearchResult) {
	v.update(resultsMarkup(results, v.activeID))
}

// PaginationView renders the page controls.
type PaginationView struct {
	base
}

func NewPaginationView() *PaginationView {
	return &PaginationView{base: newBase("", "")}
}

func (v *PaginationView) Render(p Paging) {
	v.render(paginationMarkup(p))
}

func (v *PaginationView) Update(p Paging) {
	v.update(paginationMarkup(p))
}

// ShoppingView renders the consolidated shopping list.
type ShoppingView struct {
	base
}

func NewShoppingView() *ShoppingView {
	return &ShoppingView{base: newBase(
		"No ingredients yet. Find a nice recipe and add its ingredients!", "")}
}

func (v *ShoppingView) Render(items []recipe.Ingredient) {
	if len(items) == 0 {
		v.RenderError()
		return
	}
	v.render(shoppingMarkup(items))
}

func (v *ShoppingView) Update(items []recipe.Ingredient) {
	v.update(shoppingMarkup(items))
}

// ScheduleView renders meals planned but not yet placed on the calendar.
type ScheduleView struct {
	base
}

func NewScheduleView() *ScheduleView {
	return &ScheduleView{base: newBase(
		"No scheduled meals yet. Schedule a recipe to plan your week!", "")}
}

func (v *ScheduleView) Render(meals []recipe.Recipe) {
	if len(meals) == 0 {
		v.RenderError()
		return
	}
	v.render(scheduleMarkup(meals))
}

func (v *ScheduleView) Update(meals []recipe.Recipe) {
	v.update(scheduleMarkup(meals))
}

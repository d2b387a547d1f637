package view

import (
	"strings"
	"testing"

	"tableflip.dev/forkful/pkg/dom"
	"tableflip.dev/forkful/pkg/recipe"
)

func testRecipe() *recipe.Recipe {
	return &recipe.Recipe{
		ID:          "abc123",
		Title:       "Pizza",
		Publisher:   "Closet Cooking",
		SourceURL:   "http://example.com",
		Image:       "pizza.jpg",
		Servings:    2,
		CookingTime: 45,
		Ingredients: []recipe.Ingredient{
			{Quantity: recipe.WholeQuantity(4), Unit: "cups", Description: "flour"},
		},
	}
}

func TestRecipeViewRenderAndUpdate(t *testing.T) {
	v := NewRecipeView()
	r := testRecipe()
	v.Render(r)

	before := dom.Elements(v.Container())
	if len(before) == 0 {
		t.Fatalf("nothing rendered")
	}
	if !strings.Contains(v.Text(), "Pizza") {
		t.Fatalf("render lost the title: %q", v.Text())
	}

	r.ScaleServings(4)
	v.Update(r)

	after := dom.Elements(v.Container())
	if len(before) != len(after) {
		t.Fatalf("update changed structure: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("update replaced node %d instead of patching", i)
		}
	}
	if !strings.Contains(v.Text(), "8") {
		t.Fatalf("scaled quantity not patched in: %q", v.Text())
	}
	if !strings.Contains(v.Text(), "4") {
		t.Fatalf("servings not patched in: %q", v.Text())
	}
}

func TestRecipeViewBookmarkToggle(t *testing.T) {
	v := NewRecipeView()
	r := testRecipe()
	v.Render(r)

	r.Bookmarked = true
	v.Update(r)

	var state string
	for _, el := range dom.Elements(v.Container()) {
		if cls, _ := dom.Attr(el, "class"); cls == "btn--bookmark" {
			state, _ = dom.Attr(el, "data-marked")
		}
	}
	if state != "on" {
		t.Fatalf("bookmark button data-marked = %q, want on", state)
	}
}

func TestRecipeViewNilRendersError(t *testing.T) {
	v := NewRecipeView()
	v.Render(nil)
	if !strings.Contains(v.Text(), "could not find") {
		t.Fatalf("expected error panel, got %q", v.Text())
	}
}

func TestResultsViewEmptyRendersError(t *testing.T) {
	v := NewResultsView()
	v.Render(nil)
	if !strings.Contains(v.Text(), "No recipes found") {
		t.Fatalf("expected error panel, got %q", v.Text())
	}
}

func TestResultsViewActiveHighlight(t *testing.T) {
	v := NewResultsView()
	v.SetActive("2")
	v.Render([]recipe.SearchResult{
		{ID: "1", Title: "A", Publisher: "P"},
		{ID: "2", Title: "B", Publisher: "Q"},
	})
	if !strings.Contains(v.Markup(), "preview__link--active") {
		t.Fatalf("active row not highlighted: %s", v.Markup())
	}
}

func TestPaginationView(t *testing.T) {
	v := NewPaginationView()

	v.Render(Paging{Page: 1, Total: 25, PageSize: 10})
	m := v.Markup()
	if strings.Contains(m, "pagination__btn--prev") {
		t.Fatalf("page 1 must not show prev: %s", m)
	}
	if !strings.Contains(m, "pagination__btn--next") || !strings.Contains(m, "1/3") {
		t.Fatalf("page 1 missing next or indicator: %s", m)
	}

	v.Render(Paging{Page: 3, Total: 25, PageSize: 10})
	m = v.Markup()
	if strings.Contains(m, "pagination__btn--next") {
		t.Fatalf("last page must not show next: %s", m)
	}
	if !strings.Contains(m, "pagination__btn--prev") {
		t.Fatalf("last page missing prev: %s", m)
	}

	v.Render(Paging{Page: 1, Total: 5, PageSize: 10})
	if m = v.Markup(); m != "" {
		t.Fatalf("single page must render nothing, got %s", m)
	}
}

func TestScheduleViewDraggableMarker(t *testing.T) {
	v := NewScheduleView()
	v.Render([]recipe.Recipe{{ID: "abc", Title: "Pizza"}})
	if !strings.Contains(v.Markup(), "draggable__el") {
		t.Fatalf("schedule items must carry the draggable marker: %s", v.Markup())
	}
}

func TestShoppingViewIndexes(t *testing.T) {
	v := NewShoppingView()
	v.Render([]recipe.Ingredient{
		{Quantity: recipe.WholeQuantity(3), Unit: "cups", Description: "flour"},
		{Quantity: nil, Unit: "", Description: "salt"},
	})
	m := v.Markup()
	if !strings.Contains(m, `data-index="0"`) || !strings.Contains(m, `data-index="1"`) {
		t.Fatalf("shopping rows must carry indexes: %s", m)
	}
}

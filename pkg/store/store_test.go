package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/forkful/pkg/event"
	"tableflip.dev/forkful/pkg/recipe"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string          { return c.path }
func (c *testConfig) APIURL() string            { return "" }
func (c *testConfig) APIKey() string            { return "" }
func (c *testConfig) APITimeout() time.Duration { return time.Second }

func testPersistence(t *testing.T) Persistence {
	t.Helper()
	p, err := Open(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open persistence: %v", err)
	}
	return p
}

type fakeService struct {
	recipes map[string]*recipe.Recipe
	results map[string][]recipe.SearchResult
	created *recipe.Recipe
	err     error

	// onSearch lets tests interleave mutations while a search is in flight.
	onSearch func()
}

func (f *fakeService) GetRecipe(_ context.Context, id string) (*recipe.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.recipes[id]
	if !ok {
		return nil, errors.New("no recipe with that id")
	}
	c := r.Clone()
	return &c, nil
}

func (f *fakeService) Search(_ context.Context, query string) ([]recipe.SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.onSearch != nil {
		f.onSearch()
	}
	return f.results[query], nil
}

func (f *fakeService) CreateRecipe(_ context.Context, r *recipe.Recipe) (*recipe.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	c := r.Clone()
	c.ID = "created-1"
	c.OwnerKey = "owner"
	f.created = &c
	return &c, nil
}

func pizza() recipe.Recipe {
	return recipe.Recipe{
		ID:          "abc123",
		Title:       "Pizza",
		Publisher:   "Closet Cooking",
		Servings:    2,
		CookingTime: 45,
		Ingredients: []recipe.Ingredient{
			{Quantity: recipe.WholeQuantity(4), Unit: "cups", Description: "flour"},
		},
	}
}

func TestBookmarkFlagTracksMembership(t *testing.T) {
	p := pizza()
	svc := &fakeService{recipes: map[string]*recipe.Recipe{p.ID: &p}}
	s := New(svc, testPersistence(t))
	s.Init()

	if err := s.LoadRecipe(context.Background(), "abc123"); err != nil {
		t.Fatalf("LoadRecipe: %v", err)
	}
	if s.Recipe.Bookmarked {
		t.Fatalf("fresh recipe should not be bookmarked")
	}

	s.AddBookmark(*s.Recipe)
	if !s.Recipe.Bookmarked || !s.IsBookmarked("abc123") {
		t.Fatalf("flag out of sync after add")
	}

	s.DeleteBookmark("abc123")
	if s.Recipe.Bookmarked || s.IsBookmarked("abc123") {
		t.Fatalf("flag out of sync after delete")
	}

	// arbitrary mutation order keeps the invariant
	s.AddBookmark(*s.Recipe)
	s.AddBookmark(recipe.Recipe{ID: "other"})
	s.DeleteBookmark("other")
	if !s.Recipe.Bookmarked {
		t.Fatalf("unrelated delete cleared the flag")
	}
}

func TestLoadRecipeSeesExistingBookmark(t *testing.T) {
	p := pizza()
	svc := &fakeService{recipes: map[string]*recipe.Recipe{p.ID: &p}}
	s := New(svc, testPersistence(t))
	s.Init()
	s.AddBookmark(p)

	if err := s.LoadRecipe(context.Background(), "abc123"); err != nil {
		t.Fatalf("LoadRecipe: %v", err)
	}
	if !s.Recipe.Bookmarked {
		t.Fatalf("bookmarked flag not derived from existing bookmark set")
	}
	if s.Recipe.Scheduled {
		t.Fatalf("scheduled flag wrongly set")
	}
}

func TestLoadRecipeFailureLeavesCurrent(t *testing.T) {
	p := pizza()
	svc := &fakeService{recipes: map[string]*recipe.Recipe{p.ID: &p}}
	s := New(svc, testPersistence(t))
	s.Init()

	if err := s.LoadRecipe(context.Background(), "abc123"); err != nil {
		t.Fatalf("LoadRecipe: %v", err)
	}
	if err := s.LoadRecipe(context.Background(), "missing"); err == nil {
		t.Fatalf("expected error for unknown id")
	}
	if s.Recipe == nil || s.Recipe.ID != "abc123" {
		t.Fatalf("failed load must leave previous recipe in place")
	}
}

func TestSearchPagination(t *testing.T) {
	results := make([]recipe.SearchResult, 25)
	for i := range results {
		results[i].ID = string(rune('a' + i))
	}
	svc := &fakeService{results: map[string][]recipe.SearchResult{"pizza": results}}
	s := New(svc, testPersistence(t))
	s.Init()

	if err := s.LoadSearchResults(context.Background(), "pizza"); err != nil {
		t.Fatalf("LoadSearchResults: %v", err)
	}
	if s.Search.Page != 1 {
		t.Fatalf("page not reset, got %d", s.Search.Page)
	}

	page := s.SearchResultsPage(2)
	if len(page) != 10 || page[0].ID != results[10].ID {
		t.Fatalf("page 2 wrong: %+v", page)
	}
	if s.Search.Page != 2 {
		t.Fatalf("current page not recorded")
	}

	// beyond the last page: empty, no error, results untouched
	if got := s.SearchResultsPage(99); len(got) != 0 {
		t.Fatalf("page past end should be empty, got %d items", len(got))
	}
	if len(s.Search.Results) != 25 {
		t.Fatalf("results were modified by paging")
	}

	// page 0 means current page
	s.Search.Page = 3
	if got := s.SearchResultsPage(0); len(got) != 5 {
		t.Fatalf("default page should be current, got %d items", len(got))
	}
}

func TestStaleSearchResponseDiscarded(t *testing.T) {
	svc := &fakeService{results: map[string][]recipe.SearchResult{
		"old": {{ID: "stale"}},
		"new": {{ID: "fresh"}},
	}}
	s := New(svc, testPersistence(t))
	s.Init()

	// while "old" is in flight, a newer query is recorded
	svc.onSearch = func() {
		svc.onSearch = nil
		s.Search.Query = "new"
	}
	if err := s.LoadSearchResults(context.Background(), "old"); err != nil {
		t.Fatalf("LoadSearchResults: %v", err)
	}
	if len(s.Search.Results) != 0 {
		t.Fatalf("stale response committed: %+v", s.Search.Results)
	}

	if err := s.LoadSearchResults(context.Background(), "new"); err != nil {
		t.Fatalf("LoadSearchResults: %v", err)
	}
	if len(s.Search.Results) != 1 || s.Search.Results[0].ID != "fresh" {
		t.Fatalf("fresh results lost: %+v", s.Search.Results)
	}
}

func TestUpdateServingsChained(t *testing.T) {
	p := pizza()
	svc := &fakeService{recipes: map[string]*recipe.Recipe{p.ID: &p}}
	s := New(svc, testPersistence(t))
	s.Init()
	if err := s.LoadRecipe(context.Background(), "abc123"); err != nil {
		t.Fatalf("LoadRecipe: %v", err)
	}

	s.UpdateServings(4)
	if got := s.Recipe.Ingredients[0].Quantity.String(); got != "8" || s.Recipe.Servings != 4 {
		t.Fatalf("after 2->4: qty=%s servings=%d", got, s.Recipe.Servings)
	}
	s.UpdateServings(6)
	if got := s.Recipe.Ingredients[0].Quantity.String(); got != "12" || s.Recipe.Servings != 6 {
		t.Fatalf("after 4->6: qty=%s servings=%d", got, s.Recipe.Servings)
	}
}

func TestAddIngredientsMergesByDescription(t *testing.T) {
	s := New(&fakeService{}, testPersistence(t))
	s.Init()

	s.AddIngredients([]recipe.Ingredient{
		{Quantity: recipe.WholeQuantity(1), Unit: "cups", Description: "flour"},
		{Quantity: recipe.WholeQuantity(2), Unit: "cups", Description: "flour"},
	})
	if len(s.ShoppingList) != 1 {
		t.Fatalf("expected one merged row, got %d", len(s.ShoppingList))
	}
	if got := s.ShoppingList[0].Quantity.String(); got != "3" {
		t.Fatalf("merged quantity = %s, want 3", got)
	}
}

func TestAddIngredientsCopiesStorage(t *testing.T) {
	s := New(&fakeService{}, testPersistence(t))
	s.Init()

	source := []recipe.Ingredient{{Quantity: recipe.WholeQuantity(2), Description: "sugar"}}
	s.AddIngredients(source)

	// merging more quantity into the list must not touch the source recipe
	s.AddIngredients([]recipe.Ingredient{{Quantity: recipe.WholeQuantity(5), Description: "sugar"}})
	if got := source[0].Quantity.String(); got != "2" {
		t.Fatalf("source ingredient mutated: %s", got)
	}
}

func TestDeleteIngredient(t *testing.T) {
	p := testPersistence(t)
	s := New(&fakeService{}, p)
	s.Init()

	s.AddIngredients([]recipe.Ingredient{
		{Description: "a"}, {Description: "b"}, {Description: "c"},
	})

	s.DeleteIngredient(1, 1)
	if len(s.ShoppingList) != 2 || s.ShoppingList[1].Description != "c" {
		t.Fatalf("delete middle failed: %+v", s.ShoppingList)
	}

	// out of range must clamp, not panic
	s.DeleteIngredient(5, 3)
	if len(s.ShoppingList) != 2 {
		t.Fatalf("out-of-range delete mutated the list")
	}
	s.DeleteIngredient(1, 99)
	if len(s.ShoppingList) != 1 {
		t.Fatalf("over-long count not clamped: %+v", s.ShoppingList)
	}

	// clear the whole list; the persisted value must be an empty array
	s.DeleteIngredient(0, len(s.ShoppingList))
	if len(s.ShoppingList) != 0 {
		t.Fatalf("list not cleared")
	}
	var stored []recipe.Ingredient
	ok, err := p.Read(KeyIngredients, &stored)
	if err != nil || !ok {
		t.Fatalf("read ingredients: ok=%v err=%v", ok, err)
	}
	if stored == nil || len(stored) != 0 {
		t.Fatalf("persisted value should be an empty array, got %v", stored)
	}
}

// A count of zero is a valid request to remove nothing, same as splicing
// zero elements; it must never collapse into removing one.
func TestDeleteIngredientCountZero(t *testing.T) {
	s := New(&fakeService{}, testPersistence(t))
	s.Init()

	s.AddIngredients([]recipe.Ingredient{
		{Description: "a"}, {Description: "b"}, {Description: "c"},
	})

	s.DeleteIngredient(1, 0)
	if len(s.ShoppingList) != 3 {
		t.Fatalf("count=0 must remove nothing, list = %+v", s.ShoppingList)
	}
	s.DeleteIngredient(1, -2)
	if len(s.ShoppingList) != 3 {
		t.Fatalf("negative count must clamp to zero, list = %+v", s.ShoppingList)
	}
	if s.ShoppingList[1].Description != "b" {
		t.Fatalf("middle item gone: %+v", s.ShoppingList)
	}
}

func TestRoundTripAllCollections(t *testing.T) {
	cfg := &testConfig{path: t.TempDir()}
	p, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s := New(&fakeService{}, p)
	s.Init()

	r := pizza()
	s.AddBookmark(r)
	s.AddSchedule(r)
	s.AddIngredients(r.Ingredients)
	s.AddEvent(event.DropInfo{Title: "Pizza", Date: "2026-09-01", RecipeID: "other"})

	// simulate a restart: fresh store over the same base path
	p2, err := Open(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	s2 := New(&fakeService{}, p2)
	s2.Init()

	if len(s2.Bookmarks) != 1 || s2.Bookmarks[0].ID != r.ID {
		t.Fatalf("bookmarks did not round trip: %+v", s2.Bookmarks)
	}
	if s2.Bookmarks[0].Ingredients[0].Quantity.String() != "4" {
		t.Fatalf("quantities did not round trip")
	}
	if len(s2.Schedules) != 1 || s2.Schedules[0].Title != "Pizza" {
		t.Fatalf("schedules did not round trip: %+v", s2.Schedules)
	}
	if len(s2.ShoppingList) != 1 || s2.ShoppingList[0].Description != "flour" {
		t.Fatalf("shopping list did not round trip: %+v", s2.ShoppingList)
	}
	if len(s2.Events) != 1 || s2.Events[0].Title != "Pizza" {
		t.Fatalf("events did not round trip: %+v", s2.Events)
	}
}

func TestInitRecoversFromMalformedData(t *testing.T) {
	cfg := &testConfig{path: t.TempDir()}
	p, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := p.Write(KeyBookmarks, "not-an-array"); err != nil {
		t.Fatalf("seed malformed data: %v", err)
	}

	s := New(&fakeService{}, p)
	s.Init() // must not panic or propagate
	if len(s.Bookmarks) != 0 {
		t.Fatalf("malformed key should leave empty default")
	}
}

func TestAddEventRemovesSchedule(t *testing.T) {
	p := testPersistence(t)
	s := New(&fakeService{}, p)
	s.Init()

	r := pizza()
	s.AddSchedule(r)

	e := s.AddEvent(event.DropInfo{Title: "  Pizza \n", Date: "2026-09-01T00:00:00Z", RecipeID: r.ID})
	if e.Title != "Pizza" {
		t.Fatalf("title not trimmed: %q", e.Title)
	}
	if e.Start != "2026-09-01" {
		t.Fatalf("start not reduced to date: %q", e.Start)
	}
	if e.URL != "#abc123" {
		t.Fatalf("back-reference wrong: %q", e.URL)
	}
	if len(s.Schedules) != 0 {
		t.Fatalf("placed meal still pending scheduling")
	}

	// both collections were persisted inside the one operation
	var events []event.Event
	if ok, err := p.Read(KeyEvents, &events); err != nil || !ok || len(events) != 1 {
		t.Fatalf("events not persisted: ok=%v err=%v", ok, err)
	}
	var schedules []recipe.Recipe
	if ok, err := p.Read(KeySchedules, &schedules); err != nil || !ok || len(schedules) != 0 {
		t.Fatalf("schedules not persisted: ok=%v err=%v n=%d", ok, err, len(schedules))
	}
}

func TestUpdateEvent(t *testing.T) {
	s := New(&fakeService{}, testPersistence(t))
	s.Init()

	e := s.AddEvent(event.DropInfo{Title: "Pizza", Date: "2026-09-01", RecipeID: "abc123"})

	s.UpdateEvent(event.ChangeInfo{ID: e.ID, Title: "Pizza night", Start: "2026-09-03T18:00:00Z"})
	if s.Events[0].Title != "Pizza night" || s.Events[0].Start != "2026-09-03" {
		t.Fatalf("event not updated: %+v", s.Events[0])
	}

	// unknown id: silent no-op
	s.UpdateEvent(event.ChangeInfo{ID: "missing", Title: "x", Start: "2026-01-01"})
	if len(s.Events) != 1 || s.Events[0].Title != "Pizza night" {
		t.Fatalf("unknown id mutated events: %+v", s.Events)
	}
}

func TestClearSchedulesPersistsEmpty(t *testing.T) {
	p := testPersistence(t)
	s := New(&fakeService{}, p)
	s.Init()

	s.AddSchedule(pizza())
	s.ClearSchedules()

	var stored []recipe.Recipe
	ok, err := p.Read(KeySchedules, &stored)
	if err != nil || !ok {
		t.Fatalf("read schedules: ok=%v err=%v", ok, err)
	}
	if stored == nil || len(stored) != 0 {
		t.Fatalf("persisted schedules should be an empty array, got %v", stored)
	}
}

func TestUploadRecipe(t *testing.T) {
	svc := &fakeService{}
	s := New(svc, testPersistence(t))
	s.Init()

	err := s.UploadRecipe(context.Background(), Upload{
		Title:       "My Pie",
		SourceURL:   "http://example.com",
		Image:       "pie.jpg",
		Publisher:   "Me",
		CookingTime: 30,
		Servings:    4,
		Ingredients: []IngredientRow{
			{Quantity: "0.5", Unit: "kg", Description: "apples"},
			{}, // fully empty rows are skipped
			{Quantity: "", Unit: "", Description: "cinnamon"},
		},
	})
	if err != nil {
		t.Fatalf("UploadRecipe: %v", err)
	}

	if svc.created == nil || len(svc.created.Ingredients) != 2 {
		t.Fatalf("wrong ingredients sent: %+v", svc.created)
	}
	if svc.created.Ingredients[0].Quantity.String() != "1/2" {
		t.Fatalf("quantity not parsed exactly")
	}
	if svc.created.Ingredients[1].Quantity != nil {
		t.Fatalf("empty quantity should be nil")
	}

	// uploading auto-bookmarks and makes the created recipe current
	if s.Recipe == nil || s.Recipe.ID != "created-1" {
		t.Fatalf("created recipe not current: %+v", s.Recipe)
	}
	if !s.Recipe.Bookmarked || !s.IsBookmarked("created-1") {
		t.Fatalf("created recipe not auto-bookmarked")
	}
}

func TestUploadRecipeBadQuantity(t *testing.T) {
	svc := &fakeService{}
	s := New(svc, testPersistence(t))
	s.Init()

	err := s.UploadRecipe(context.Background(), Upload{
		Title:       "Bad",
		Ingredients: []IngredientRow{{Quantity: "lots", Description: "flour"}},
	})
	if err == nil {
		t.Fatalf("expected error for unparsable quantity")
	}
	if svc.created != nil {
		t.Fatalf("nothing should have been sent")
	}
	if s.Recipe != nil {
		t.Fatalf("failed upload must not mutate the store")
	}
}

// Package store owns all mutable application state: the recipe being
// viewed, paginated search results, bookmarks, the shopping list, scheduled
// meals, and calendar events. Every mutation of a long-lived collection is
// followed by a synchronous write of that collection to persistence, so the
// two never diverge across an operation boundary.
package store

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"tableflip.dev/forkful/pkg/api"
	"tableflip.dev/forkful/pkg/event"
	"tableflip.dev/forkful/pkg/paginate"
	"tableflip.dev/forkful/pkg/recipe"
)

// ResultsPerPage is the fixed search page size.
const ResultsPerPage = 10

// SearchState holds the latest query and its results. Results are ephemeral
// and rebuilt on each search; only the long-lived collections persist.
type SearchState struct {
	Query   string
	Results []recipe.SearchResult
	Page    int
}

// RecipeService is the remote collaborator the store fetches from.
type RecipeService interface {
	GetRecipe(ctx context.Context, id string) (*recipe.Recipe, error)
	Search(ctx context.Context, query string) ([]recipe.SearchResult, error)
	CreateRecipe(ctx context.Context, r *recipe.Recipe) (*recipe.Recipe, error)
}

// Store is the application state store. It is built by the composition root
// and passed down; there is no package-level state.
type Store struct {
	Recipe       *recipe.Recipe
	Search       SearchState
	Bookmarks    []recipe.Recipe
	ShoppingList []recipe.Ingredient
	Schedules    []recipe.Recipe
	Events       []event.Event

	service RecipeService
	db      Persistence
}

// New wires a store to its service and persistence. Call Init to restore
// the persisted collections.
func New(service RecipeService, db Persistence) *Store {
	return &Store{
		Search:  SearchState{Page: 1},
		service: service,
		db:      db,
	}
}

// Init restores the four persisted collections. A missing or unparsable key
// leaves that collection at its empty default; failures never propagate.
func (s *Store) Init() {
	s.restore(KeyBookmarks, &s.Bookmarks)
	s.restore(KeyIngredients, &s.ShoppingList)
	s.restore(KeySchedules, &s.Schedules)
	s.restore(KeyEvents, &s.Events)
}

// Watch surfaces persistence change notifications so long-lived surfaces
// can reload when another process mutates the same profile.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	if s.db == nil {
		return nil, nil
	}
	return s.db.Watch(ctx)
}

func (s *Store) restore(key string, v any) {
	if s.db == nil {
		return
	}
	if _, err := s.db.Read(key, v); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
	}
}

// LoadRecipe replaces the current recipe with a fresh fetch and recomputes
// its derived flags against the bookmark and schedule sets. On failure the
// previous current recipe is left in place; nothing was mutated.
func (s *Store) LoadRecipe(ctx context.Context, id string) error {
	r, err := s.service.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	s.Recipe = r
	s.refreshFlags()
	return nil
}

// LoadSearchResults records the query, fetches, and on success replaces the
// results and resets to page one. The query is recorded before the call
// resolves so it is displayable even for the empty state. A response for a
// query that is no longer the latest recorded one is discarded.
func (s *Store) LoadSearchResults(ctx context.Context, query string) error {
	s.Search.Query = query

	results, err := s.service.Search(ctx, query)
	if err != nil {
		return err
	}
	if s.Search.Query != query {
		// a newer search superseded this one while it was in flight
		return nil
	}
	s.Search.Results = results
	s.Search.Page = 1
	return nil
}

// SearchResultsPage returns the requested 1-based page of results and
// records it as the current page. Page 0 means "the current page". A page
// past the end is empty, never an error.
func (s *Store) SearchResultsPage(page int) []recipe.SearchResult {
	if page <= 0 {
		page = s.Search.Page
	}
	s.Search.Page = page
	return paginate.Slice(s.Search.Results, page, ResultsPerPage)
}

// UpdateServings rescales the current recipe. The store does not validate
// the new value; callers guard newServings > 0.
func (s *Store) UpdateServings(newServings int) {
	if s.Recipe == nil {
		return
	}
	s.Recipe.ScaleServings(newServings)
}

// AddBookmark stores a recipe snapshot in the bookmark set and persists it.
func (s *Store) AddBookmark(r recipe.Recipe) {
	s.Bookmarks = append(s.Bookmarks, r.Clone())
	if s.Recipe != nil && s.Recipe.ID == r.ID {
		s.Recipe.Bookmarked = true
	}
	s.persist(KeyBookmarks, s.Bookmarks)
}

// DeleteBookmark removes the bookmark by id and persists. Unknown ids are
// a no-op.
func (s *Store) DeleteBookmark(id string) {
	for i, b := range s.Bookmarks {
		if b.ID == id {
			s.Bookmarks = append(s.Bookmarks[:i], s.Bookmarks[i+1:]...)
			break
		}
	}
	if s.Recipe != nil && s.Recipe.ID == id {
		s.Recipe.Bookmarked = false
	}
	s.persist(KeyBookmarks, s.Bookmarks)
}

// IsBookmarked reports membership in the bookmark set.
func (s *Store) IsBookmarked(id string) bool {
	for _, b := range s.Bookmarks {
		if b.ID == id {
			return true
		}
	}
	return false
}

// AddSchedule stores a recipe snapshot in the pending-meal set.
func (s *Store) AddSchedule(r recipe.Recipe) {
	s.Schedules = append(s.Schedules, r.Clone())
	if s.Recipe != nil && s.Recipe.ID == r.ID {
		s.Recipe.Scheduled = true
	}
	s.persist(KeySchedules, s.Schedules)
}

// DeleteSchedule removes the scheduled meal by id.
func (s *Store) DeleteSchedule(id string) {
	for i, m := range s.Schedules {
		if m.ID == id {
			s.Schedules = append(s.Schedules[:i], s.Schedules[i+1:]...)
			break
		}
	}
	if s.Recipe != nil && s.Recipe.ID == id {
		s.Recipe.Scheduled = false
	}
	s.persist(KeySchedules, s.Schedules)
}

// ClearSchedules empties the pending-meal set unconditionally.
func (s *Store) ClearSchedules() {
	s.Schedules = []recipe.Recipe{}
	if s.Recipe != nil {
		s.Recipe.Scheduled = false
	}
	s.persist(KeySchedules, s.Schedules)
}

// IsScheduled reports membership in the pending-meal set.
func (s *Store) IsScheduled(id string) bool {
	for _, m := range s.Schedules {
		if m.ID == id {
			return true
		}
	}
	return false
}

// AddIngredients merges ingredients into the shopping list. Items sharing a
// description have their quantities summed instead of duplicating the row;
// new rows are deep copies so later list edits never touch the originating
// recipe.
func (s *Store) AddIngredients(ingredients []recipe.Ingredient) {
	for _, ing := range ingredients {
		merged := false
		for i := range s.ShoppingList {
			if s.ShoppingList[i].Description == ing.Description {
				s.ShoppingList[i].Quantity = s.ShoppingList[i].Quantity.Add(ing.Quantity)
				merged = true
				break
			}
		}
		if !merged {
			copies := recipe.CloneIngredients([]recipe.Ingredient{ing})
			s.ShoppingList = append(s.ShoppingList, copies[0])
		}
	}
	s.persist(KeyIngredients, s.ShoppingList)
}

// DeleteIngredient removes count contiguous items starting at index.
// Out-of-range arguments are clamped; a count of zero removes nothing and
// (0, len) clears the list.
func (s *Store) DeleteIngredient(index, count int) {
	if count < 0 {
		count = 0
	}
	if index < 0 {
		index = 0
	}
	if index >= len(s.ShoppingList) {
		s.persist(KeyIngredients, s.ShoppingList)
		return
	}
	end := index + count
	if end > len(s.ShoppingList) {
		end = len(s.ShoppingList)
	}
	s.ShoppingList = append(s.ShoppingList[:index], s.ShoppingList[end:]...)
	s.persist(KeyIngredients, s.ShoppingList)
}

// AddEvent synthesizes a calendar event from a drop payload and appends it.
// A meal placed on the calendar is no longer pending scheduling, so the
// matching schedule entry is removed. Both collections are persisted here,
// in one operation.
func (s *Store) AddEvent(drop event.DropInfo) event.Event {
	e := event.Event{
		Title: strings.TrimSpace(drop.Title),
		ID:    event.NewID(time.Now()),
		Start: event.DateOnly(drop.Date),
		URL:   "#" + drop.RecipeID,
	}
	s.Events = append(s.Events, e)
	s.persist(KeyEvents, s.Events)
	s.DeleteSchedule(drop.RecipeID)
	return e
}

// UpdateEvent overwrites an event's title and start date. Unknown event ids
// are a silent no-op.
func (s *Store) UpdateEvent(change event.ChangeInfo) {
	for i := range s.Events {
		if s.Events[i].ID != change.ID {
			continue
		}
		s.Events[i].Title = change.Title
		s.Events[i].Start = event.DateOnly(change.Start)
		s.persist(KeyEvents, s.Events)
		return
	}
}

// IngredientRow is one explicit upload form row.
type IngredientRow struct {
	Quantity    string `mapstructure:"quantity"`
	Unit        string `mapstructure:"unit"`
	Description string `mapstructure:"description"`
}

// Upload is the boundary shape for a user-submitted recipe.
type Upload struct {
	Title       string          `mapstructure:"title"`
	SourceURL   string          `mapstructure:"sourceUrl"`
	Image       string          `mapstructure:"image"`
	Publisher   string          `mapstructure:"publisher"`
	CookingTime int             `mapstructure:"cookingTime"`
	Servings    int             `mapstructure:"servings"`
	Ingredients []IngredientRow `mapstructure:"ingredients"`
}

// UploadRecipe posts a user-submitted recipe. Rows with no content are
// skipped; a row with an unparsable quantity fails before anything is sent.
// The created recipe becomes the current recipe and is auto-bookmarked.
func (s *Store) UploadRecipe(ctx context.Context, up Upload) error {
	ingredients := make([]recipe.Ingredient, 0, len(up.Ingredients))
	for _, row := range up.Ingredients {
		if row.Quantity == "" && row.Unit == "" && row.Description == "" {
			continue
		}
		qty, err := recipe.ParseQuantity(row.Quantity)
		if err != nil {
			return &api.UploadError{Err: err}
		}
		ingredients = append(ingredients, recipe.Ingredient{
			Quantity:    qty,
			Unit:        row.Unit,
			Description: row.Description,
		})
	}

	created, err := s.service.CreateRecipe(ctx, &recipe.Recipe{
		Title:       up.Title,
		SourceURL:   up.SourceURL,
		Image:       up.Image,
		Publisher:   up.Publisher,
		CookingTime: up.CookingTime,
		Servings:    up.Servings,
		Ingredients: ingredients,
	})
	if err != nil {
		return err
	}

	s.Recipe = created
	s.refreshFlags()
	s.AddBookmark(*created)
	return nil
}

// ClearStorage erases a persisted collection without touching in-memory
// state; used by maintenance commands.
func (s *Store) ClearStorage(key string) error {
	if s.db == nil {
		return nil
	}
	return s.db.Erase(key)
}

// refreshFlags recomputes the current recipe's derived flags from the
// bookmark and schedule sets.
func (s *Store) refreshFlags() {
	if s.Recipe == nil {
		return
	}
	s.Recipe.Bookmarked = s.IsBookmarked(s.Recipe.ID)
	s.Recipe.Scheduled = s.IsScheduled(s.Recipe.ID)
}

// persist writes one collection through to the adapter. Writes are
// fire-and-forget: a failure is reported on stderr, not surfaced.
func (s *Store) persist(key string, v any) {
	if s.db == nil {
		return
	}
	if err := s.db.Write(key, v); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
	}
}

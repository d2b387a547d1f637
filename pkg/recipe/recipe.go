package recipe

// Recipe is the in-memory recipe shape. Bookmarked and Scheduled are derived
// from collection membership, never set directly by callers.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Publisher   string       `json:"publisher"`
	SourceURL   string       `json:"sourceUrl"`
	Image       string       `json:"image"`
	Servings    int          `json:"servings"`
	CookingTime int          `json:"cookingTime"`
	Ingredients []Ingredient `json:"ingredients"`
	OwnerKey    string       `json:"key,omitempty"`
	Bookmarked  bool         `json:"bookmarked,omitempty"`
	Scheduled   bool         `json:"scheduled,omitempty"`
}

// Ingredient identity when merging lists is the description, not the struct.
type Ingredient struct {
	Quantity    *Quantity `json:"quantity"`
	Unit        string    `json:"unit"`
	Description string    `json:"description"`
}

// SearchResult is a Recipe projection with ingredients omitted.
type SearchResult struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Image     string `json:"image"`
	OwnerKey  string `json:"key,omitempty"`
}

// ScaleServings rescales every ingredient quantity by
// newServings/currentServings, then records the new servings count. The
// previous servings value is the scaling denominator, so this is safe to
// chain. Guarding newServings > 0 is the caller's job.
func (r *Recipe) ScaleServings(newServings int) {
	old := r.Servings
	if old == 0 {
		r.Servings = newServings
		return
	}
	for i := range r.Ingredients {
		r.Ingredients[i].Quantity = r.Ingredients[i].Quantity.Scale(int64(newServings), int64(old))
	}
	r.Servings = newServings
}

// Clone returns a deep copy; ingredient quantities are duplicated so the
// copy never shares storage with the source.
func (r *Recipe) Clone() Recipe {
	c := *r
	c.Ingredients = CloneIngredients(r.Ingredients)
	return c
}

// CloneIngredients deep-copies an ingredient list.
func CloneIngredients(ings []Ingredient) []Ingredient {
	if ings == nil {
		return nil
	}
	out := make([]Ingredient, len(ings))
	for i, ing := range ings {
		out[i] = ing
		if ing.Quantity != nil {
			q := *ing.Quantity
			out[i].Quantity = &q
		}
	}
	return out
}

package api

import "tableflip.dev/forkful/pkg/recipe"

// Wire field names differ from the in-memory model (source_url, image_url,
// cooking_time); translation happens here in both directions.

type envelope struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Data    struct {
		Recipe  *wireRecipe  `json:"recipe,omitempty"`
		Recipes []wireResult `json:"recipes,omitempty"`
	} `json:"data"`
}

type wireRecipe struct {
	ID          string           `json:"id,omitempty"`
	Title       string           `json:"title"`
	Publisher   string           `json:"publisher"`
	SourceURL   string           `json:"source_url"`
	ImageURL    string           `json:"image_url"`
	Servings    int              `json:"servings"`
	CookingTime int              `json:"cooking_time"`
	Ingredients []wireIngredient `json:"ingredients"`
	Key         string           `json:"key,omitempty"`
}

type wireIngredient struct {
	Quantity    *recipe.Quantity `json:"quantity"`
	Unit        string           `json:"unit"`
	Description string           `json:"description"`
}

type wireResult struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	ImageURL  string `json:"image_url"`
	Key       string `json:"key,omitempty"`
}

func fromWire(w *wireRecipe) *recipe.Recipe {
	r := &recipe.Recipe{
		ID:          w.ID,
		Title:       w.Title,
		Publisher:   w.Publisher,
		SourceURL:   w.SourceURL,
		Image:       w.ImageURL,
		Servings:    w.Servings,
		CookingTime: w.CookingTime,
		OwnerKey:    w.Key,
	}
	for _, ing := range w.Ingredients {
		r.Ingredients = append(r.Ingredients, recipe.Ingredient{
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			Description: ing.Description,
		})
	}
	return r
}

func toWire(r *recipe.Recipe) *wireRecipe {
	w := &wireRecipe{
		Title:       r.Title,
		Publisher:   r.Publisher,
		SourceURL:   r.SourceURL,
		ImageURL:    r.Image,
		Servings:    r.Servings,
		CookingTime: r.CookingTime,
	}
	for _, ing := range r.Ingredients {
		w.Ingredients = append(w.Ingredients, wireIngredient{
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			Description: ing.Description,
		})
	}
	return w
}

func fromWireResults(list []wireResult) []recipe.SearchResult {
	results := make([]recipe.SearchResult, 0, len(list))
	for _, w := range list {
		results = append(results, recipe.SearchResult{
			ID:        w.ID,
			Title:     w.Title,
			Publisher: w.Publisher,
			Image:     w.ImageURL,
			OwnerKey:  w.Key,
		})
	}
	return results
}

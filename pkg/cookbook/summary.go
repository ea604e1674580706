package cookbook

import (
	"context"
	"sort"
)

// IngredientQuantity is one line of a Summary.
type IngredientQuantity struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Summary is the resolved view of a single recipe.
type Summary struct {
	Name        string               `json:"name" yaml:"name"`
	CookTime    int                  `json:"cookTime" yaml:"cookTime"`
	Ingredients []IngredientQuantity `json:"ingredients" yaml:"ingredients"`
}

// Summarize resolves one unit of the named recipe. The name must exist
// (ErrReferenceNotFound) and be a recipe (ErrNotARecipe); ingredients are
// returned sorted by name.
func (r *Resolver) Summarize(name string) (*Summary, error) {
	return r.SummarizeContext(context.Background(), name)
}

// SummarizeContext is Summarize bounded by ctx.
func (r *Resolver) SummarizeContext(ctx context.Context, name string) (*Summary, error) {
	entry, ok := r.store.FindByName(name)
	if !ok {
		return nil, newError(ErrReferenceNotFound, map[string]any{"name": name})
	}
	if entry.GetType() != EntryTypeRecipe {
		return nil, newError(ErrNotARecipe, map[string]any{
			"name": name,
			"type": string(entry.GetType()),
		})
	}

	res, err := r.ResolveContext(ctx, name, 1)
	if err != nil {
		return nil, err
	}

	return newSummary(name, res), nil
}

func newSummary(name string, res *Resolution) *Summary {
	s := &Summary{
		Name:        name,
		CookTime:    res.CookTime,
		Ingredients: make([]IngredientQuantity, 0, len(res.Ingredients)),
	}
	for n, q := range res.Ingredients {
		s.Ingredients = append(s.Ingredients, IngredientQuantity{Name: n, Quantity: q})
	}
	sort.Slice(s.Ingredients, func(i, j int) bool {
		return s.Ingredients[i].Name < s.Ingredients[j].Name
	})
	return s
}

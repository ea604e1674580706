package cookbook

import (
	"context"
	"log/slog"
	"time"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
)

// ctxCheckInterval is the number of expansion steps between context checks.
const ctxCheckInterval = 1024

// Resolution is the flattened form of an entry: the total quantity of each
// base ingredient and the total cook time.
type Resolution struct {
	Ingredients map[string]int `json:"ingredients" yaml:"ingredients"`
	CookTime    int            `json:"cookTime" yaml:"cookTime"`
}

// Resolver expands recipes against a Store.
type Resolver struct {
	store *Store
}

// NewResolver returns a resolver reading from store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve expands quantity units of the named entry into base ingredients.
//
// An ingredient resolves to itself with cookTime * quantity. A recipe
// resolves each required item with its quantity multiplied by quantity and
// sums the results. Any missing reference fails the whole resolution with
// ErrReferenceNotFound; re-entering a recipe already being expanded fails
// with ErrCyclicReference. No partial result is returned on failure.
func (r *Resolver) Resolve(name string, quantity int) (*Resolution, error) {
	return r.ResolveContext(context.Background(), name, quantity)
}

// ResolveContext is Resolve bounded by ctx. Shared sub-recipes are expanded
// once per path, so wide graphs can take a long time; when ctx ends first
// the resolution fails with a TIMEOUT error.
func (r *Resolver) ResolveContext(ctx context.Context, name string, quantity int) (*Resolution, error) {
	start := time.Now()
	defer func() {
		resolutionDuration.Observe(time.Since(start).Seconds())
	}()

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	w := &walker{
		ctx:    ctx,
		store:  r.store,
		active: make(map[string]bool),
		result: &Resolution{Ingredients: make(map[string]int)},
	}

	if err := w.expand(name, quantity); err != nil {
		resolutionsTotal.WithLabelValues(resultFailure).Inc()
		slog.Debug("resolution failed",
			"name", name,
			"quantity", quantity,
			"reason", ReasonOf(err),
		)
		return nil, err
	}

	resolutionsTotal.WithLabelValues(resultSuccess).Inc()
	return w.result, nil
}

// walker performs one depth-first expansion. path and active track the
// recipes currently being expanded; an entry reached again through a sibling
// branch is not on the path and is expanded normally.
type walker struct {
	ctx    context.Context
	steps  int
	store  *Store
	path   []string
	active map[string]bool
	result *Resolution
}

func (w *walker) expand(name string, quantity int) error {
	w.steps++
	if w.steps%ctxCheckInterval == 0 {
		if err := w.ctx.Err(); err != nil {
			return cberrors.WrapWithContext(cberrors.ErrCodeTimeout, "resolution did not complete", err,
				map[string]any{"name": name, "steps": w.steps})
		}
	}

	if w.active[name] {
		cycle := make([]string, len(w.path)+1)
		copy(cycle, w.path)
		cycle[len(cycle)-1] = name
		return newError(ErrCyclicReference, map[string]any{
			"name": name,
			"path": cycle,
		})
	}

	entry, ok := w.store.lookup(name)
	if !ok {
		fields := map[string]any{"name": name}
		if len(w.path) > 0 {
			fields["requiredBy"] = w.path[len(w.path)-1]
		}
		return newError(ErrReferenceNotFound, fields)
	}

	switch e := entry.(type) {
	case *Ingredient:
		w.result.Ingredients[e.Name] += quantity
		w.result.CookTime += e.CookTime * quantity
		return nil

	case *Recipe:
		w.active[e.Name] = true
		w.path = append(w.path, e.Name)

		for _, item := range e.RequiredItems {
			if err := w.expand(item.Name, item.Quantity*quantity); err != nil {
				return err
			}
		}

		w.path = w.path[:len(w.path)-1]
		delete(w.active, e.Name)
		return nil

	default:
		return newError(ErrInvalidType, map[string]any{"name": name})
	}
}

package cookbook

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
)

func newTestStore(t *testing.T, descs ...EntryDescriptor) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Load(descs))
	return s
}

func TestResolveIngredientLinearity(t *testing.T) {
	s := newTestStore(t, ingredient("Egg", 5))
	r := NewResolver(s)

	for _, k := range []int{0, 1, 2, 7, 100} {
		t.Run(fmt.Sprintf("quantity %d", k), func(t *testing.T) {
			res, err := r.Resolve("Egg", k)
			require.NoError(t, err)
			assert.Equal(t, map[string]int{"Egg": k}, res.Ingredients)
			assert.Equal(t, 5*k, res.CookTime)
		})
	}
}

func TestResolveLazyReference(t *testing.T) {
	s := newTestStore(t, recipe("Omelette", item("Egg", 3)))
	r := NewResolver(s)

	_, err := r.Resolve("Omelette", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	v, ok := cberrors.ContextValue(err, "name")
	require.True(t, ok)
	assert.Equal(t, "Egg", v)

	v, ok = cberrors.ContextValue(err, "requiredBy")
	require.True(t, ok)
	assert.Equal(t, "Omelette", v)

	_, err = s.AddEntry(ingredient("Egg", 5))
	require.NoError(t, err)

	res, err := r.Resolve("Omelette", 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Egg": 3}, res.Ingredients)
	assert.Equal(t, 15, res.CookTime)
}

func TestResolveSumsSharedIngredients(t *testing.T) {
	s := newTestStore(t,
		ingredient("Egg", 5),
		recipe("Bread", item("Egg", 2)),
		recipe("Sandwich", item("Bread", 2), item("Egg", 1)),
	)

	res, err := NewResolver(s).Resolve("Sandwich", 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Egg": 5}, res.Ingredients)
	assert.Equal(t, 25, res.CookTime)
}

func TestResolveMultipliesQuantities(t *testing.T) {
	s := newTestStore(t,
		ingredient("Beef", 5),
		ingredient("Egg", 3),
		ingredient("Flour", 0),
		recipe("Meatball", item("Beef", 2), item("Egg", 1)),
		recipe("Pasta", item("Flour", 2), item("Egg", 1)),
		recipe("Spaghetti", item("Meatball", 3), item("Pasta", 1)),
	)
	r := NewResolver(s)

	res, err := r.Resolve("Spaghetti", 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Beef": 6, "Egg": 4, "Flour": 2}, res.Ingredients)
	assert.Equal(t, 6*5+4*3, res.CookTime)

	res, err = r.Resolve("Spaghetti", 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Beef": 12, "Egg": 8, "Flour": 4}, res.Ingredients)
	assert.Equal(t, 2*(6*5+4*3), res.CookTime)
}

func TestResolveOrderIndependence(t *testing.T) {
	base := []EntryDescriptor{
		ingredient("Egg", 5),
		ingredient("Milk", 1),
		ingredient("Flour", 2),
		recipe("Batter", item("Flour", 2), item("Milk", 1), item("Egg", 1)),
	}

	orders := [][]RequiredItem{
		{item("Batter", 2), item("Egg", 1), item("Milk", 3)},
		{item("Milk", 3), item("Batter", 2), item("Egg", 1)},
		{item("Egg", 1), item("Milk", 3), item("Batter", 2)},
	}

	var first *Resolution
	for i, items := range orders {
		descs := append(append([]EntryDescriptor{}, base...), recipe("Pancake", items...))
		res, err := NewResolver(newTestStore(t, descs...)).Resolve("Pancake", 1)
		require.NoError(t, err)
		if i == 0 {
			first = res
			continue
		}
		assert.Equal(t, first, res, "order %d", i)
	}

	assert.Equal(t, map[string]int{"Egg": 3, "Milk": 5, "Flour": 4}, first.Ingredients)
}

func TestResolveFailurePropagation(t *testing.T) {
	s := newTestStore(t,
		ingredient("Egg", 5),
		recipe("Filling", item("Cheese", 1)),
		recipe("Pie", item("Egg", 2), item("Crust", 1)),
		recipe("Crust", item("Egg", 1), item("Filling", 1)),
	)

	res, err := NewResolver(s).Resolve("Pie", 1)
	require.Error(t, err)
	assert.Nil(t, res, "no partial result on failure")
	assert.ErrorIs(t, err, ErrReferenceNotFound)
	assert.Equal(t, "ReferenceNotFound", ReasonOf(err))

	v, _ := cberrors.ContextValue(err, "name")
	assert.Equal(t, "Cheese", v)
}

func TestResolveMissingTopLevel(t *testing.T) {
	_, err := NewResolver(NewStore()).Resolve("Nothing", 1)
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestResolveEmptyRecipe(t *testing.T) {
	s := newTestStore(t, recipe("Water"))

	res, err := NewResolver(s).Resolve("Water", 4)
	require.NoError(t, err)
	assert.Empty(t, res.Ingredients)
	assert.Equal(t, 0, res.CookTime)
}

func TestResolveNegativeAndZeroQuantities(t *testing.T) {
	s := newTestStore(t,
		ingredient("Egg", 5),
		ingredient("Salt", 1),
		recipe("Odd", item("Egg", -2), item("Salt", 0)),
	)

	res, err := NewResolver(s).Resolve("Odd", 3)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Egg": -6, "Salt": 0}, res.Ingredients)
	assert.Equal(t, -30, res.CookTime)
}

func TestResolveCycles(t *testing.T) {
	tests := []struct {
		name     string
		descs    []EntryDescriptor
		target   string
		wantPath []string
	}{
		{
			name:     "self reference",
			descs:    []EntryDescriptor{recipe("Soup", item("Soup", 1))},
			target:   "Soup",
			wantPath: []string{"Soup", "Soup"},
		},
		{
			name: "two node cycle",
			descs: []EntryDescriptor{
				recipe("Chicken", item("Egg", 1)),
				recipe("Egg", item("Chicken", 1)),
			},
			target:   "Chicken",
			wantPath: []string{"Chicken", "Egg", "Chicken"},
		},
		{
			name: "cycle below the target",
			descs: []EntryDescriptor{
				ingredient("Salt", 1),
				recipe("Meal", item("Salt", 1), item("Stock", 1)),
				recipe("Stock", item("Broth", 1)),
				recipe("Broth", item("Stock", 2)),
			},
			target:   "Meal",
			wantPath: []string{"Meal", "Stock", "Broth", "Stock"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewResolver(newTestStore(t, tt.descs...)).Resolve(tt.target, 1)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrCyclicReference)
			assert.Equal(t, "CyclicReference", ReasonOf(err))

			path, ok := cberrors.ContextValue(err, "path")
			require.True(t, ok)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestResolveDiamondIsNotACycle(t *testing.T) {
	s := newTestStore(t,
		ingredient("Butter", 2),
		recipe("Dough", item("Butter", 1)),
		recipe("Crust", item("Dough", 1)),
		recipe("Lid", item("Dough", 2)),
		recipe("Pie", item("Crust", 1), item("Lid", 1)),
	)

	res, err := NewResolver(s).Resolve("Pie", 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Butter": 3}, res.Ingredients)
	assert.Equal(t, 6, res.CookTime)
}

func TestResolveContextCanceled(t *testing.T) {
	// Each level requires the next one twice, so expanding Level0 takes
	// 2^13 steps.
	descs := []EntryDescriptor{ingredient("Level13", 1)}
	for i := 12; i >= 0; i-- {
		next := fmt.Sprintf("Level%d", i+1)
		descs = append(descs, recipe(fmt.Sprintf("Level%d", i), item(next, 1), item(next+"Twin", 1)))
		descs = append(descs, recipe(next+"Twin", item(next, 1)))
	}
	s := newTestStore(t, descs...)
	r := NewResolver(s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.ResolveContext(ctx, "Level0", 1)
	require.Error(t, err)
	assert.Equal(t, cberrors.ErrCodeTimeout, cberrors.CodeOf(err))
	assert.ErrorIs(t, err, context.Canceled)

	res, err := r.Resolve("Level0", 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Level13": 1 << 13}, res.Ingredients)
}

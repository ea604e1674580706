// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cookbook holds the in-memory entry store and the recipe resolver.
//
// # Entries
//
// An entry is either an Ingredient, an atomic item with a fixed cook time,
// or a Recipe, a list of required items that each name another entry and a
// quantity. Names are unique across both kinds.
//
// Entries arrive as loosely typed EntryDescriptor values (decoded from JSON
// or YAML) and are converted into an Ingredient or Recipe exactly once, when
// Store.AddEntry accepts them. Validation runs in a fixed order and the first
// failing check rejects the descriptor without touching the store:
//
//  1. type must be "recipe" or "ingredient" (ErrInvalidType)
//  2. name must not be empty (ErrInvalidName)
//  3. name must not already exist (ErrDuplicateName)
//  4. an ingredient's cookTime must be a non-negative integer (ErrInvalidCookTime)
//  5. a recipe must not list the same required item twice (ErrDuplicateRequiredItem)
//
// Required item names are not checked against the store when a recipe is
// added; a recipe may reference entries that are added later.
//
// # Resolution
//
// Resolver.Resolve expands a name and a quantity into the total quantity of
// every base ingredient and the total cook time. Quantities multiply down
// each level and contributions reaching the same ingredient through several
// branches are summed. A missing reference anywhere in the tree fails the
// whole resolution with ErrReferenceNotFound. A recipe that requires itself,
// directly or through other recipes, fails with ErrCyclicReference.
//
// Resolver.Summarize is the top-level entry point used by the API: the name
// must exist and be a recipe (ErrNotARecipe otherwise), and the result is
// returned as a name-sorted ingredient list.
//
// # Usage
//
//	store := cookbook.NewStore()
//	if _, err := store.AddEntry(cookbook.EntryDescriptor{
//	    Type:     cookbook.EntryTypeIngredient,
//	    Name:     "Egg",
//	    CookTime: 5,
//	}); err != nil {
//	    return err
//	}
//
//	summary, err := cookbook.NewResolver(store).Summarize("Omelette")
//
// # Errors
//
// All failures are *errors.StructuredError values with code INVALID_REQUEST
// wrapping one of the sentinel errors above, so callers can use errors.Is and
// HTTP handlers map them to 400 responses. ReasonOf returns the short kind
// name (for example "DuplicateName") that is reported in the response
// details.
//
// # Concurrency
//
// Store is safe for concurrent use. Inserts take a write lock and a whole
// resolution runs under a single read lock, so no insert is observed midway
// through a traversal.
package cookbook

package cookbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// EntryType discriminates the two kinds of cookbook entries.
type EntryType string

const (
	EntryTypeRecipe     EntryType = "recipe"
	EntryTypeIngredient EntryType = "ingredient"
)

// IsValid reports whether t is one of the known entry types.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeRecipe, EntryTypeIngredient:
		return true
	default:
		return false
	}
}

// Entry is a named item held by the Store: either *Ingredient or *Recipe.
type Entry interface {
	GetName() string
	GetType() EntryType
	// Descriptor returns the entry in its wire form.
	Descriptor() EntryDescriptor
}

// Ingredient is an atomic entry with a fixed cook time.
type Ingredient struct {
	Name     string
	CookTime int
}

func (i *Ingredient) GetName() string { return i.Name }

func (i *Ingredient) GetType() EntryType { return EntryTypeIngredient }

func (i *Ingredient) Descriptor() EntryDescriptor {
	return EntryDescriptor{
		Type:     EntryTypeIngredient,
		Name:     i.Name,
		CookTime: i.CookTime,
	}
}

// Recipe is a composite entry made of other entries.
type Recipe struct {
	Name          string
	RequiredItems []RequiredItem
}

func (r *Recipe) GetName() string { return r.Name }

func (r *Recipe) GetType() EntryType { return EntryTypeRecipe }

func (r *Recipe) Descriptor() EntryDescriptor {
	items := make([]RequiredItem, len(r.RequiredItems))
	copy(items, r.RequiredItems)
	return EntryDescriptor{
		Type:          EntryTypeRecipe,
		Name:          r.Name,
		RequiredItems: items,
	}
}

// RequiredItem references another entry by name with a quantity multiplier.
type RequiredItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// EntryDescriptor is the loosely typed form of an entry as submitted by
// clients or listed in a catalogue document.
//
// CookTime is left untyped so that a missing value, a fractional number and
// a non-numeric value can each be told apart from a valid integer.
type EntryDescriptor struct {
	Type          EntryType      `json:"type" yaml:"type"`
	Name          string         `json:"name" yaml:"name"`
	CookTime      any            `json:"cookTime,omitempty" yaml:"cookTime,omitempty"`
	RequiredItems []RequiredItem `json:"requiredItems,omitempty" yaml:"requiredItems,omitempty"`
}

// UnmarshalJSON reads only the exact keys type, name, cookTime and
// requiredItems. encoding/json would otherwise match "TYPE" or "Name" to the
// struct tags, letting a body without a type key through. cookTime keeps its
// json.Number form.
func (d *EntryDescriptor) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var out EntryDescriptor
	if err := decodeField(fields, "type", &out.Type); err != nil {
		return err
	}
	if err := decodeField(fields, "name", &out.Name); err != nil {
		return err
	}
	if err := decodeField(fields, "cookTime", &out.CookTime); err != nil {
		return err
	}
	if err := decodeField(fields, "requiredItems", &out.RequiredItems); err != nil {
		return err
	}

	*d = out
	return nil
}

// UnmarshalJSON reads only the exact keys name and quantity.
func (ri *RequiredItem) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var out RequiredItem
	if err := decodeField(fields, "name", &out.Name); err != nil {
		return err
	}
	if err := decodeField(fields, "quantity", &out.Quantity); err != nil {
		return err
	}

	*ri = out
	return nil
}

// decodeField decodes fields[key] into v when the key is present. Numbers
// are kept as json.Number when v is an interface.
func decodeField(fields map[string]json.RawMessage, key string, v any) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid %q: %w", key, err)
	}
	return nil
}

// cookTimeValue converts a decoded cookTime into an int. It accepts Go
// integers, json.Number and float64 values as long as they are integral.
func cookTimeValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return intFromInt64(n)
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		return intFromFloat(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return intFromInt64(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return intFromFloat(f)
	default:
		return 0, false
	}
}

func intFromInt64(n int64) (int, bool) {
	if n > math.MaxInt || n < math.MinInt {
		return 0, false
	}
	return int(n), true
}

func intFromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return intFromInt64(int64(f))
}

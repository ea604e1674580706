package cookbook

import (
	"fmt"
	"log/slog"
	"sync"
)

// Store holds cookbook entries indexed by name. Entries are append-only and
// immutable once added. The zero value is not usable; call NewStore.
type Store struct {
	mu      sync.RWMutex
	byName  map[string]Entry
	entries []Entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		byName: make(map[string]Entry),
	}
}

// AddEntry validates desc and, when every check passes, stores it as a new
// Ingredient or Recipe. On rejection the store is left unchanged and the
// returned error wraps one of ErrInvalidType, ErrInvalidName,
// ErrDuplicateName, ErrInvalidCookTime or ErrDuplicateRequiredItem.
func (s *Store) AddEntry(desc EntryDescriptor) (Entry, error) {
	entry, err := s.add(desc)
	if err != nil {
		entriesRejected.WithLabelValues(ReasonOf(err)).Inc()
		slog.Debug("entry rejected",
			"name", desc.Name,
			"type", desc.Type,
			"reason", ReasonOf(err),
		)
		return nil, err
	}

	entriesAdded.WithLabelValues(string(entry.GetType())).Inc()
	slog.Debug("entry added",
		"name", entry.GetName(),
		"type", entry.GetType(),
	)
	return entry, nil
}

func (s *Store) add(desc EntryDescriptor) (Entry, error) {
	if !desc.Type.IsValid() {
		return nil, newError(ErrInvalidType, map[string]any{
			"type": string(desc.Type),
		})
	}

	if desc.Name == "" {
		return nil, newError(ErrInvalidName, nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[desc.Name]; exists {
		return nil, newError(ErrDuplicateName, map[string]any{
			"name": desc.Name,
		})
	}

	entry, err := toEntry(desc)
	if err != nil {
		return nil, err
	}

	s.byName[desc.Name] = entry
	s.entries = append(s.entries, entry)
	return entry, nil
}

// toEntry converts a descriptor with a valid type into its variant.
func toEntry(desc EntryDescriptor) (Entry, error) {
	switch desc.Type {
	case EntryTypeIngredient:
		if desc.CookTime == nil {
			return nil, newError(ErrInvalidCookTime, map[string]any{
				"name": desc.Name,
			})
		}
		cookTime, ok := cookTimeValue(desc.CookTime)
		if !ok || cookTime < 0 {
			return nil, newError(ErrInvalidCookTime, map[string]any{
				"name":     desc.Name,
				"cookTime": fmt.Sprintf("%v", desc.CookTime),
			})
		}
		return &Ingredient{Name: desc.Name, CookTime: cookTime}, nil

	case EntryTypeRecipe:
		seen := make(map[string]bool, len(desc.RequiredItems))
		items := make([]RequiredItem, 0, len(desc.RequiredItems))
		for _, item := range desc.RequiredItems {
			if seen[item.Name] {
				return nil, newError(ErrDuplicateRequiredItem, map[string]any{
					"name": desc.Name,
					"item": item.Name,
				})
			}
			seen[item.Name] = true
			items = append(items, item)
		}
		return &Recipe{Name: desc.Name, RequiredItems: items}, nil

	default:
		return nil, newError(ErrInvalidType, map[string]any{
			"type": string(desc.Type),
		})
	}
}

// FindByName returns the entry stored under name.
func (s *Store) FindByName(name string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(name)
}

// lookup expects the caller to hold s.mu.
func (s *Store) lookup(name string) (Entry, bool) {
	e, ok := s.byName[name]
	return e, ok
}

// Entries returns all entries in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Load adds descs in order and stops at the first rejected descriptor.
// Entries accepted before the failure remain in the store.
func (s *Store) Load(descs []EntryDescriptor) error {
	for i, desc := range descs {
		if _, err := s.AddEntry(desc); err != nil {
			return fmt.Errorf("entry %d (%q): %w", i, desc.Name, err)
		}
	}
	return nil
}

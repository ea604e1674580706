package cookbook

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/mchmarny/cookbook/pkg/header"
	"github.com/mchmarny/cookbook/pkg/serializer"
)

//go:embed data/catalogue.yaml
var sampleCatalogue []byte

// Catalogue is a document listing entry descriptors, used to seed a store
// and to export its contents.
type Catalogue struct {
	header.Header `yaml:",inline"`

	Entries []EntryDescriptor `json:"entries" yaml:"entries"`
}

// NewCatalogue exports the entries of store in insertion order.
func NewCatalogue(store *Store, version string) *Catalogue {
	c := &Catalogue{}
	c.Init(header.KindCatalogue, version)

	entries := store.Entries()
	c.Entries = make([]EntryDescriptor, 0, len(entries))
	for _, e := range entries {
		c.Entries = append(c.Entries, e.Descriptor())
	}
	return c
}

// Validate checks the document header.
func (c *Catalogue) Validate() error {
	if c == nil {
		return fmt.Errorf("catalogue is nil")
	}
	if err := c.Header.Validate(header.KindCatalogue); err != nil {
		return fmt.Errorf("invalid catalogue: %w", err)
	}
	return nil
}

// Apply loads the catalogue entries into store in document order.
func (c *Catalogue) Apply(store *Store) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := store.Load(c.Entries); err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}
	return nil
}

// LoadCatalogue reads a catalogue document from a file path or http(s) URL.
// JSON or YAML is picked from the path extension.
func LoadCatalogue(ctx context.Context, path string) (*Catalogue, error) {
	c, err := serializer.FromFile[Catalogue](ctx, path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("catalogue loaded",
		"path", path,
		"entries", len(c.Entries),
	)
	return c, nil
}

// SampleCatalogue returns the catalogue bundled with the binary.
func SampleCatalogue() (*Catalogue, error) {
	r, err := serializer.NewReader(serializer.FormatYAML, bytes.NewReader(sampleCatalogue))
	if err != nil {
		return nil, err
	}

	var c Catalogue
	if err := r.Deserialize(&c); err != nil {
		return nil, fmt.Errorf("failed to decode sample catalogue: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// NewStoreFromCatalogue returns a store seeded from the catalogue at path.
// An empty path seeds the store from the bundled sample catalogue.
func NewStoreFromCatalogue(ctx context.Context, path string) (*Store, error) {
	var (
		c   *Catalogue
		err error
	)
	if path == "" {
		c, err = SampleCatalogue()
	} else {
		c, err = LoadCatalogue(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	store := NewStore()
	if err := c.Apply(store); err != nil {
		return nil, err
	}
	return store, nil
}

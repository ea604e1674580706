package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath picks a format from the extension of a file path or of the
// path component of an http(s) URL: .json is JSON, .yaml and .yml are YAML,
// .table and .txt are table. Anything else is JSON.
func FormatFromPath(p string) Format {
	if isRemote(p) {
		if u, err := url.Parse(p); err == nil {
			p = u.Path
		}
	}

	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".table", ".txt":
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "path", p)
		return FormatJSON
	}
}

// Reader decodes a JSON or YAML document. Readers returned by NewFileReader
// own their input and must be closed.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

func readable(format Format) error {
	switch format {
	case FormatJSON, FormatYAML:
		return nil
	case FormatTable:
		return fmt.Errorf("table format does not support deserialization")
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// NewReader returns a Reader over input. If input is an io.Closer, Close
// closes it.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if err := readable(format); err != nil {
		return nil, err
	}
	r := &Reader{format: format, input: input}
	if c, ok := input.(io.Closer); ok {
		r.closer = c
	}
	return r, nil
}

// NewFileReader opens a local file, or fetches an http(s) URL into memory.
func NewFileReader(ctx context.Context, format Format, filePath string) (*Reader, error) {
	if err := readable(format); err != nil {
		return nil, err
	}

	if isRemote(filePath) {
		data, err := NewHTTPReader().Fetch(ctx, filePath)
		if err != nil {
			return nil, err
		}
		return &Reader{format: format, input: bytes.NewReader(data)}, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Reader{format: format, input: file, closer: file}, nil
}

func isRemote(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// Deserialize decodes one document into v, which must be a pointer. JSON
// numbers decode as json.Number.
func (r *Reader) Deserialize(v any) error {
	if r == nil || r.input == nil {
		return fmt.Errorf("reader has no input")
	}

	switch r.format {
	case FormatJSON:
		dec := json.NewDecoder(r.input)
		dec.UseNumber()
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return readable(r.format)
	}
	return nil
}

// Close releases the input. It is safe to call more than once.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile loads a file path or http(s) URL into a new T, choosing the
// format with FormatFromPath.
//
//	cat, err := FromFile[cookbook.Catalogue](ctx, "catalogue.yaml")
func FromFile[T any](ctx context.Context, path string) (*T, error) {
	format := FormatFromPath(path)
	slog.Debug("loading document", "path", path, "format", format)

	rd, err := NewFileReader(ctx, format, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	defer func() {
		if err := rd.Close(); err != nil {
			slog.Warn("failed to close reader", "path", path, "error", err)
		}
	}()

	var v T
	if err := rd.Deserialize(&v); err != nil {
		return nil, fmt.Errorf("failed to deserialize %q: %w", path, err)
	}
	return &v, nil
}

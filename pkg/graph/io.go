package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Vertex Map Serialization API
// =============================================================================

// MarshalData converts a vertex map to indented JSON bytes.
// encoding/json sorts map keys, so output is deterministic.
func MarshalData(d Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDataTo(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteData writes a vertex map as JSON to an io.Writer.
func WriteData(d Data, w io.Writer) error {
	return writeDataTo(d, w)
}

// WriteFile writes the graph's vertex map to a JSON file. A failed close is
// reported like a failed write.
func WriteFile(g *Graph, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return writeDataTo(g.Vertices(), f)
}

// ReadData decodes and validates a JSON vertex map.
func ReadData(r io.Reader) (Data, error) {
	return readDataFrom(r)
}

// ReadFile reads a JSON vertex map file and hydrates a Graph from it.
func ReadFile(path string, opts ...Option) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	d, err := readDataFrom(f)
	if err != nil {
		return nil, err
	}
	return FromData(d, opts...), nil
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeDataTo(d Data, w io.Writer) error {
	if d == nil {
		d = Data{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readDataFrom(r io.Reader) (Data, error) {
	var d Data
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if d == nil {
		d = Data{}
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return d, nil
}

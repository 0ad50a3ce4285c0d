package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads and parses the declaration file at path. It does not validate
// the declarations; see Validate.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid declaration path: %w", err)
	}
	f.Path = absPath
	return f, nil
}

// Parse decodes a declaration file. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("declaration file is empty")
		}
		return nil, fmt.Errorf("failed to parse declaration file: %w", err)
	}
	return &f, nil
}

// Marshal encodes f in the declaration file format.
func Marshal(f *File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("failed to marshal declarations: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal declarations: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes f to path, creating the parent directory if needed.
func Save(f *File, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create declaration directory: %w", err)
	}

	data, err := Marshal(f)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write declaration file: %w", err)
	}
	return nil
}

// Single returns a file declaring only m, as built from command line flags.
func Single(pkg string, m Map) *File {
	return &File{
		Package: pkg,
		Maps:    []Map{m},
	}
}

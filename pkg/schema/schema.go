// Package schema defines maparr declaration files: the maps to generate and
// the literal values to build from them.
package schema

import (
	"slices"
	"unicode"
	"unicode/utf8"
)

// Derives understood by the generator
const (
	DeriveStringer = "stringer" // String on the key handle and the container
	DeriveText     = "text"     // MarshalText and UnmarshalText on the key handle
)

// KnownDerives lists the accepted derive names.
var KnownDerives = []string{DeriveStringer, DeriveText}

// File is one declaration file.
type File struct {
	Package  string    `yaml:"package,omitempty"`
	Output   string    `yaml:"output,omitempty"`
	Maps     []Map     `yaml:"maps"`
	Literals []Literal `yaml:"literals,omitempty"`

	// Path is the file the declarations were loaded from, if any.
	Path string `yaml:"-"`
}

// Map declares one container type and its keys.
type Map struct {
	Name   string   `yaml:"name"`
	Value  string   `yaml:"value,omitempty"` // fixed value type; empty for a generic map
	Keys   []string `yaml:"keys"`
	Derive []string `yaml:"derive,omitempty"`
	Sum    bool     `yaml:"sum,omitempty"` // force Sum on a fixed map with a named numeric type
	Doc    string   `yaml:"doc,omitempty"`
}

// Generic reports whether the map's value type is a type parameter.
func (m Map) Generic() bool {
	return m.Value == ""
}

// Exported reports whether the generated identifiers are exported.
func (m Map) Exported() bool {
	return IsExported(m.Name)
}

// Derives reports whether derive d was requested.
func (m Map) Derives(d string) bool {
	return slices.Contains(m.Derive, d)
}

// Literal declares a package-level container value built at generation time.
type Literal struct {
	Name    string  `yaml:"name"`
	Map     string  `yaml:"map"`
	Type    string  `yaml:"type,omitempty"` // value type, required for generic maps
	Entries Entries `yaml:"entries"`
	Doc     string  `yaml:"doc,omitempty"`
}

// Keys returns the entry keys in the order they were written.
func (l Literal) Keys() []string {
	keys := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		keys[i] = e.Key
	}
	return keys
}

// Find returns the map declared under name.
func (f *File) Find(name string) (Map, bool) {
	for _, m := range f.Maps {
		if m.Name == name {
			return m, true
		}
	}
	return Map{}, false
}

// IsExported reports whether name starts with an upper case letter.
func IsExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

package keyset

import "go/token"

// Table records the declared key order of one generated map.
type Table struct {
	name  string
	names []string
	index map[string]int
}

// NewTable builds the key table for map name from its keys in declaration
// order. The map name and every key must be valid Go identifiers and the
// keys must be distinct.
func NewTable(name string, keys ...string) (*Table, error) {
	if !IsIdent(name) {
		return nil, &Error{Kind: KindInvalidIdent, Key: name, Position: -1}
	}

	t := &Table{
		name:  name,
		names: make([]string, len(keys)),
		index: make(map[string]int, len(keys)),
	}
	for i, key := range keys {
		if !IsIdent(key) {
			return nil, &Error{Kind: KindInvalidIdent, Map: name, Key: key, Position: i}
		}
		if _, exists := t.index[key]; exists {
			return nil, &Error{Kind: KindDuplicateKey, Map: name, Key: key, Position: i}
		}
		t.names[i] = key
		t.index[key] = i
	}
	return t, nil
}

// MustTable is like NewTable but panics on error. Generated code uses it to
// initialize package-level tables.
func MustTable(name string, keys ...string) *Table {
	t, err := NewTable(name, keys...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the map name.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of declared keys.
func (t *Table) Len() int {
	return len(t.names)
}

// KeyName returns the name of the key declared at position ord.
func (t *Table) KeyName(ord uint) string {
	return t.names[ord]
}

// Names returns the key names in declaration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Lookup returns the declared position of the named key.
func (t *Table) Lookup(name string) (uint, bool) {
	i, ok := t.index[name]
	return uint(i), ok
}

// Parse is like Lookup but reports an unknown name as an error.
func (t *Table) Parse(name string) (uint, error) {
	ord, ok := t.Lookup(name)
	if !ok {
		return 0, &Error{Kind: KindUnknownKey, Map: t.name, Key: name, Position: -1}
	}
	return ord, nil
}

// IsIdent reports whether name can be used as a key or map name: a Go
// identifier that is neither a keyword nor the blank identifier.
func IsIdent(name string) bool {
	return name != "_" && token.IsIdentifier(name)
}

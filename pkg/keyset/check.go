package keyset

import "strconv"

// CheckNames validates a literal key list given by name: uniqueness, then
// declaration order, then completeness. It returns the first violation.
func (t *Table) CheckNames(keys []string) error {
	seen := make(map[string]struct{}, len(keys))
	for i, key := range keys {
		if _, dup := seen[key]; dup {
			return &Error{Kind: KindDuplicateKey, Map: t.name, Key: key, Position: i}
		}
		seen[key] = struct{}{}
	}

	for i, key := range keys {
		if i >= len(t.names) {
			break
		}
		ord, ok := t.index[key]
		if !ok {
			return &Error{Kind: KindUnknownKey, Map: t.name, Key: key, Position: i}
		}
		if ord != i {
			return &Error{Kind: KindOutOfOrder, Map: t.name, Key: key, Position: i, Want: ord}
		}
	}

	return t.checkSize(len(keys))
}

// CheckOrdinals validates a literal key list given as handle ordinals, with
// the same steps as CheckNames.
func (t *Table) CheckOrdinals(ords []uint) error {
	seen := make([]bool, len(t.names))
	for i, ord := range ords {
		if ord >= uint(len(t.names)) {
			return &Error{Kind: KindUnknownKey, Map: t.name, Key: "#" + itoa(ord), Position: i}
		}
		if seen[ord] {
			return &Error{Kind: KindDuplicateKey, Map: t.name, Key: t.names[ord], Position: i}
		}
		seen[ord] = true
	}

	for i, ord := range ords {
		if i >= len(t.names) {
			break
		}
		if ord != uint(i) {
			return &Error{Kind: KindOutOfOrder, Map: t.name, Key: t.names[ord], Position: i, Want: int(ord)}
		}
	}

	return t.checkSize(len(ords))
}

// MustOrdinals panics with the error from CheckOrdinals, if any.
func (t *Table) MustOrdinals(ords []uint) {
	if err := t.CheckOrdinals(ords); err != nil {
		panic(err)
	}
}

// CheckParam validates that the handle passed as constructor parameter
// param is the key declared at that position.
func (t *Table) CheckParam(param int, ord uint) error {
	if ord == uint(param) {
		return nil
	}
	given := "#" + itoa(ord)
	if ord < uint(len(t.names)) {
		given = t.names[ord]
	}
	return &Error{Kind: KindParamMismatch, Map: t.name, Key: t.names[param], Given: given, Position: param, Want: param}
}

// MustParam panics with the error from CheckParam, if any.
func (t *Table) MustParam(param int, ord uint) {
	if err := t.CheckParam(param, ord); err != nil {
		panic(err)
	}
}

// CheckPermutation validates that ords names every declared key exactly
// once, in any order.
func (t *Table) CheckPermutation(ords []uint) error {
	seen := make([]bool, len(t.names))
	for i, ord := range ords {
		if ord >= uint(len(t.names)) {
			return &Error{Kind: KindUnknownKey, Map: t.name, Key: "#" + itoa(ord), Position: i}
		}
		if seen[ord] {
			return &Error{Kind: KindDuplicateKey, Map: t.name, Key: t.names[ord], Position: i}
		}
		seen[ord] = true
	}
	for ord, ok := range seen {
		if !ok {
			return &Error{Kind: KindMissingKey, Map: t.name, Key: t.names[ord], Position: -1, Want: ord}
		}
	}
	return nil
}

// MustPermutation panics with the error from CheckPermutation, if any.
func (t *Table) MustPermutation(ords []uint) {
	if err := t.CheckPermutation(ords); err != nil {
		panic(err)
	}
}

func (t *Table) checkSize(got int) error {
	switch want := len(t.names); {
	case got < want:
		return &Error{Kind: KindTooSmall, Map: t.name, Got: got, Want: want}
	case got > want:
		return &Error{Kind: KindTooBig, Map: t.name, Got: got, Want: want}
	}
	return nil
}

func itoa(ord uint) string {
	return strconv.FormatUint(uint64(ord), 10)
}

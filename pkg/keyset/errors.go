package keyset

import "fmt"

// Kind classifies a key set violation.
type Kind int

const (
	KindDuplicateKey Kind = iota + 1
	KindOutOfOrder
	KindUnknownKey
	KindTooSmall
	KindTooBig
	KindParamMismatch
	KindMissingKey
	KindInvalidIdent
)

var kindNames = map[Kind]string{
	KindDuplicateKey:  "duplicate key",
	KindOutOfOrder:    "key out of order",
	KindUnknownKey:    "unknown key",
	KindTooSmall:      "parameter list is too small",
	KindTooBig:        "parameter list is too big",
	KindParamMismatch: "parameter does not match its key",
	KindMissingKey:    "missing key",
	KindInvalidIdent:  "invalid identifier",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Errors
var (
	ErrDuplicateKey  = &Error{Kind: KindDuplicateKey}
	ErrOutOfOrder    = &Error{Kind: KindOutOfOrder}
	ErrUnknownKey    = &Error{Kind: KindUnknownKey}
	ErrTooSmall      = &Error{Kind: KindTooSmall}
	ErrTooBig        = &Error{Kind: KindTooBig}
	ErrParamMismatch = &Error{Kind: KindParamMismatch}
	ErrMissingKey    = &Error{Kind: KindMissingKey}
	ErrInvalidIdent  = &Error{Kind: KindInvalidIdent}
)

// Error describes a violation of a map's declared key set.
type Error struct {
	Kind     Kind
	Map      string // map the key list was checked against
	Key      string // offending key, or parameter name for KindParamMismatch
	Given    string // key actually passed for KindParamMismatch
	Position int    // position of Key in the supplied list
	Want     int    // declared position, or declared size
	Got      int    // supplied size
}

func (e *Error) Error() string {
	prefix := "maparr: "
	if e.Map != "" {
		prefix += e.Map + ": "
	}

	switch e.Kind {
	case KindDuplicateKey:
		return fmt.Sprintf("%sduplicate key <%s>", prefix, e.Key)
	case KindOutOfOrder:
		return fmt.Sprintf("%skey <%s> at position %d does not correspond to its declared position %d",
			prefix, e.Key, e.Position, e.Want)
	case KindUnknownKey:
		if e.Position < 0 {
			return fmt.Sprintf("%skey <%s> is not declared", prefix, e.Key)
		}
		return fmt.Sprintf("%skey <%s> at position %d is not declared", prefix, e.Key, e.Position)
	case KindTooSmall, KindTooBig:
		return fmt.Sprintf("%s%s: got %d keys, want %d", prefix, e.Kind, e.Got, e.Want)
	case KindParamMismatch:
		return fmt.Sprintf("%sparameter <%s> does not correspond to its key, got <%s>", prefix, e.Key, e.Given)
	case KindMissingKey:
		return fmt.Sprintf("%skey <%s> is missing", prefix, e.Key)
	case KindInvalidIdent:
		return fmt.Sprintf("%s<%s> is not a valid identifier", prefix, e.Key)
	}
	return prefix + e.Kind.String()
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Map == "" && t.Key == ""
}

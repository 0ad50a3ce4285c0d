// Package keyset is the runtime support for containers generated by maparr.
//
// A generated container stores one value per declared key in a fixed-size
// array. The keys are addressed by opaque handles whose only state is the
// key's position in declaration order. keyset holds what those generated
// types share: the per-map key Table, the validation of literal key lists,
// the constructor parameter check and the numeric helpers behind Sum.
//
// # Literal Validation
//
// A key list supplied to a literal builder is checked in a fixed order and
// the first failing step is reported:
//
//  1. Uniqueness: every key appears once (ErrDuplicateKey).
//  2. Order: the key at position i is the key declared at position i
//     (ErrOutOfOrder, or ErrUnknownKey for a name the map never declared).
//  3. Completeness: the list holds exactly as many keys as the map
//     (ErrTooSmall, ErrTooBig).
//
// The generator runs the same checks on key names while it writes a file,
// so a bad literal in a declaration file never reaches the compiler.
// Generated constructors run them on handles and panic on failure: a
// mismatched key list is a defect in the calling code, not a runtime
// condition to recover from.
//
// # Errors
//
// All failures are *Error values. Use errors.Is with the package sentinels
// (ErrDuplicateKey, ErrOutOfOrder, ...) to test the kind of failure.
//
// # Thread Safety
//
// A Table is immutable once built and safe for concurrent use.
package keyset

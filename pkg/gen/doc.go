// Package gen writes the Go source of maparr containers.
//
// A Generator takes a validated schema.File and renders one Go file holding,
// for every declared map M:
//
//   - MSize, the number of keys;
//   - MKey, the opaque key handle, and one handle value per key;
//   - M, the array-backed container, generic over its value type unless the
//     declaration fixes one;
//   - the constructors NewM, MLiteral and CollectM, and the operation set
//     (Get, Set, Ptr, All, Values, AllPtr, Array, Slice, Len, IsEmpty,
//     Keys, Names, MapM and SumM or Sum).
//
// Literals declared in the file are checked with keyset.Table.CheckNames and
// written as package-level variables, so an incomplete or misordered literal
// fails generation instead of compiling.
//
// Rendering uses text/template; the result is formatted with goimports by
// default (see Options.Format).
package gen

package schema

import (
	"fmt"
	"go/parser"
	"go/scanner"
	"go/token"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/ssargent/maparr/pkg/keyset"
)

// Validate checks every declaration in f and returns all problems found,
// combined into one error. Literal key lists are checked against their map
// with keyset.Table.CheckNames, so the errors match the ones generated
// constructors raise at run time.
func Validate(f *File) error {
	var result *multierror.Error

	if f.Package != "" && !keyset.IsIdent(f.Package) {
		result = multierror.Append(result, fmt.Errorf("package %q is not a valid package name", f.Package))
	}
	if len(f.Maps) == 0 {
		result = multierror.Append(result, fmt.Errorf("no maps declared"))
	}

	tables := make(map[string]*keyset.Table, len(f.Maps))
	for i, m := range f.Maps {
		table, err := validateMap(m)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("map %d (%s): %w", i, m.Name, err))
			continue
		}
		if _, dup := tables[m.Name]; dup {
			result = multierror.Append(result, fmt.Errorf("map %s declared more than once", m.Name))
			continue
		}
		tables[m.Name] = table
	}

	literals := make(map[string]struct{}, len(f.Literals))
	for _, l := range f.Literals {
		if !keyset.IsIdent(l.Name) {
			result = multierror.Append(result, fmt.Errorf("literal %q: name is not a valid identifier", l.Name))
			continue
		}
		if _, dup := literals[l.Name]; dup {
			result = multierror.Append(result, fmt.Errorf("literal %s declared more than once", l.Name))
			continue
		}
		literals[l.Name] = struct{}{}

		if err := validateLiteral(f, l, tables); err != nil {
			result = multierror.Append(result, fmt.Errorf("literal %s: %w", l.Name, err))
		}
	}

	return result.ErrorOrNil()
}

func validateMap(m Map) (*keyset.Table, error) {
	table, err := keyset.NewTable(m.Name, m.Keys...)
	if err != nil {
		return nil, err
	}

	if !m.Generic() {
		if _, err := parser.ParseExpr(m.Value); err != nil {
			return nil, fmt.Errorf("value type %q does not parse: %w", m.Value, err)
		}
	}
	if m.Sum && m.Generic() {
		return nil, fmt.Errorf("sum applies to fixed value types only")
	}

	for _, d := range m.Derive {
		if !slices.Contains(KnownDerives, d) {
			return nil, fmt.Errorf("unknown derive %q, want one of %v", d, KnownDerives)
		}
	}
	return table, nil
}

func validateLiteral(f *File, l Literal, tables map[string]*keyset.Table) error {
	m, ok := f.Find(l.Map)
	if !ok {
		return fmt.Errorf("map %q is not declared", l.Map)
	}
	table, ok := tables[l.Map]
	if !ok {
		// The map itself failed validation and was reported already.
		return nil
	}

	switch {
	case m.Generic() && l.Type == "":
		return fmt.Errorf("map %s is generic, the literal needs a value type", m.Name)
	case !m.Generic() && l.Type != "" && l.Type != m.Value:
		return fmt.Errorf("map %s stores %s, the literal cannot choose %s", m.Name, m.Value, l.Type)
	}
	if l.Type != "" {
		if _, err := parser.ParseExpr(l.Type); err != nil {
			return fmt.Errorf("value type %q does not parse: %w", l.Type, err)
		}
	}

	if err := table.CheckNames(l.Keys()); err != nil {
		return err
	}

	for _, e := range l.Entries {
		if _, err := parser.ParseExpr(e.Expr); err != nil {
			return fmt.Errorf("line %d: value of %s does not parse: %w", e.Line, e.Key, err)
		}
		if hasComment(e.Expr) {
			return fmt.Errorf("line %d: value of %s contains a comment", e.Line, e.Key)
		}
	}
	return nil
}

// hasComment reports whether expr holds a comment. Generated literals put a
// comma and the key name after each value, which a line comment would hide.
func hasComment(expr string) bool {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(expr))

	var s scanner.Scanner
	s.Init(file, []byte(expr), nil, scanner.ScanComments)
	for {
		_, tok, _ := s.Scan()
		switch tok {
		case token.COMMENT:
			return true
		case token.EOF:
			return false
		}
	}
}

package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/ssargent/maparr/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// packagesImporter resolves imports of generated code through go/packages,
// so the runtime package is checked as it is built.
type packagesImporter struct {
	cache map[string]*types.Package
}

func (p *packagesImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := p.cache[path]; ok {
		return pkg, nil
	}
	pkgs, err := packages.Load(&packages.Config{Mode: packages.NeedName | packages.NeedTypes}, path)
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 || len(pkgs[0].Errors) > 0 || pkgs[0].Types == nil {
		return nil, fmt.Errorf("failed to load %s", path)
	}
	p.cache[path] = pkgs[0].Types
	return pkgs[0].Types, nil
}

// typeCheck fails the test unless src compiles on its own.
func typeCheck(t *testing.T, src []byte) {
	t.Helper()
	if testing.Short() {
		t.Skip("type checking loads packages with the go command")
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "gen.go", src, 0)
	require.NoError(t, err, string(src))

	conf := types.Config{Importer: &packagesImporter{cache: make(map[string]*types.Package)}}
	_, err = conf.Check(file.Name.Name, fset, []*ast.File{file}, nil)
	require.NoError(t, err, string(src))
}

func TestGenerate_TypeChecks(t *testing.T) {
	testCases := []struct {
		name   string
		format Format
		maps   []schema.Map
		want   []string
	}{
		{
			name: "key named like the value type",
			maps: []schema.Map{{Name: "Labels", Value: "string", Keys: []string{"string", "other"}}},
			want: []string{
				"func NewLabels(string_, other LabelsEntry) Labels",
				"_Labels_table.MustParam(0, string_.Key.ord)",
			},
		},
		{
			name:   "key named like the value type's package",
			format: FormatGoimports,
			maps:   []schema.Map{{Name: "Timings", Value: "time.Duration", Sum: true, Keys: []string{"time", "elapsed"}}},
			want: []string{
				`"time"`,
				"func NewTimings(time_, elapsed TimingsEntry) Timings",
				"func (m Timings) Sum() time.Duration",
			},
		},
		{
			name: "renamed parameters stay distinct",
			maps: []schema.Map{{Name: "Imports", Keys: []string{"keyset", "keyset_", "Imports"}}},
			want: []string{"func NewImports[T any](keyset_, keyset__, Imports_ ImportsEntry[T]) Imports[T]"},
		},
		{
			name: "every type parameter name is a key",
			maps: []schema.Map{{Name: "Params", Keys: []string{"T", "V", "E", "Elem", "Value"}}},
			want: []string{
				"type Params[T0 any] struct",
				"func NewParams[T0 any](T, V, E, Elem, Value ParamsEntry[T0]) Params[T0]",
			},
		},
		{
			name: "map named T",
			maps: []schema.Map{{Name: "T", Keys: []string{"A", "B"}}},
			want: []string{
				"type T[V any] struct",
				"func MapT[U, V any](m T[U], f func(U) V) T[V]",
				"func SumT[U keyset.Number](m T[U]) U",
			},
		},
		{
			name: "map named U",
			maps: []schema.Map{{Name: "U", Keys: []string{"A"}}},
			want: []string{
				"type U[T any] struct",
				"func MapU[T, V any](m U[T], f func(T) V) U[V]",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src, err := newTestGenerator(Options{Format: tc.format}).Generate(&schema.File{Package: "demo", Maps: tc.maps})
			require.NoError(t, err)

			for _, want := range tc.want {
				assert.Contains(t, string(src), want)
			}
			typeCheck(t, src)
		})
	}
}

func TestGenerate_EarthTypeChecks(t *testing.T) {
	src, err := newTestGenerator(Options{}).Generate(earthFile())
	require.NoError(t, err)
	typeCheck(t, src)
}

func TestGenerate_KeysIgnoreHandleVariables(t *testing.T) {
	src, err := newTestGenerator(Options{}).Generate(earthFile())
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "\t\tContinentsKey{0}, // ASIA\n")
	assert.Contains(t, out, "\t\tContinentsKey{6}, // AUSTRALIA\n")
	assert.NotContains(t, out, "\t\tContinentsASIA,\n")
}

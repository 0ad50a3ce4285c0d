package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const earthYAML = `
package: earth
output: earth_maparr.go
maps:
  - name: Continents
    keys: [ASIA, AFRICA, AMERICA_NORTH]
  - name: Planets
    value: float64
    derive: [stringer]
    doc: Planets maps each planet to a measurement.
literals:
  - name: ContinentSquareMiles
    map: Continents
    type: int
    entries:
      ASIA: 17_212_000
      AFRICA: 11_608_000
      AMERICA_NORTH: 9_365_000
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(earthYAML))
	require.NoError(t, err)

	assert.Equal(t, "earth", f.Package)
	assert.Equal(t, "earth_maparr.go", f.Output)
	require.Len(t, f.Maps, 2)

	continents := f.Maps[0]
	assert.Equal(t, "Continents", continents.Name)
	assert.True(t, continents.Generic())
	assert.True(t, continents.Exported())
	assert.Equal(t, []string{"ASIA", "AFRICA", "AMERICA_NORTH"}, continents.Keys)

	planets := f.Maps[1]
	assert.False(t, planets.Generic())
	assert.Equal(t, "float64", planets.Value)
	assert.True(t, planets.Derives(DeriveStringer))
	assert.False(t, planets.Derives(DeriveText))

	require.Len(t, f.Literals, 1)
	lit := f.Literals[0]
	assert.Equal(t, "Continents", lit.Map)
	assert.Equal(t, "int", lit.Type)
	assert.Equal(t, []string{"ASIA", "AFRICA", "AMERICA_NORTH"}, lit.Keys())
	assert.Equal(t, "17_212_000", lit.Entries[0].Expr)
	assert.Greater(t, lit.Entries[0].Line, 0)
}

func TestParse_EntriesKeepDuplicatesAndOrder(t *testing.T) {
	f, err := Parse([]byte(`
maps:
  - name: Map
    keys: [A, B]
literals:
  - name: X
    map: Map
    type: string
    entries:
      B: '"b"'
      A: '"a"'
      B: '"again"'
`))
	require.NoError(t, err)
	require.Len(t, f.Literals, 1)
	assert.Equal(t, Entries{
		{Key: "B", Expr: `"b"`, Line: 10},
		{Key: "A", Expr: `"a"`, Line: 11},
		{Key: "B", Expr: `"again"`, Line: 12},
	}, f.Literals[0].Entries)
}

func TestParse_EntriesAsSequence(t *testing.T) {
	f, err := Parse([]byte(`
maps:
  - name: Map
    keys: [A, B]
literals:
  - name: X
    map: Map
    type: bool
    entries:
      - A: "false"
      - B: "true"
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, f.Literals[0].Keys())
	assert.Equal(t, "true", f.Literals[0].Entries[1].Expr)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
		msg  string
	}{
		{
			name: "empty document",
			yaml: "",
			msg:  "declaration file is empty",
		},
		{
			name: "unknown field",
			yaml: "maps:\n  - name: Map\n    kes: [A]\n",
			msg:  "failed to parse declaration file",
		},
		{
			name: "entries not a mapping",
			yaml: "maps: []\nliterals:\n  - name: X\n    map: Map\n    entries: 3\n",
			msg:  "entries must be a mapping",
		},
		{
			name: "nested entry value",
			yaml: "maps: []\nliterals:\n  - name: X\n    map: Map\n    entries:\n      A: [1, 2]\n",
			msg:  "value of A must be a Go expression",
		},
		{
			name: "sequence entry with two pairs",
			yaml: "maps: []\nliterals:\n  - name: X\n    map: Map\n    entries:\n      - {A: 1, B: 2}\n",
			msg:  "single key: value pair",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLoadAndSave(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "maparr_schema_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	f, err := Parse([]byte(earthYAML))
	require.NoError(t, err)

	path := filepath.Join(tmpDir, "decl", "maparr.yaml")
	require.NoError(t, Save(f, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, loaded.Path)
	assert.Equal(t, f.Maps, loaded.Maps)
	assert.Equal(t, f.Literals[0].Keys(), loaded.Literals[0].Keys())
	assert.Equal(t, f.Literals[0].Entries[1].Expr, loaded.Literals[0].Entries[1].Expr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/non/existent/maparr.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read declaration file")
}

func TestMarshal_QuotesStringExpressions(t *testing.T) {
	f := Single("earth", Map{Name: "Map", Keys: []string{"A"}})
	f.Literals = []Literal{{
		Name:    "Greeting",
		Map:     "Map",
		Type:    "string",
		Entries: Entries{{Key: "A", Expr: `"Hello"`}},
	}}

	data, err := Marshal(f)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, `"Hello"`, back.Literals[0].Entries[0].Expr)
}

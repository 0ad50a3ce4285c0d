package cmd

import (
	"path/filepath"
	"testing"

	"github.com/ssargent/maparr/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testConfig(t, tmpDir)
	withContainer(t)

	declPath := filepath.Join(tmpDir, "maparr.yaml")
	writeFile(t, declPath, colorsYAML)

	t.Run("Valid file", func(t *testing.T) {
		out, err := executeCommand(t, "check", "--config", cfgPath, "-f", declPath)
		require.NoError(t, err)
		assert.Contains(t, out, "(package demo)")
		assert.Contains(t, out, "map Colors: 3 keys, generic")
		assert.Contains(t, out, "map Weights: 2 keys, value float64")
		assert.Contains(t, out, "literal Primary: Colors, 3 entries")
		assert.NoFileExists(t, filepath.Join(tmpDir, "maparr_maparr.go"))
	})

	t.Run("Reports every problem", func(t *testing.T) {
		bad := filepath.Join(tmpDir, "bad.yaml")
		writeFile(t, bad, `package: demo
maps:
  - name: Pair
    keys: [A, B]
literals:
  - name: Swapped
    map: Pair
    type: int
    entries:
      B: 1
      A: 2
  - name: Short
    map: Pair
    type: int
    entries:
      A: 1
`)
		out, err := executeCommand(t, "check", "--config", cfgPath, "-f", bad)
		require.Error(t, err)
		assert.Contains(t, out, "❌")
		assert.Contains(t, err.Error(), "does not correspond to its declared position")
		assert.Contains(t, err.Error(), "parameter list is too small")
	})

	t.Run("Identifier collision", func(t *testing.T) {
		bad := filepath.Join(tmpDir, "collide.yaml")
		writeFile(t, bad, `package: demo
maps:
  - name: Pair
    keys: [A, B]
  - name: PairA
    keys: [X]
`)
		_, err := executeCommand(t, "check", "--config", cfgPath, bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PairA")
	})
}

func TestDescribeMap(t *testing.T) {
	tests := []struct {
		name string
		m    schema.Map
		want string
	}{
		{"generic", schema.Map{Name: "Colors", Keys: []string{"A", "B"}}, "2 keys, generic"},
		{"fixed", schema.Map{Name: "Weights", Value: "int", Keys: []string{"A"}}, "1 keys, value int"},
		{"derives", schema.Map{Name: "Days", Keys: []string{"MON"}, Derive: []string{"stringer", "text"}}, "1 keys, generic, derive stringer,text"},
		{"unexported", schema.Map{Name: "days", Keys: nil}, "0 keys, generic, unexported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeMap(tt.m))
		})
	}
}

package keyset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_CheckNames(t *testing.T) {
	table := MustTable("Map", "A", "B")

	testCases := []struct {
		name string
		keys []string
		want error
		msg  string
	}{
		{
			name: "exact order",
			keys: []string{"A", "B"},
		},
		{
			name: "reversed",
			keys: []string{"B", "A"},
			want: ErrOutOfOrder,
			msg:  "maparr: Map: key <B> at position 0 does not correspond to its declared position 1",
		},
		{
			name: "too small",
			keys: []string{"A"},
			want: ErrTooSmall,
			msg:  "maparr: Map: parameter list is too small: got 1 keys, want 2",
		},
		{
			name: "empty",
			keys: nil,
			want: ErrTooSmall,
		},
		{
			name: "too big",
			keys: []string{"A", "B", "C"},
			want: ErrTooBig,
			msg:  "maparr: Map: parameter list is too big: got 3 keys, want 2",
		},
		{
			name: "duplicate reported before order",
			keys: []string{"B", "B"},
			want: ErrDuplicateKey,
			msg:  "maparr: Map: duplicate key <B>",
		},
		{
			name: "duplicate reported before size",
			keys: []string{"A", "B", "A"},
			want: ErrDuplicateKey,
		},
		{
			name: "order reported before size",
			keys: []string{"B"},
			want: ErrOutOfOrder,
		},
		{
			name: "unknown key",
			keys: []string{"A", "C"},
			want: ErrUnknownKey,
			msg:  "maparr: Map: key <C> at position 1 is not declared",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := table.CheckNames(tc.keys)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			if tc.msg != "" {
				assert.EqualError(t, err, tc.msg)
			}
		})
	}
}

func TestTable_CheckOrdinals(t *testing.T) {
	table := MustTable("Map", "A", "B", "C")

	assert.NoError(t, table.CheckOrdinals([]uint{0, 1, 2}))
	assert.ErrorIs(t, table.CheckOrdinals([]uint{0, 0, 2}), ErrDuplicateKey)
	assert.ErrorIs(t, table.CheckOrdinals([]uint{0, 2, 1}), ErrOutOfOrder)
	assert.ErrorIs(t, table.CheckOrdinals([]uint{0, 1}), ErrTooSmall)
	assert.ErrorIs(t, table.CheckOrdinals([]uint{0, 1, 2, 7}), ErrUnknownKey)

	err := table.CheckOrdinals([]uint{1, 0, 2})
	var keyErr *Error
	require.True(t, errors.As(err, &keyErr))
	assert.Equal(t, "B", keyErr.Key)
	assert.Equal(t, 0, keyErr.Position)
	assert.Equal(t, 1, keyErr.Want)
}

func TestTable_MustOrdinals(t *testing.T) {
	table := MustTable("Map", "ID1", "ID2")

	assert.NotPanics(t, func() { table.MustOrdinals([]uint{0, 1}) })
	assert.PanicsWithError(t,
		"maparr: Map: key <ID2> at position 0 does not correspond to its declared position 1",
		func() { table.MustOrdinals([]uint{1, 0}) })
}

func TestTable_CheckParam(t *testing.T) {
	table := MustTable("Continents", "ASIA", "AFRICA")

	assert.NoError(t, table.CheckParam(0, 0))
	assert.NoError(t, table.CheckParam(1, 1))

	err := table.CheckParam(1, 0)
	assert.ErrorIs(t, err, ErrParamMismatch)
	assert.EqualError(t, err, "maparr: Continents: parameter <AFRICA> does not correspond to its key, got <ASIA>")

	assert.Panics(t, func() { table.MustParam(0, 1) })
}

func TestTable_CheckPermutation(t *testing.T) {
	table := MustTable("Map", "A", "B", "C")

	assert.NoError(t, table.CheckPermutation([]uint{2, 0, 1}))
	assert.NoError(t, table.CheckPermutation([]uint{0, 1, 2}))
	assert.ErrorIs(t, table.CheckPermutation([]uint{2, 2, 1}), ErrDuplicateKey)
	assert.ErrorIs(t, table.CheckPermutation([]uint{5}), ErrUnknownKey)

	err := table.CheckPermutation([]uint{2, 0})
	assert.ErrorIs(t, err, ErrMissingKey)
	assert.EqualError(t, err, "maparr: Map: key <B> is missing")

	assert.Panics(t, func() { table.MustPermutation([]uint{0}) })
}

func TestError_Is(t *testing.T) {
	err := &Error{Kind: KindTooBig, Map: "Map", Got: 3, Want: 2}
	assert.True(t, errors.Is(err, ErrTooBig))
	assert.False(t, errors.Is(err, ErrTooSmall))
	assert.False(t, errors.Is(ErrTooBig, err))
	assert.Equal(t, "parameter list is too big", KindTooBig.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

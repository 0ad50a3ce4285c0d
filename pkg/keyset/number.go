package keyset

import "golang.org/x/exp/constraints"

// Number is the set of value types a generated Sum accepts.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Sum adds values in order, starting from the zero value.
func Sum[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

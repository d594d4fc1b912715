// Package scaling defines the halving contract shared by every scalable
// record.
//
// A record participates by implementing Halver over its own type: Halved
// returns a fresh copy with geometry-bearing fields divided by 2 and every
// other field copied verbatim. Containers satisfy the contract purely by
// delegation — HalveSlice maps a collection through its elements' own Halved
// implementations, so a container never needs geometry logic of its own.
//
// Implementations must construct the result with a full composite literal
// covering every field; the completeness guards in the entities package fail
// when a field is added without a mapping.
package scaling

// Halver is the construct-by-halving contract. The instantiation is
// homogeneous: a type halves into itself.
type Halver[T any] interface {
	// Halved returns a new value at half scale. It must not mutate the
	// receiver and the result must share no mutable state with it.
	Halved() T
}

// HalveSlice halves every element of src, preserving length, order, and
// duplicates. The result is freshly allocated; src is never mutated.
func HalveSlice[T Halver[T]](src []T) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = v.Halved()
	}
	return out
}

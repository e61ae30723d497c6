package heap

import "github.com/cdwfs/algo/tagged"

// Comparator is the capability a MinHeap is built with: a single total-order
// comparison over two keys, returning <0, 0, or >0 exactly like
// strings.Compare / bytes.Compare. Modeling it as an interface (rather than a
// bare function type) lets callers compose closures over external state
// without the heap caring how the comparison is implemented.
type Comparator interface {
	Compare(a, b tagged.Value) int
}

// CompareFunc adapts a plain function to the Comparator interface.
type CompareFunc func(a, b tagged.Value) int

// Compare implements Comparator.
func (f CompareFunc) Compare(a, b tagged.Value) int { return f(a, b) }

// IntAscending orders keys by their AsInt() value, ascending.
var IntAscending Comparator = CompareFunc(func(a, b tagged.Value) int {
	ai, bi := a.AsInt(), b.AsInt()
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	default:
		return 0
	}
})

// Float32Ascending orders keys by their AsFloat32() value, ascending.
var Float32Ascending Comparator = CompareFunc(func(a, b tagged.Value) int {
	af, bf := a.AsFloat32(), b.AsFloat32()
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
})

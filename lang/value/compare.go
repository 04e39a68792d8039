package value

// Equal implements EQ semantics: two nils are equal, a nil and a non-nil
// value are never equal, and two non-nil values of the same kind are equal
// iff their Cmp result is zero. Equal does not validate that x and y are
// comparable for kind-mismatch purposes; callers (the engine) are
// responsible for rejecting mismatched non-nil kinds before calling Equal.
func Equal(x, y Value) bool {
	if x.Kind() == KindNil || y.Kind() == KindNil {
		return x.Kind() == KindNil && y.Kind() == KindNil
	}
	switch xv := x.(type) {
	case Ordered:
		return xv.Cmp(y) == 0
	default:
		return false
	}
}

// Compare implements LT/GT semantics: x and y must be of the same Ordered
// kind (nil is not Ordered). It returns a negative, zero, or positive
// number the same way Ordered.Cmp does.
func Compare(x, y Value) int {
	return x.(Ordered).Cmp(y)
}

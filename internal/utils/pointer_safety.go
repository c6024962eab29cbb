package utils

// Value dereferences an optional field, returning the zero value for nil.
func Value[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// Ptr returns a pointer to a copy of v, for populating optional request fields.
func Ptr[T any](v T) *T {
	return &v
}

// PtrOrNil is Ptr except that the zero value stays unset.
func PtrOrNil[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

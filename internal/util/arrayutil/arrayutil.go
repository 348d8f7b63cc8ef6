package arrayutil

// Element is the set of fixed-width element types that can be cloned.
// Platform-sized int, uint and uintptr are not fixed width and are excluded.
type Element interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Clone returns a newly allocated copy of src, or nil if src is nil.
// An empty non-nil src yields an empty non-nil slice.
func Clone[T Element](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// CloneInto copies src into existing when both have the same length and
// returns existing with reused set. Otherwise it returns a fresh Clone of src
// and reused is false. A nil src yields (nil, false) and leaves existing
// untouched.
func CloneInto[T Element](src, existing []T) (out []T, reused bool) {
	if src == nil {
		return nil, false
	}
	if existing == nil || len(existing) != len(src) {
		return Clone(src), false
	}
	copy(existing, src)
	return existing, true
}

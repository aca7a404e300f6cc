package patch

// Coalesce dereferences ptr when set, otherwise keeps fallback. Used for
// partial updates where a nil field means "leave unchanged".
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

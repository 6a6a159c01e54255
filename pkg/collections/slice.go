package collections

// Unique returns the slice with duplicates removed, preserving first-seen
// order.
func Unique[T comparable](slice []T) []T {
	if len(slice) < 2 {
		return slice
	}
	seen := make(map[T]bool, len(slice))
	result := make([]T, 0, len(slice))
	for _, value := range slice {
		if seen[value] {
			continue
		}
		seen[value] = true
		result = append(result, value)
	}
	return result
}

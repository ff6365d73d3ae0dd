package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func FindLastIndex[T comparable](slice []T, item T) int {
	for i := len(slice) - 1; i >= 0; i-- {
		if slice[i] == item {
			return i
		}
	}
	return -1
}

// FindIndexFrom searches slice[from:] and returns an index into slice, or -1.
func FindIndexFrom[T comparable](slice []T, item T, from int) int {
	if from < 0 || from >= len(slice) {
		return -1
	}
	i := FindIndex(slice[from:], item)
	if i < 0 {
		return -1
	}
	return i + from
}

package batcher

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}

	if value > high {
		return high
	}

	return value
}

func ternary[T any](condition bool, value1, value2 T) T {
	if condition {
		return value1
	}

	return value2
}

// Zero-thread operations are not launchable.
func atLeastOneThread(threads int) int {
	return max(threads, 1)
}

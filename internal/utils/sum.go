package utils

// Sum calculates the sum of the given values
func Sum(values []int) int {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum
}

// Max returns the largest of the given values, 0 for none
func Max(values []int) int {
	max := 0
	for i, v := range values {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}

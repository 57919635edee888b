package utils

import "strconv"

// ConvertToInt converts a string to an int, returning 0 when the value is not numeric.
func ConvertToInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

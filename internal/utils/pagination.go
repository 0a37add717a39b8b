// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// AtoiDefault converts a string to an int using strconv.Atoi.
// If the string is empty or cannot be parsed as an integer,
// it returns the provided default value instead.
//
// Example:
//
//	n := utils.AtoiDefault("42", 0) // returns 42
//	n = utils.AtoiDefault("", 10)   // returns 10
//	n = utils.AtoiDefault("x", 5)   // returns 5
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// Paginate returns the sub-slice of items selected by offset and limit.
// Negative offsets are treated as 0, non-positive limits fall back to max,
// and limits above max are clamped. Out-of-range offsets yield an empty
// (non-nil) slice. The result aliases the input; callers must not mutate it.
func Paginate[T any](items []T, offset, limit, max int) []T {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > max {
		limit = max
	}
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

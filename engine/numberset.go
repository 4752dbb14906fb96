// Package engine computes winning boards: given a game's published numbers it
// scores every eligible board, including repeating boards carried over from
// earlier games, and records each outcome exactly once per (game, board) pair.
package engine

import (
	"errors"
	"fmt"
)

// Board and draw dimensions. A board is 5 distinct numbers out of 1..90,
// a draw publishes 3 distinct numbers from the same range.
const (
	BoardNumbersLen   = 5
	WinningNumbersLen = 3
	NumberMin         = 1
	NumberMax         = 90
)

var ErrInvalidNumbers = errors.New("invalid lottery numbers")

// NumberSet is a fixed-size set of distinct integers from the board range.
// Both chosen and winning numbers are NumberSets; only the cardinality
// differs.
type NumberSet []int

// Contains reports whether n is a member of the set.
func (s NumberSet) Contains(n int) bool {
	for _, m := range s {
		if m == n {
			return true
		}
	}
	return false
}

// ValidateBoardNumbers checks a board's chosen numbers: exactly
// BoardNumbersLen distinct integers within the playable range.
func ValidateBoardNumbers(nums []int) error {
	return validateNumbers(nums, BoardNumbersLen)
}

// ValidateWinningNumbers checks a published draw: exactly WinningNumbersLen
// distinct integers within the playable range.
func ValidateWinningNumbers(nums []int) error {
	return validateNumbers(nums, WinningNumbersLen)
}

func validateNumbers(nums []int, want int) error {
	if len(nums) != want {
		return fmt.Errorf("%w: expected %d numbers, got %d", ErrInvalidNumbers, want, len(nums))
	}
	seen := make(map[int]struct{}, len(nums))
	for _, n := range nums {
		if n < NumberMin || n > NumberMax {
			return fmt.Errorf("%w: %d is outside %d..%d", ErrInvalidNumbers, n, NumberMin, NumberMax)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: %d appears more than once", ErrInvalidNumbers, n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

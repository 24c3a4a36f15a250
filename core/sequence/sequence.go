package sequence

import (
	"math/big"
	"regexp"
)

var digitRun = regexp.MustCompile(`\d+`)

// Increment adds steps to the last run of digits in s, keeping its zero padding.
// Strings without digits are returned unchanged.
func Increment(s string, steps int) string {
	if s == "" {
		return s
	}

	matches := digitRun.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	// Rightmost run, not the longest
	last := matches[len(matches)-1]
	start, end := last[0], last[1]
	run := s[start:end]

	// A digit run always parses, whatever its length
	next, _ := new(big.Int).SetString(run, 10)
	next.Add(next, big.NewInt(int64(steps)))
	if next.Sign() < 0 {
		next.SetInt64(0)
	}

	return s[:start] + pad(next.String(), len(run)) + s[end:]
}

// Next is Increment with a single step.
func Next(s string) string {
	return Increment(s, 1)
}

func pad(num string, width int) string {
	for len(num) < width {
		num = "0" + num
	}
	return num
}

package main

import (
	"strconv"
	"strings"
)

// Triple is one parsed input record: two divisors and an inclusive upper bound.
type Triple struct {
	A   uint32
	B   uint32
	End uint32
}

// Result holds the qualifying numbers computed for one triple.
type Result struct {
	End     uint32
	Numbers []uint32
}

// String renders the result in the output line format: the upper bound,
// a colon, then the numbers joined by single spaces ("10:2 3 4 6 8 9 10").
// A result with no numbers renders as just the bound and the colon ("0:").
func (r Result) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(r.End), 10))
	sb.WriteByte(':')
	for i, n := range r.Numbers {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(uint64(n), 10))
	}
	return sb.String()
}

// Equal reports whether two results have the same bound and the same
// numbers in the same order.
func (r Result) Equal(other Result) bool {
	if r.End != other.End || len(r.Numbers) != len(other.Numbers) {
		return false
	}
	for i := range r.Numbers {
		if r.Numbers[i] != other.Numbers[i] {
			return false
		}
	}
	return true
}

package main

import (
	"fmt"
	"sort"
)

// Ordering names a comparator that decides the final output order.
type Ordering struct {
	Name string
	Less func(a, b Result) bool
}

const (
	orderByEnd   = "end"
	orderByCount = "count"
)

// ByEnd orders results by ascending upper bound. This is the default.
var ByEnd = Ordering{
	Name: orderByEnd,
	Less: func(a, b Result) bool { return a.End < b.End },
}

// ByCount orders results by ascending count of qualifying numbers.
var ByCount = Ordering{
	Name: orderByCount,
	Less: func(a, b Result) bool { return len(a.Numbers) < len(b.Numbers) },
}

// ParseOrdering resolves an ordering by name.
func ParseOrdering(name string) (Ordering, error) {
	switch name {
	case orderByEnd:
		return ByEnd, nil
	case orderByCount:
		return ByCount, nil
	}
	return Ordering{}, fmt.Errorf("unknown sort order %q (valid: %s, %s)", name, orderByEnd, orderByCount)
}

// SortResults sorts results in place. The sort is stable, so results with
// equal keys keep their input order.
func SortResults(results []Result, ord Ordering) {
	sort.SliceStable(results, func(i, j int) bool {
		return ord.Less(results[i], results[j])
	})
}

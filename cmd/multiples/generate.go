package main

// QualifyingNumbers scans 1..End inclusive and collects the integers
// divisible by either divisor, in ascending order. An End of 0 yields an
// empty range and no numbers.
func QualifyingNumbers(t Triple) []uint32 {
	var nums []uint32
	// 64-bit counter so End == MaxUint32 still terminates.
	for n := uint64(1); n <= uint64(t.End); n++ {
		if DivisibleByEither(t, uint32(n)) {
			nums = append(nums, uint32(n))
		}
	}
	return nums
}

// BuildResults computes one Result per triple, in input order.
func BuildResults(triples []Triple) []Result {
	results := make([]Result, 0, len(triples))
	for _, t := range triples {
		results = append(results, Result{End: t.End, Numbers: QualifyingNumbers(t)})
	}
	return results
}

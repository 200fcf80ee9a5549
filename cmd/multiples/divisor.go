package main

// DivisibleByEither reports whether n is divisible by either divisor of t.
// Parsing rejects zero divisors, so the modulo here can never fault.
func DivisibleByEither(t Triple, n uint32) bool {
	return n%t.A == 0 || n%t.B == 0
}

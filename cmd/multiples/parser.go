package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// parseToken parses one whitespace-separated token as an unsigned 32-bit
// integer. Unparseable tokens are absent rather than errors; the record
// check in parseTriple counts successes only.
func parseToken(tok string) mo.Option[uint32] {
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return mo.None[uint32]()
	}
	return mo.Some(uint32(v))
}

// parseTriple parses one input line into a Triple. lineNum is 1-based and
// is carried into any error.
func parseTriple(lineNum int, line string) (Triple, error) {
	var nums []uint32
	for _, tok := range strings.Fields(line) {
		if v, ok := parseToken(tok).Get(); ok {
			nums = append(nums, v)
		}
	}
	if len(nums) != 3 {
		return Triple{}, &FormatError{Line: lineNum, Found: len(nums)}
	}
	t := Triple{A: nums[0], B: nums[1], End: nums[2]}
	if t.A == 0 || t.B == 0 {
		return Triple{}, &InvalidDivisorError{Line: lineNum}
	}
	return t, nil
}

// ReadTriples reads the whole input file into triples. The first line that
// fails to parse aborts the read; no partial slice is returned.
func ReadTriples(path string) ([]Triple, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file %s: %w", path, err)
	}
	defer f.Close()

	var triples []Triple
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		t, err := parseTriple(lineNum, scanner.Text())
		if err != nil {
			return nil, err
		}
		triples = append(triples, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input file %s: %w", path, err)
	}
	return triples, nil
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseResultLine parses one rendered output line ("end:n1 n2 ...") back
// into a Result. It is the inverse of Result.String.
func ParseResultLine(line string) (Result, error) {
	endStr, numsStr, ok := strings.Cut(line, ":")
	if !ok {
		return Result{}, fmt.Errorf("missing ':' separator in %q", line)
	}
	end, err := strconv.ParseUint(endStr, 10, 32)
	if err != nil {
		return Result{}, fmt.Errorf("parsing upper bound in %q: %w", line, err)
	}
	r := Result{End: uint32(end)}
	for _, tok := range strings.Fields(numsStr) {
		n, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return Result{}, fmt.Errorf("parsing number %q in %q: %w", tok, line, err)
		}
		r.Numbers = append(r.Numbers, uint32(n))
	}
	return r, nil
}

// ReadRenderedResults reads an output file back into results, one per line.
func ReadRenderedResults(path string) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening output file %s: %w", path, err)
	}
	defer f.Close()

	var results []Result
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		r, err := ParseResultLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("output line %d: %w", lineNum, err)
		}
		results = append(results, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading output file %s: %w", path, err)
	}
	return results, nil
}

// VerifyOutput re-reads the written output file and compares it
// structurally with the computed results. A pass proves every rendered
// line round-trips back to the result it came from, in order.
func VerifyOutput(path string, want []Result) error {
	got, err := ReadRenderedResults(path)
	if err != nil {
		return err
	}
	if len(got) != len(want) {
		return &VerifyError{Reason: fmt.Sprintf("output has %d lines, expected %d", len(got), len(want))}
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			return &VerifyError{Position: i + 1, Reason: fmt.Sprintf("got %q, expected %q", got[i].String(), want[i].String())}
		}
	}
	return nil
}

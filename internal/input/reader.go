// Package input reads the whitespace-delimited integer files consumed by
// the sort and produced by the generators.
package input

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/hypersort/pkg/errors"
)

// ReadFile loads an input file: one positive integer N followed by N
// decimal int32 values, separated by any whitespace. Trailing whitespace
// is tolerated; fewer than N values is a fatal argument error.
func ReadFile(path string) ([]int32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.CodeIOError, "open input file", err)
	}
	defer file.Close()

	return Read(file)
}

// Read parses the input format from r.
func Read(r io.Reader) ([]int32, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(errors.CodeIOError, "read input", err)
		}
		return nil, errors.New(errors.CodeInvalidArgs, "input is empty")
	}

	n, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return nil, errors.Newf(errors.CodeInvalidArgs, "invalid element count %q", scanner.Text())
	}
	if n <= 0 {
		return nil, errors.Newf(errors.CodeInvalidArgs, "element count must be positive, got %d", n)
	}

	values := make([]int32, 0, n)
	for len(values) < n {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrap(errors.CodeIOError, "read input", err)
			}
			return nil, errors.Newf(errors.CodeInvalidArgs,
				"input ends after %d of %d values", len(values), n)
		}
		v, err := strconv.ParseInt(scanner.Text(), 10, 32)
		if err != nil {
			return nil, errors.Newf(errors.CodeInvalidArgs,
				"invalid value %q at position %d", scanner.Text(), len(values))
		}
		values = append(values, int32(v))
	}

	return values, nil
}

// ValidateForProcs checks the launch constraints: the element count must
// divide evenly across procs, and procs must be a power of two.
func ValidateForProcs(n, procs int) error {
	if procs < 1 {
		return errors.Newf(errors.CodeInvalidArgs, "process count must be positive, got %d", procs)
	}
	if procs&(procs-1) != 0 {
		return errors.Newf(errors.CodeInvalidArgs, "process count must be a power of two, got %d", procs)
	}
	if n%procs != 0 {
		return errors.Newf(errors.CodeInvalidArgs,
			"N (%d) must be divisible by the number of processes (%d)", n, procs)
	}
	return nil
}

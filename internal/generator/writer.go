package generator

import (
	"bufio"
	"os"
	"strconv"

	"github.com/hypersort/pkg/errors"
)

// WriteFile writes values in the sort's input format: the count on the
// first line, then one value per line.
func WriteFile(path string, values []int32) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.CodeIOError, "create output file", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if _, err := w.WriteString(strconv.Itoa(len(values)) + "\n"); err != nil {
		return errors.Wrap(errors.CodeIOError, "write count", err)
	}
	for _, v := range values {
		if _, err := w.WriteString(strconv.FormatInt(int64(v), 10) + "\n"); err != nil {
			return errors.Wrap(errors.CodeIOError, "write value", err)
		}
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(errors.CodeIOError, "flush output file", err)
	}
	return nil
}

package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hypersort/pkg/errors"
)

func TestReadBasic(t *testing.T) {
	values, err := Read(strings.NewReader("8\n5 3 8 1 7 2 6 4"))
	require.NoError(t, err)
	assert.Equal(t, []int32{5, 3, 8, 1, 7, 2, 6, 4}, values)
}

func TestReadMixedWhitespaceAndTrailing(t *testing.T) {
	// Generators emit one value per line with a trailing newline; any
	// whitespace between tokens must be accepted.
	values, err := Read(strings.NewReader("4\n1\n\t2   3\r\n4 \n"))
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3, 4}, values)
}

func TestReadInt32Extremes(t *testing.T) {
	values, err := Read(strings.NewReader("2 2147483647 -2147483648"))
	require.NoError(t, err)
	assert.Equal(t, []int32{2147483647, -2147483648}, values)
}

func TestReadIgnoresExtraTokens(t *testing.T) {
	values, err := Read(strings.NewReader("2 10 20 30 40"))
	require.NoError(t, err)
	assert.Equal(t, []int32{10, 20}, values)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t"},
		{"non-integer count", "eight 1 2"},
		{"zero count", "0"},
		{"negative count", "-4 1 2 3 4"},
		{"short input", "4 1 2 3"},
		{"non-integer value", "2 1 two"},
		{"value overflows int32", "1 2147483648"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Equal(t, apperrors.CodeInvalidArgs, apperrors.GetErrorCode(err))
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("3\n9 8 7\n"), 0644))

	values, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int32{9, 8, 7}, values)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeIOError, apperrors.GetErrorCode(err))
}

func TestValidateForProcs(t *testing.T) {
	assert.NoError(t, ValidateForProcs(8, 4))
	assert.NoError(t, ValidateForProcs(8, 1))

	assert.Error(t, ValidateForProcs(8, 3))
	assert.Error(t, ValidateForProcs(10, 4))
	assert.Error(t, ValidateForProcs(8, 0))
}

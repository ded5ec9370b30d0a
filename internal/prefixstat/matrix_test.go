package prefixstat_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idelchi/prefixstat/internal/prefixstat"
)

func TestMatrixAdd(t *testing.T) {
	m := new(prefixstat.Matrix)

	m.Add([]byte("AB"))
	m.Add([]byte("A"))

	require.Equal(t, uint32(2), m[0]['A'])
	require.Equal(t, uint32(1), m[1]['B'])
	require.Equal(t, uint64(3), m.Total())
}

func TestMatrixAdd_IgnoresBytesPastWindow(t *testing.T) {
	m := new(prefixstat.Matrix)

	prefix := bytes.Repeat([]byte{0x7f}, prefixstat.WindowSize+100)
	m.Add(prefix)

	require.Equal(t, uint64(prefixstat.WindowSize), m.Total())
	require.Equal(t, uint32(1), m[prefixstat.WindowSize-1][0x7f])
}

func TestMatrixWriteTo_EmptyMatrixIsFullyPrinted(t *testing.T) {
	var buf bytes.Buffer

	n, err := new(prefixstat.Matrix).WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, prefixstat.WindowSize)

	zeroRow := strings.TrimSuffix(strings.Repeat("0,", prefixstat.ByteValues), ",")
	for _, line := range lines {
		require.Equal(t, zeroRow, line)
	}
}

func TestMatrixWriteTo_Layout(t *testing.T) {
	m := new(prefixstat.Matrix)
	m[0][0] = 3
	m[0][255] = 12
	m[prefixstat.WindowSize-1][65] = 4000000000

	var buf bytes.Buffer

	_, err := m.WriteTo(&buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, prefixstat.WindowSize)

	first := strings.Split(lines[0], ",")
	require.Len(t, first, prefixstat.ByteValues)
	require.Equal(t, "3", first[0])
	require.Equal(t, "12", first[255])

	last := strings.Split(lines[prefixstat.WindowSize-1], ",")
	require.Len(t, last, prefixstat.ByteValues)
	require.Equal(t, "4000000000", last[65])
	require.Equal(t, "0", last[64])
}

func TestMatrixWriteFile(t *testing.T) {
	m := new(prefixstat.Matrix)
	m.Add([]byte("hello"))

	path := filepath.Join(t.TempDir(), "matrix.csv")
	require.NoError(t, m.WriteFile(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	var want bytes.Buffer

	_, err = m.WriteTo(&want)
	require.NoError(t, err)
	require.Equal(t, want.Bytes(), got)
}

func TestMatrixWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "matrix.csv")

	err := new(prefixstat.Matrix).WriteFile(path)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

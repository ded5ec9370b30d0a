package prefixstat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WindowSize is the number of leading bytes sampled from each file.
const WindowSize = 4 * 1024

// ByteValues is the number of distinct byte values, one matrix column each.
const ByteValues = 256

// Matrix counts byte values per offset across all sampled files.
// Cell [i][v] is the number of files whose prefix held byte v at offset i.
//
// A Matrix is 4 MiB; allocate it with new(Matrix) and pass it by pointer.
type Matrix [WindowSize][ByteValues]uint32

// Add records one sampled prefix. Bytes beyond WindowSize are ignored.
func (m *Matrix) Add(prefix []byte) {
	if len(prefix) > WindowSize {
		prefix = prefix[:WindowSize]
	}

	for offset, value := range prefix {
		m[offset][value]++
	}
}

// Total returns the sum of all cells.
func (m *Matrix) Total() uint64 {
	var total uint64

	for offset := range m {
		for _, count := range m[offset] {
			total += uint64(count)
		}
	}

	return total
}

// WriteTo serializes the matrix as WindowSize newline-terminated rows of
// ByteValues comma-separated decimal counters.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)

	var (
		written int64
		line    = make([]byte, 0, ByteValues*4)
	)

	for offset := range m {
		line = line[:0]

		for value, count := range m[offset] {
			if value != 0 {
				line = append(line, ',')
			}

			line = strconv.AppendUint(line, uint64(count), 10)
		}

		line = append(line, '\n')

		n, err := bw.Write(line)
		written += int64(n)

		if err != nil {
			return written, fmt.Errorf("writing row %d: %w", offset, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("flushing matrix: %w", err)
	}

	return written, nil
}

// WriteFile creates (or truncates) path and serializes the matrix into it.
func (m *Matrix) WriteFile(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", closeErr)
		}
	}()

	if _, err := m.WriteTo(file); err != nil {
		return fmt.Errorf("writing output file %q: %w", path, err)
	}

	return nil
}

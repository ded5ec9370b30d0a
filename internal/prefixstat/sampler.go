package prefixstat

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Sampler reads file prefixes into a buffer reused across files.
type Sampler struct {
	buf [WindowSize]byte
}

// Sample reads up to WindowSize bytes from the start of the file at path.
// The returned slice aliases the sampler's buffer and is only valid until
// the next call. The file is closed before Sample returns.
func (s *Sampler) Sample(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer file.Close()

	n, err := io.ReadFull(file, s.buf[:])

	switch {
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return s.buf[:n], nil
	default:
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
}

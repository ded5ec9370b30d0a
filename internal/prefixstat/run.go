package prefixstat

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charlievieth/fastwalk"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
	out     io.Writer
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(l.out, format, args...)
	}
}

// walker threads the run state through traversal and sampling.
// Its callbacks never run concurrently, so none of its fields are locked.
type walker struct {
	matrix  *Matrix
	sampler *Sampler
	stats   *Stats
	every   uint64
	hooks   Hooks
	log     logger
}

// visit classifies a single entry by its own mode and dispatches it.
// Directories are only counted here; fastwalk descends into them.
func (w *walker) visit(path string, mode fs.FileMode) error {
	switch kind := KindOf(mode); kind {
	case KindFile:
		return w.sample(path)
	case KindDir:
		w.stats.Dirs++

		return nil
	default:
		w.stats.Skipped++
		w.log.printf("[debug]: skipping %s (%s): %s\n", kind, mode.Type(), path)

		return nil
	}
}

// sample adds the prefix of a regular file to the matrix.
func (w *walker) sample(path string) error {
	prefix, err := w.sampler.Sample(path)
	if err != nil {
		return err
	}

	w.matrix.Add(prefix)

	w.stats.Files++
	w.stats.BytesSampled += uint64(len(prefix))

	if len(prefix) == WindowSize {
		w.stats.FullWindows++
	}

	w.log.printf("[debug]: sampled %d bytes: %s\n", len(prefix), path)

	if w.hooks.Progress != nil && w.stats.Files%w.every == 0 {
		w.hooks.Progress(w.stats.Files)
	}

	return nil
}

// walkDir walks the tree rooted at the directory root.
// A single fastwalk worker keeps every callback sequential, and the first
// error returned by a callback stops the walk.
//
//nolint:varnamelen // d is standard for DirEntry
func (w *walker) walkDir(root string) error {
	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: 1,
	}

	w.stats.Dirs++

	return fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %q: %w", path, err)
		}

		// The root was counted above.
		if path == root {
			return nil
		}

		return w.visit(path, d.Type())
	})
}

// processRoot classifies root without following it when it is a symlink.
func (w *walker) processRoot(root string) error {
	info, err := os.Lstat(root)
	if err != nil {
		return fmt.Errorf("accessing root: %w", err)
	}

	w.log.printf("[debug]: root %s is a %s\n", root, KindOf(info.Mode()))

	if info.IsDir() {
		return w.walkDir(root)
	}

	return w.visit(root, info.Mode())
}

// Run samples every regular file under opt.Roots, in order, into a fresh
// Matrix and returns it together with the run statistics.
//
// The first error aborts the whole run: no partial result is returned.
// Hooks are invoked synchronously from the walk.
func Run(opt Options, hooks Hooks) (*Result, error) {
	if len(opt.Roots) == 0 {
		return nil, errors.New("no roots given")
	}

	if opt.ProgressEvery == 0 {
		opt.ProgressEvery = DefaultProgressEvery
	}

	if opt.DebugOutput == nil {
		opt.DebugOutput = os.Stderr
	}

	log := logger{enabled: opt.Debug, out: opt.DebugOutput}

	log.printf("[debug]: window size: %d bytes\n", WindowSize)
	log.printf("[debug]: roots:\n")

	for _, root := range opt.Roots {
		log.printf("[debug]:   - %s\n", root)
	}

	result := &Result{Matrix: new(Matrix)}

	w := &walker{
		matrix:  result.Matrix,
		sampler: new(Sampler),
		stats:   &result.Stats,
		every:   opt.ProgressEvery,
		hooks:   hooks,
		log:     log,
	}

	start := time.Now()

	for _, root := range opt.Roots {
		if hooks.Root != nil {
			hooks.Root(root)
		}

		if err := w.processRoot(filepath.Clean(root)); err != nil {
			return nil, fmt.Errorf("processing root %q: %w", root, err)
		}

		result.Stats.Roots++
	}

	result.Stats.Elapsed = time.Since(start)

	return result, nil
}

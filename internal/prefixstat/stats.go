package prefixstat

import (
	"io"
	"io/fs"
	"time"
)

// DefaultProgressEvery is the default number of processed files between progress updates.
const DefaultProgressEvery = 1000

// Kind classifies a filesystem entry by its own (non-followed) mode.
type Kind uint8

const (
	// KindFile is a regular file.
	KindFile Kind = iota
	// KindDir is a directory.
	KindDir
	// KindOther is anything else: symlinks, devices, sockets, fifos.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "other"
	}
}

// KindOf derives the Kind from the type bits of mode.
func KindOf(mode fs.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	default:
		return KindOther
	}
}

// Stats holds aggregate counters for a run.
type Stats struct {
	// Roots is the number of roots processed.
	Roots int `json:"roots"`
	// Files is the number of regular files sampled.
	Files uint64 `json:"files"`
	// Dirs is the number of directories entered, roots included.
	Dirs uint64 `json:"dirs"`
	// Skipped is the number of entries that were neither files nor directories.
	Skipped uint64 `json:"skipped"`
	// BytesSampled is the number of bytes added to the matrix.
	BytesSampled uint64 `json:"bytes_sampled"`
	// FullWindows is the number of files that filled the whole window.
	FullWindows uint64 `json:"full_windows"`
	// Elapsed is the total time taken for the walk.
	Elapsed time.Duration `json:"elapsed"`
}

// Result is the outcome of a successful run.
type Result struct {
	// Matrix holds the accumulated counters.
	Matrix *Matrix
	// Stats summarizes the run.
	Stats Stats
}

// Hooks receives run events. Nil hooks are ignored.
type Hooks struct {
	// Root is called before each root is processed.
	Root func(root string)
	// Progress is called each time the processed file count reaches a
	// multiple of Options.ProgressEvery.
	Progress func(files uint64)
}

// Options configures a run and CLI behavior.
type Options struct {
	// Roots are the paths to process, in order.
	Roots []string
	// Output is the path of the matrix file.
	Output string
	// Format is the summary format (table or json).
	Format string
	// ProgressEvery controls progress hook cadence (0 = DefaultProgressEvery).
	ProgressEvery uint64
	// Quiet suppresses progress output.
	Quiet bool
	// Debug indicates whether debug output is enabled.
	Debug bool
	// DebugOutput receives debug output (nil = stderr).
	DebugOutput io.Writer
}

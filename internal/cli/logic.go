package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/prefixstat/internal/prefixstat"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

// progressHooks renders root and progress events to w.
// On a terminal the progress counter is rewritten in place.
func progressHooks(w io.Writer, inPlace bool) prefixstat.Hooks {
	hooks := prefixstat.Hooks{
		Root: func(root string) {
			if inPlace {
				fmt.Fprint(w, "\r\033[2K")
			}

			fmt.Fprintf(w, "processing root: %s\n", root)
		},
	}

	if inPlace {
		hooks.Progress = func(files uint64) {
			fmt.Fprintf(w, "\r\033[2Kprocessed %s files\r", humanize.Comma(int64(files))) //nolint:gosec // Count fits
		}
	} else {
		hooks.Progress = func(files uint64) {
			fmt.Fprintf(w, "processed %s files\n", humanize.Comma(int64(files))) //nolint:gosec // Count fits
		}
	}

	return hooks
}

func logic(options prefixstat.Options, stdout, stderr io.Writer) error {
	inPlace := !options.Quiet && !options.Debug && isTerminal(stderr)

	var hooks prefixstat.Hooks

	if !options.Quiet {
		hooks = progressHooks(stderr, inPlace)
	}

	if inPlace {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")
	}

	options.DebugOutput = stderr

	result, err := prefixstat.Run(options, hooks)

	// Clear the status line
	if inPlace {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if !options.Quiet {
		fmt.Fprintf(stderr, "finished %s files, writing result file...\n",
			humanize.Comma(int64(result.Stats.Files))) //nolint:gosec // Count fits
	}

	if err := result.Matrix.WriteFile(options.Output); err != nil {
		return err
	}

	if options.Format == "json" {
		return PrintJSON(&result.Stats, stdout)
	}

	return PrintTable(&result.Stats, options.Output, stdout)
}

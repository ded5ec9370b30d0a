package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/prefixstat/internal/prefixstat"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// allowedFormats lists the supported summary formats.
//
//nolint:gochecknoglobals // Config constant
var allowedFormats = []string{"table", "json"}

// bindFlags registers all flags on flags, storing values into options.
func bindFlags(flags *pflag.FlagSet, options *prefixstat.Options) {
	flags.StringVarP(&options.Format, "format", "f", "table", "Summary format: table or json")
	flags.BoolVarP(&options.Quiet, "quiet", "q", false, "Suppress progress output")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")

	flags.SortFlags = false
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var options prefixstat.Options

	cmd := &cobra.Command{
		Use:   "prefixstat [flags] <output> <dir>...",
		Short: "Positional byte-frequency histogram over file prefixes",
		Long: heredoc.Docf(`
			prefixstat samples the first %d bytes of every regular file found under
			one or more directories and counts, for every offset, how often each
			byte value occurs.

			The result is written to <output> as %d lines of 256 comma-separated
			counters: line i, column v is the number of files holding byte v at
			offset i.

			Symbolic links and special files are skipped, never followed.
			Any I/O error aborts the run.
		`, prefixstat.WindowSize, prefixstat.WindowSize),
		Example: heredoc.Doc(`
			prefixstat matrix.csv /usr/bin /usr/lib
			prefixstat --format json -q matrix.csv ./corpus
		`),
		Version:       c.version,
		Args:          cobra.MinimumNArgs(2), //nolint:mnd // <output> and at least one <dir>
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(allowedFormats, options.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", options.Format, allowedFormats)
			}

			// Arguments are valid past this point; runtime errors don't need the usage text.
			cmd.SilenceUsage = true

			options.Output = args[0]
			options.Roots = args[1:]

			return logic(options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	bindFlags(cmd.Flags(), &options)

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	cmd := c.Command()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)

		return err
	}

	return nil
}

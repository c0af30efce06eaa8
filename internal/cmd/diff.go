package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ivbench/cli/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Compare two sweep configurations",
		Long: `Compare two sweep configuration files structurally.

Values are compared by their path in the document, so reordered keys and
formatting changes do not show up. Prints nothing when the files are
semantically identical.

Examples:
  ivbench diff baseline.json tuned.json`,
		Args: cobra.ExactArgs(2),
		RunE: runDiff,
	}
}

func runDiff(cmd *cobra.Command, args []string) error {
	report, err := output.DiffFiles(args[0], args[1])
	if err != nil {
		return err
	}

	if report == "" {
		output.Println(output.FormatCheckmark("no differences"))
		return nil
	}

	output.Print(report)
	return nil
}

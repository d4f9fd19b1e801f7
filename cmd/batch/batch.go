// Package batch implements the batch command, which analyzes every credit
// analysis file in a directory.
package batch

import (
	"context"
	"fmt"
	"io"

	"fjacquet/creditlens/cmd/root"
	"fjacquet/creditlens/internal/batch"
	"fjacquet/creditlens/internal/container"
	"fjacquet/creditlens/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze every credit analysis file in a directory",
	Long: `Batch analyzes all .txt and .md files in an input directory and writes a
CSV with one row per file: format, bureau scores, finding counts and the
total of reported amounts.

Files are analyzed concurrently (batch.workers). Any unreadable file aborts
the run.

Example:
  creditlens batch -i analyses/ -o summary.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c, root.SharedFlags.Input, root.SharedFlags.Output, cmd.OutOrStdout())
	},
}

// Run analyzes inputDir and writes the CSV to output, or stdout when empty.
func Run(ctx context.Context, c *container.Container, inputDir, output string, stdout io.Writer) error {
	if inputDir == "" {
		return fmt.Errorf("an input directory is required (-i <dir>)")
	}
	if err := validation.IsValidDirectory(inputDir); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := c.GetBatchAnalyzer().AnalyzeDir(ctx, inputDir)
	if err != nil {
		return err
	}

	delim := c.GetConfig().DelimiterRune()
	if output == "" {
		return batch.WriteCSV(stdout, rows, delim)
	}
	return batch.WriteCSVFile(output, rows, delim, c.GetLogger())
}

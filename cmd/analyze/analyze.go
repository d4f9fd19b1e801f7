// Package analyze implements the analyze command, which parses one credit
// analysis and renders the findings.
package analyze

import (
	"io"

	"fjacquet/creditlens/cmd/common"
	"fjacquet/creditlens/cmd/root"
	"fjacquet/creditlens/internal/container"
	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/parsererror"
	"fjacquet/creditlens/internal/report"
	"fjacquet/creditlens/internal/textutils"
	"fjacquet/creditlens/internal/validation"

	"github.com/spf13/cobra"
)

// Options are the analyze command's inputs.
type Options struct {
	Input  string
	Output string
	Format string
	Raw    bool
	Strict bool
}

var flags Options

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract scores, negative items and factors from a credit analysis",
	Long: `Analyze reads a credit analysis (markdown text from the analysis service)
and prints the bureau scores, negative items and funding eligibility factors
it contains.

Unrecognized text is not an error: the output is then empty apart from the
raw analysis. Use --strict to fail instead.

Example:
  creditlens analyze -i analysis.md
  creditlens analyze -i - -f json < analysis.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		opts := flags
		opts.Input = root.SharedFlags.Input
		opts.Output = root.SharedFlags.Output
		return Run(c, opts, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().StringVarP(&flags.Format, "format", "f", "", "Output format: text, json, yaml, csv (default from output.format)")
	Cmd.Flags().BoolVar(&flags.Raw, "raw", false, "Append the raw analysis to text output")
	Cmd.Flags().BoolVar(&flags.Strict, "strict", false, "Fail when the text matches no known analysis format")
}

// Run parses opts.Input and writes the rendered summary.
func Run(c *container.Container, opts Options, stdin io.Reader, stdout io.Writer) error {
	cfg := c.GetConfig()
	log := c.GetLogger().WithField(logging.FieldOperation, "analyze")

	format := opts.Format
	if format == "" {
		format = cfg.Output.Format
	}
	if err := validation.IsValidOutputFormat(format); err != nil {
		return err
	}

	text, err := common.ReadInput(opts.Input, stdin)
	if err != nil {
		return err
	}

	p := c.GetParser()
	if opts.Strict && !p.Inspect(text).IsRecognized() {
		return &parsererror.InvalidFormatError{
			FilePath:             opts.Input,
			ExpectedFormat:       "credit analysis with '### Negative Items:' sections or bold factor labels",
			ActualContentSnippet: textutils.Snippet(text, 60),
			Msg:                  "no negative items or factors found",
		}
	}

	summary := p.Parse(text)
	log.Debug("Analysis parsed",
		logging.F(logging.FieldInputFile, opts.Input),
		logging.F(logging.FieldFormat, string(summary.Format)))

	generator := c.GetReportGenerator()
	if opts.Raw && !cfg.Output.IncludeRaw {
		generator = report.NewGenerator(report.Options{IncludeRaw: true, Delimiter: cfg.DelimiterRune()}, c.GetLogger())
	}
	out, err := generator.Generate(summary, format)
	if err != nil {
		return err
	}

	return common.WriteOutput(opts.Output, out, stdout, log)
}

// Package creditlens is the public entry point for programs that embed the
// credit analysis parser without the CLI.
package creditlens

import (
	"fjacquet/creditlens/internal/analysisparser"
	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/models"
	"fjacquet/creditlens/internal/report"
)

// Summary is the structured form of a credit analysis.
type Summary = models.AnalysisSummary

// NegativeItem is one derogatory entry of a Summary.
type NegativeItem = models.NegativeItem

// Bureau names a credit bureau.
type Bureau = models.Bureau

// Output formats accepted by Render.
const (
	FormatText = report.FormatText
	FormatJSON = report.FormatJSON
	FormatYAML = report.FormatYAML
	FormatCSV  = report.FormatCSV
)

var parser = analysisparser.New(logging.NewLogrusAdapter("warn", "text"))

// Parse extracts the findings of a credit analysis. It never fails; text in
// no known format yields an empty summary holding the raw text.
func Parse(text string) Summary {
	return parser.Parse(text)
}

// ParseFile reads and parses an analysis file.
func ParseFile(path string) (Summary, error) {
	return parser.ParseFile(path)
}

// Render formats a summary as text, json, yaml or csv.
func Render(s Summary, format string) ([]byte, error) {
	g := report.NewGenerator(report.Options{Delimiter: ','}, logging.NewLogrusAdapter("warn", "text"))
	return g.Generate(s, format)
}

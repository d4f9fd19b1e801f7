// Package analysisparser extracts structured findings (negative items,
// positive / negative factors, bureau scores) from the free-text credit
// analysis produced by the remote analysis service.
//
// Two grammars are supported. The primary grammar expects "###" sections with
// numbered, bold-titled items followed by "- Key: Value" details. The fallback
// grammar only understands bold labels followed by dash-separated lists.
// Parsing never fails: anything unrecognized degrades to an empty summary that
// keeps the raw text for display.
package analysisparser

import (
	"fmt"
	"io"

	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/models"
	"fjacquet/creditlens/internal/parser"
	"fjacquet/creditlens/internal/parsererror"
	"fjacquet/creditlens/internal/textutils"
)

const parserName = "analysis"

// Parser implements parser.FullParser for credit analysis text.
// It holds no per-call state and is safe for concurrent use.
type Parser struct {
	parser.BaseParser
	grammars map[models.Format]Grammar
}

var _ parser.FullParser = (*Parser)(nil)

// New creates a Parser logging through logger.
func New(logger logging.Logger) *Parser {
	return &Parser{
		BaseParser: parser.NewBaseParser(logger),
		grammars: map[models.Format]Grammar{
			models.FormatPrimary:  parsePrimary,
			models.FormatFallback: parseFallback,
		},
	}
}

var defaultParser = New(logging.NewLogrusAdapter("warn", "text"))

// Parse parses text with a package-level parser that logs warnings to stderr.
func Parse(text string) models.AnalysisSummary {
	return defaultParser.Parse(text)
}

// Inspect runs the grammar DetectFormat selects and returns its tagged result,
// without scores. It lets callers tell "nothing recognized" from "recognized
// but empty".
func (p *Parser) Inspect(text string) (result Result) {
	format := DetectFormat(text)
	defer func() {
		if r := recover(); r != nil {
			p.logFailure(text, string(format), r)
			result = Unrecognized()
		}
	}()
	return p.grammars[format](text)
}

// Parse extracts an AnalysisSummary from text. It always returns a summary
// whose RawAnalysis equals text.
func (p *Parser) Parse(text string) (summary models.AnalysisSummary) {
	stage := "format_detection"
	defer func() {
		if r := recover(); r != nil {
			p.logFailure(text, stage, r)
			summary = models.EmptySummary(text)
		}
	}()

	format := DetectFormat(text)
	stage = string(format)

	summary = models.EmptySummary(text)
	if s, ok := p.grammars[format](text).Summary(); ok {
		summary = s
	}

	stage = "scores"
	scores, overflowed := extractCreditScores(text)
	for _, raw := range overflowed {
		p.GetLogger().Warn("Skipping credit score that does not fit an integer",
			logging.F(logging.FieldOperation, "parse_analysis"),
			logging.F("match", raw))
	}
	summary.CreditScores = scores

	p.GetLogger().Debug("Parsed credit analysis",
		logging.F(logging.FieldFormat, string(summary.Format)),
		logging.F("negative_items", len(summary.NegativeItems)),
		logging.F("positive_factors", len(summary.PositiveFactors)),
		logging.F("negative_factors", len(summary.NegativeFactors)),
		logging.F("scores", len(summary.CreditScores)))

	return summary
}

// ParseReader reads all of r and parses it.
func (p *Parser) ParseReader(r io.Reader) (models.AnalysisSummary, error) {
	text, err := p.ReadAll(r)
	if err != nil {
		return models.AnalysisSummary{}, err
	}
	return p.Parse(text), nil
}

// ParseFile reads the file at path and parses it.
func (p *Parser) ParseFile(path string) (models.AnalysisSummary, error) {
	text, err := p.ReadFile(path)
	if err != nil {
		return models.AnalysisSummary{}, err
	}
	return p.Parse(text), nil
}

func (p *Parser) logFailure(text, stage string, recovered interface{}) {
	err := &parsererror.ParseError{Parser: parserName, Stage: stage, Err: fmt.Errorf("%v", recovered)}
	p.GetLogger().WithError(err).Error("Error parsing analysis result",
		logging.F(logging.FieldOperation, "parse_analysis"),
		logging.F("snippet", textutils.Snippet(text, 80)))
}

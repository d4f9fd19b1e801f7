// Package parser defines the interfaces implemented by analysis parsers and
// the shared base they embed.
package parser

import (
	"io"

	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/models"
)

// AnalysisParser turns analysis text into a summary. Implementations never fail:
// unrecognized input yields an empty summary that keeps the raw text.
type AnalysisParser interface {
	Parse(text string) models.AnalysisSummary
}

// InputParser reads analysis text from a file or stream before parsing.
// Errors are limited to I/O; the parse itself still never fails.
type InputParser interface {
	ParseReader(r io.Reader) (models.AnalysisSummary, error)
	ParseFile(path string) (models.AnalysisSummary, error)
}

// LoggerConfigurable allows the logger of a parser to be replaced.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser combines every parser capability.
type FullParser interface {
	AnalysisParser
	InputParser
	LoggerConfigurable
}

package analysisparser

import "fjacquet/creditlens/internal/models"

// Result is the outcome of one grammar: either a recognized summary or nothing.
type Result struct {
	summary    models.AnalysisSummary
	recognized bool
}

// Recognized wraps a summary the grammar was able to extract.
func Recognized(summary models.AnalysisSummary) Result {
	return Result{summary: summary, recognized: true}
}

// Unrecognized reports that the grammar found none of its sections.
func Unrecognized() Result {
	return Result{}
}

// Summary returns the extracted summary and whether the grammar recognized the text.
func (r Result) Summary() (models.AnalysisSummary, bool) {
	return r.summary, r.recognized
}

// IsRecognized reports whether the grammar recognized the text.
func (r Result) IsRecognized() bool {
	return r.recognized
}

// Grammar extracts items and factors from text in one format. Scores are
// handled separately and are not a grammar's concern.
type Grammar func(text string) Result

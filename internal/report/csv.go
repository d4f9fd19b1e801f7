package report

import (
	"bytes"
	"fmt"
	"strconv"

	"fjacquet/creditlens/internal/common"
	"fjacquet/creditlens/internal/models"
)

// CSV sections.
const (
	SectionScore          = "score"
	SectionNegativeItem   = "negative_item"
	SectionPositiveFactor = "positive_factor"
	SectionNegativeFactor = "negative_factor"
)

// FindingRow is one line of the CSV rendering.
type FindingRow struct {
	Section string `csv:"section"`
	Title   string `csv:"title"`
	Key     string `csv:"key"`
	Value   string `csv:"value"`
}

// Rows flattens summary into one row per finding: a row per bureau score,
// a row per item detail (or one bare row for an item without details) and a
// row per factor.
func Rows(summary models.AnalysisSummary) []FindingRow {
	rows := []FindingRow{}

	for _, b := range models.Bureaus {
		if score, ok := summary.Score(b); ok {
			rows = append(rows, FindingRow{
				Section: SectionScore,
				Title:   string(b),
				Key:     string(models.BandFor(score)),
				Value:   strconv.Itoa(score),
			})
		}
	}

	for _, item := range summary.NegativeItems {
		if item.Details.Len() == 0 {
			rows = append(rows, FindingRow{Section: SectionNegativeItem, Title: item.Title})
			continue
		}
		for _, d := range item.Details.Entries() {
			rows = append(rows, FindingRow{Section: SectionNegativeItem, Title: item.Title, Key: d.Key, Value: d.Value})
		}
	}

	for _, f := range summary.PositiveFactors {
		rows = append(rows, FindingRow{Section: SectionPositiveFactor, Title: f})
	}
	for _, f := range summary.NegativeFactors {
		rows = append(rows, FindingRow{Section: SectionNegativeFactor, Title: f})
	}

	return rows
}

func (g *Generator) generateCSV(summary models.AnalysisSummary) ([]byte, error) {
	var buf bytes.Buffer
	if err := common.WriteCSV(&buf, Rows(summary), g.opts.Delimiter); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return buf.Bytes(), nil
}

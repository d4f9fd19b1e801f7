package report

import (
	"fmt"
	"math"
	"strings"

	"fjacquet/creditlens/internal/currencyutils"
	"fjacquet/creditlens/internal/dateutils"
	"fjacquet/creditlens/internal/models"
)

const (
	gaugeCells = 20
	// US bureaus report in dollars.
	reportCurrency = "USD"
)

var kindMarkers = map[models.DetailKind]string{
	models.KindMoney:   "$",
	models.KindDate:    "@",
	models.KindAccount: "#",
	models.KindDays:    "~",
	models.KindOther:   "-",
}

// generateText mirrors the result card: scores with gauge and band, then the
// negative items, positive factors and areas for improvement. Empty sections
// are omitted.
func (g *Generator) generateText(summary models.AnalysisSummary) []byte {
	var b strings.Builder

	heading(&b, "Credit Analysis Summary", "=")

	if len(summary.CreditScores) > 0 {
		heading(&b, "Credit Scores", "-")
		for _, bureau := range models.Bureaus {
			score, ok := summary.Score(bureau)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "  %-11s %4d  %s %-9s\n", bureau, score, Gauge(score), models.BandFor(score))
		}
		b.WriteString("\n")
	}

	if len(summary.NegativeItems) > 0 {
		heading(&b, fmt.Sprintf("Negative Items (%d)", len(summary.NegativeItems)), "-")
		for i, item := range summary.NegativeItems {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, item.Title)
			for _, d := range item.Details.Entries() {
				fmt.Fprintf(&b, "     %s %s: %s\n", kindMarkers[d.Kind()], d.Key, d.Value)
			}
		}
		if total := summary.TotalBalance(); total.IsPositive() {
			fmt.Fprintf(&b, "  Total reported amounts: %s\n", currencyutils.FormatAmount(total, reportCurrency))
		}
		if earliest, ok := summary.EarliestDate(); ok {
			fmt.Fprintf(&b, "  Earliest reported date: %s\n", dateutils.ToISODate(earliest))
		}
		b.WriteString("\n")
	}

	if len(summary.PositiveFactors) > 0 {
		heading(&b, "Positive Factors", "-")
		for _, f := range summary.PositiveFactors {
			fmt.Fprintf(&b, "  + %s\n", f)
		}
		b.WriteString("\n")
	}

	if len(summary.NegativeFactors) > 0 {
		heading(&b, "Areas for Improvement", "-")
		for _, f := range summary.NegativeFactors {
			fmt.Fprintf(&b, "  ! %s\n", f)
		}
		b.WriteString("\n")
	}

	if !summary.HasFindings() {
		b.WriteString("No structured findings were recognized in this analysis.\n\n")
	}

	if g.opts.IncludeRaw || !summary.HasFindings() {
		heading(&b, "Raw Analysis", "-")
		b.WriteString(strings.TrimRight(summary.RawAnalysis, "\n"))
		b.WriteString("\n")
	}

	return []byte(b.String())
}

func heading(b *strings.Builder, title, underline string) {
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(underline, len(title)))
	b.WriteString("\n")
}

// Gauge draws the score's position in the 300-850 range as a bar of
// gaugeCells cells.
func Gauge(score int) string {
	filled := int(math.Round(models.GaugePercent(score) / 100 * gaugeCells))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", gaugeCells-filled) + "]"
}

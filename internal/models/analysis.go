// Package models defines the records shared across creditlens: the parsed
// credit analysis, the auth payloads and the funding application.
package models

import (
	"time"

	"fjacquet/creditlens/internal/dateutils"

	"github.com/shopspring/decimal"
)

// Format identifies which analysis grammar produced a summary.
type Format string

const (
	FormatUnrecognized Format = "unrecognized"
	FormatPrimary      Format = "primary"
	FormatFallback     Format = "fallback"
)

// Bureau is one of the three consumer credit-reporting agencies.
type Bureau string

const (
	TransUnion Bureau = "TransUnion"
	Equifax    Bureau = "Equifax"
	Experian   Bureau = "Experian"
)

// Bureaus lists the known bureaus in display order.
var Bureaus = []Bureau{TransUnion, Equifax, Experian}

// NegativeItem is a derogatory entry on a credit report.
type NegativeItem struct {
	Title   string  `json:"title" yaml:"title"`
	Details Details `json:"details" yaml:"details"`
}

// Amounts returns the parsed value of every money-kind detail, in detail order.
// Values without a parseable amount are skipped.
func (n NegativeItem) Amounts() []decimal.Decimal {
	var amounts []decimal.Decimal
	for _, d := range n.Details.Entries() {
		if KindFor(d.Key) != KindMoney {
			continue
		}
		if amount, ok := d.Amount(); ok {
			amounts = append(amounts, amount)
		}
	}
	return amounts
}

// TotalAmount sums Amounts.
func (n NegativeItem) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range n.Amounts() {
		total = total.Add(amount)
	}
	return total
}

// Dates returns the parsed value of every date-kind detail, in detail order.
func (n NegativeItem) Dates() []time.Time {
	var dates []time.Time
	for _, d := range n.Details.Entries() {
		if KindFor(d.Key) != KindDate {
			continue
		}
		if t, ok := d.Date(); ok {
			dates = append(dates, t)
		}
	}
	return dates
}

// AnalysisSummary is the structured form of a free-text credit analysis.
type AnalysisSummary struct {
	NegativeItems   []NegativeItem `json:"negativeItems" yaml:"negative_items"`
	PositiveFactors []string       `json:"positiveFactors" yaml:"positive_factors"`
	NegativeFactors []string       `json:"negativeFactors" yaml:"negative_factors"`
	CreditScores    map[Bureau]int `json:"creditScores" yaml:"credit_scores"`
	RawAnalysis     string         `json:"rawAnalysis" yaml:"raw_analysis"`
	Format          Format         `json:"format" yaml:"format"`
}

// EmptySummary returns a summary with every collection empty (not nil) and
// the raw text retained.
func EmptySummary(raw string) AnalysisSummary {
	return AnalysisSummary{
		NegativeItems:   []NegativeItem{},
		PositiveFactors: []string{},
		NegativeFactors: []string{},
		CreditScores:    map[Bureau]int{},
		RawAnalysis:     raw,
		Format:          FormatUnrecognized,
	}
}

// Normalized returns s with nil collections replaced by empty ones, so that
// serialized output always shows [] and {}.
func (s AnalysisSummary) Normalized() AnalysisSummary {
	if s.NegativeItems == nil {
		s.NegativeItems = []NegativeItem{}
	}
	if s.PositiveFactors == nil {
		s.PositiveFactors = []string{}
	}
	if s.NegativeFactors == nil {
		s.NegativeFactors = []string{}
	}
	if s.CreditScores == nil {
		s.CreditScores = map[Bureau]int{}
	}
	if s.Format == "" {
		s.Format = FormatUnrecognized
	}
	return s
}

// HasFindings reports whether anything beyond the raw text was extracted.
func (s AnalysisSummary) HasFindings() bool {
	return len(s.NegativeItems) > 0 ||
		len(s.PositiveFactors) > 0 ||
		len(s.NegativeFactors) > 0 ||
		len(s.CreditScores) > 0
}

// Score returns the score reported for a bureau.
func (s AnalysisSummary) Score(b Bureau) (int, bool) {
	score, ok := s.CreditScores[b]
	return score, ok
}

// TotalBalance sums the money-kind details across all negative items.
func (s AnalysisSummary) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.NegativeItems {
		total = total.Add(item.TotalAmount())
	}
	return total
}

// EarliestDate returns the earliest date-kind detail across all negative items.
func (s AnalysisSummary) EarliestDate() (time.Time, bool) {
	var dates []time.Time
	for _, item := range s.NegativeItems {
		dates = append(dates, item.Dates()...)
	}
	return dateutils.Earliest(dates)
}

package models

// Valid credit score range.
const (
	MinScore = 300
	MaxScore = 850
)

// ScoreBand is the qualitative rating shown next to a bureau score.
type ScoreBand string

const (
	BandPoor      ScoreBand = "Poor"
	BandFair      ScoreBand = "Fair"
	BandGood      ScoreBand = "Good"
	BandExcellent ScoreBand = "Excellent"
)

// BandFor rates a score: below 580 Poor, below 670 Fair, below 740 Good, else Excellent.
func BandFor(score int) ScoreBand {
	switch {
	case score < 580:
		return BandPoor
	case score < 670:
		return BandFair
	case score < 740:
		return BandGood
	default:
		return BandExcellent
	}
}

// GaugePercent maps a score onto 0-100 across the valid range, clamped.
func GaugePercent(score int) float64 {
	pct := float64(score-MinScore) / float64(MaxScore-MinScore) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// InRange reports whether score lies within [MinScore, MaxScore].
func InRange(score int) bool {
	return score >= MinScore && score <= MaxScore
}

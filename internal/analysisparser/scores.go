package analysisparser

import (
	"regexp"
	"strconv"

	"fjacquet/creditlens/internal/models"
)

var scorePattern = regexp.MustCompile(`(TransUnion|Equifax|Experian):\s*(\d+)`)

// extractCreditScores scans the whole text, regardless of format, for
// "<Bureau>: <digits>". Later occurrences overwrite earlier ones. Digit runs
// that overflow int are skipped and returned in overflowed.
func extractCreditScores(text string) (scores map[models.Bureau]int, overflowed []string) {
	scores = map[models.Bureau]int{}
	for _, m := range scorePattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			overflowed = append(overflowed, m[0])
			continue
		}
		scores[models.Bureau(m[1])] = n
	}
	return scores, overflowed
}

package analysisparser

import (
	"strings"

	"fjacquet/creditlens/internal/models"
	"fjacquet/creditlens/internal/textutils"
)

// parseFallback handles looser analyses that only use bold labels. Negative
// items come back as titles with no details.
func parseFallback(text string) Result {
	segments := textutils.SplitNonEmpty(text, boldMarker)

	itemTitles, hasItems := fallbackList(segments, fallbackNegativeItemsLabel)
	positive, hasPositive := fallbackList(segments, fallbackPositiveLabel)
	negative, hasNegative := fallbackList(segments, fallbackNegativeLabel)
	if !hasItems && !hasPositive && !hasNegative {
		return Unrecognized()
	}

	summary := models.EmptySummary(text)
	summary.Format = models.FormatFallback
	for _, title := range itemTitles {
		summary.NegativeItems = append(summary.NegativeItems, models.NegativeItem{Title: title})
	}
	summary.PositiveFactors = positive
	summary.NegativeFactors = negative

	return Recognized(summary)
}

// fallbackList finds the first segment introducing label and splits its
// content on the bullet marker.
//
// "Label: - a - b" carries its content after the first colon. A bare bold
// heading ("**Label**" or "**Label:**") takes the following segment instead,
// provided that segment is a bullet list.
func fallbackList(segments []string, label string) ([]string, bool) {
	prefix := label + ":"
	for i, seg := range segments {
		trimmed := strings.TrimSpace(seg)

		var content string
		switch {
		case strings.EqualFold(trimmed, label), strings.EqualFold(trimmed, prefix):
			content = followingList(segments, i)
		case textutils.HasPrefixFold(trimmed, prefix):
			_, content, _ = strings.Cut(seg, ":")
			if strings.TrimSpace(content) == "" {
				content = followingList(segments, i)
			}
		default:
			continue
		}

		return splitBullets(content), true
	}
	return []string{}, false
}

func followingList(segments []string, i int) string {
	if i+1 >= len(segments) {
		return ""
	}
	next := segments[i+1]
	if !strings.HasPrefix(strings.TrimSpace(next), textutils.BulletMarker) {
		return ""
	}
	return next
}

func splitBullets(content string) []string {
	pieces := textutils.SplitNonEmpty(content, textutils.BulletMarker)
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

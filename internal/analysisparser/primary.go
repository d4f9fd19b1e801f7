package analysisparser

import (
	"regexp"
	"strings"

	"fjacquet/creditlens/internal/models"
	"fjacquet/creditlens/internal/textutils"
)

var (
	// "1. **Title**" with optional dots; the title stays on one line.
	itemHeaderPattern = regexp.MustCompile(`\d+\s*\.*\s*\*\*(.*?)\*\*`)
	// Where the next item starts; ends the current item's detail block.
	itemBoundaryPattern = regexp.MustCompile(`\d+\s*\.*\s*\*\*`)
	boldTokenPattern    = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

// parsePrimary handles "###"-sectioned analyses with numbered, bold-titled items.
func parsePrimary(text string) Result {
	sections := textutils.SplitNonEmpty(text, sectionMarker)

	itemsSection, hasItems := findSection(sections, negativeItemsLabel)
	factorsSection, hasFactors := findSection(sections, factorsSectionLabel)
	if !hasItems && !hasFactors {
		return Unrecognized()
	}

	summary := models.EmptySummary(text)
	summary.Format = models.FormatPrimary
	summary.NegativeItems = parseNegativeItems(itemsSection)
	summary.PositiveFactors = parseFactors(factorsSection, positiveFactorsLabel)
	summary.NegativeFactors = parseFactors(factorsSection, negativeFactorsLabel)

	return Recognized(summary)
}

// findSection returns the first section whose trimmed content starts with label.
func findSection(sections []string, label string) (string, bool) {
	for _, s := range sections {
		if strings.HasPrefix(strings.TrimSpace(s), label) {
			return s, true
		}
	}
	return "", false
}

// parseNegativeItems scans the items section in match order. Each item's
// details run from the end of its bold title to the next item boundary.
func parseNegativeItems(section string) []models.NegativeItem {
	items := []models.NegativeItem{}
	content := strings.TrimSpace(strings.Replace(section, negativeItemsLabel, "", 1))

	pos := 0
	for pos < len(content) {
		loc := itemHeaderPattern.FindStringSubmatchIndex(content[pos:])
		if loc == nil {
			break
		}
		title := strings.TrimSpace(content[pos+loc[2] : pos+loc[3]])

		bodyStart := pos + loc[1]
		bodyEnd := len(content)
		if next := itemBoundaryPattern.FindStringIndex(content[bodyStart:]); next != nil {
			bodyEnd = bodyStart + next[0]
		}

		items = append(items, models.NegativeItem{
			Title:   title,
			Details: parseDetails(content[bodyStart:bodyEnd]),
		})
		pos = bodyEnd
	}

	return items
}

// parseDetails reads "- Key: Value" lines. Lines without a bullet, without a
// colon, or with an empty side are dropped.
func parseDetails(body string) models.Details {
	var details models.Details
	for _, line := range textutils.BulletLines(body) {
		if key, value, ok := textutils.KeyValue(line); ok {
			details.Set(key, value)
		}
	}
	return details
}

// parseFactors reads the bullet list following label, up to the next bold token.
func parseFactors(section, label string) []string {
	idx := strings.Index(section, label)
	if idx < 0 {
		return []string{}
	}

	block := section[idx+len(label):]
	// the "**" closing a bold label is part of the label, not the next token
	block = strings.TrimPrefix(block, boldMarker)
	if loc := boldTokenPattern.FindStringIndex(block); loc != nil {
		block = block[:loc[0]]
	}

	return textutils.BulletItems(block)
}

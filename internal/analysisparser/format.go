package analysisparser

import (
	"strings"

	"fjacquet/creditlens/internal/models"
)

// Markers of the primary format.
const (
	sectionMarker        = "###"
	primaryFormatMarker  = "### Negative Items:"
	negativeItemsLabel   = "Negative Items:"
	factorsSectionLabel  = "Factors Affecting Business Funding Eligibility:"
	positiveFactorsLabel = "Positive Factors:"
	negativeFactorsLabel = "Negative Factors:"
)

// Markers of the fallback format.
const (
	boldMarker                 = "**"
	fallbackNegativeItemsLabel = "Negative Items"
	fallbackPositiveLabel      = "Positive Factors"
	fallbackNegativeLabel      = "Negative Factors"
)

// DetectFormat selects the grammar for text: primary when it carries a
// "### Negative Items:" header, fallback otherwise.
func DetectFormat(text string) models.Format {
	if strings.Contains(text, primaryFormatMarker) {
		return models.FormatPrimary
	}
	return models.FormatFallback
}

// Package textutils provides the markdown-ish text helpers used when pulling
// structure out of generated analysis text.
package textutils

import (
	"strings"
)

// BulletMarker introduces a list line.
const BulletMarker = "-"

// SplitNonEmpty splits text on sep and drops pieces that are empty or
// whitespace-only. Kept pieces are returned untrimmed.
func SplitNonEmpty(text, sep string) []string {
	parts := strings.Split(text, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// BulletLines returns the trimmed lines of text that start with the bullet
// marker, with the marker still attached.
func BulletLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, BulletMarker) {
			out = append(out, line)
		}
	}
	return out
}

// StripBullet removes a leading bullet marker and surrounding whitespace.
func StripBullet(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), BulletMarker))
}

// BulletItems returns each bullet line of text with its marker stripped.
func BulletItems(text string) []string {
	lines := BulletLines(text)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, StripBullet(line))
	}
	return out
}

// KeyValue splits a "- Key: Value" bullet line at the first colon.
// ok is false when there is no colon or either side is empty.
func KeyValue(line string) (key, value string, ok bool) {
	k, v, found := strings.Cut(StripBullet(line), ":")
	if !found {
		return "", "", false
	}
	key, value = strings.TrimSpace(k), strings.TrimSpace(v)
	if key == "" || value == "" {
		return "", "", false
	}
	return key, value, true
}

// HasPrefixFold is strings.HasPrefix ignoring case.
func HasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// Snippet shortens text for log and error messages.
func Snippet(text string, max int) string {
	text = strings.TrimSpace(text)
	if max <= 0 || len(text) <= max {
		return text
	}
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}

// Package report renders a parsed credit analysis for people (text) and for
// other tools (JSON, YAML, CSV).
package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"fjacquet/creditlens/internal/common"
	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/models"

	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Options tune the rendered output. Structured formats always carry the raw
// analysis; IncludeRaw only affects the text rendering.
type Options struct {
	IncludeRaw bool
	Delimiter  rune
}

// Generator renders AnalysisSummary values.
type Generator struct {
	opts   Options
	logger logging.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(opts Options, logger logging.Logger) *Generator {
	if opts.Delimiter == 0 {
		opts.Delimiter = common.DefaultDelimiter
	}
	return &Generator{
		opts:   opts,
		logger: logger.WithField(logging.FieldComponent, "ReportGenerator"),
	}
}

// Generate renders summary in the given format.
func (g *Generator) Generate(summary models.AnalysisSummary, format string) ([]byte, error) {
	summary = summary.Normalized()

	switch format {
	case FormatText:
		return g.generateText(summary), nil
	case FormatJSON:
		return g.generateJSON(summary)
	case FormatYAML:
		return g.generateYAML(summary)
	case FormatCSV:
		return g.generateCSV(summary)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(summary models.AnalysisSummary) ([]byte, error) {
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *Generator) generateYAML(summary models.AnalysisSummary) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return buf.Bytes(), nil
}

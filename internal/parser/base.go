package parser

import (
	"fmt"
	"io"

	"fjacquet/creditlens/internal/fileutils"
	"fjacquet/creditlens/internal/logging"
)

// BaseParser provides the logger handling and input reading shared by parsers.
// Parsers embed it:
//
//	type MyParser struct {
//		parser.BaseParser
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser. A nil logger falls back to an info-level text logger.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return BaseParser{logger: logger}
}

// SetLogger replaces the logger; nil is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// ReadAll reads a whole input stream as text.
func (b *BaseParser) ReadAll(r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("nil reader")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading analysis input: %w", err)
	}
	return string(data), nil
}

// ReadFile reads a whole file as text.
func (b *BaseParser) ReadFile(path string) (string, error) {
	b.logger.Debug("Reading analysis file", logging.F(logging.FieldFile, path))
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading analysis file: %w", err)
	}
	return string(data), nil
}

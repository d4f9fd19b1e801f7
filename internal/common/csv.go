// Package common provides the CSV plumbing shared by the report and batch writers.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/creditlens/internal/fileutils"
	"fjacquet/creditlens/internal/logging"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter separates CSV fields unless configured otherwise.
const DefaultDelimiter = ','

// WriteCSV marshals rows with gocsv, using the struct's csv tags as header.
func WriteCSV[TRow any](w io.Writer, rows []TRow, delim rune) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}
	if delim == 0 {
		delim = DefaultDelimiter
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delim

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteCSVFile writes rows to path, creating parent directories as needed.
func WriteCSVFile[TRow any](path string, rows []TRow, delim rune, logger logging.Logger) error {
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteCSV(file, rows, delim); err != nil {
		logger.WithError(err).Error("Failed to marshal rows to CSV")
		return err
	}

	logger.Info("Wrote CSV file",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, len(rows)))
	return nil
}

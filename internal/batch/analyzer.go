// Package batch analyzes every credit analysis file in a directory and
// summarizes the results as one CSV row per file.
package batch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"fjacquet/creditlens/internal/common"
	"fjacquet/creditlens/internal/fileutils"
	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/models"

	"golang.org/x/sync/errgroup"
)

// Extensions of the files picked up from the input directory.
var Extensions = []string{".txt", ".md"}

// FileParser parses one analysis file.
type FileParser interface {
	ParseFile(path string) (models.AnalysisSummary, error)
}

// Row is the per-file summary written to the batch CSV. Scores are empty
// when the bureau was not reported.
type Row struct {
	File            string `csv:"file"`
	Format          string `csv:"format"`
	TransUnion      string `csv:"transunion"`
	Equifax         string `csv:"equifax"`
	Experian        string `csv:"experian"`
	NegativeItems   int    `csv:"negative_items"`
	PositiveFactors int    `csv:"positive_factors"`
	NegativeFactors int    `csv:"negative_factors"`
	TotalBalance    string `csv:"total_balance"`
}

// NewRow summarizes one parsed file.
func NewRow(file string, s models.AnalysisSummary) Row {
	score := func(b models.Bureau) string {
		if v, ok := s.Score(b); ok {
			return strconv.Itoa(v)
		}
		return ""
	}
	return Row{
		File:            file,
		Format:          string(s.Format),
		TransUnion:      score(models.TransUnion),
		Equifax:         score(models.Equifax),
		Experian:        score(models.Experian),
		NegativeItems:   len(s.NegativeItems),
		PositiveFactors: len(s.PositiveFactors),
		NegativeFactors: len(s.NegativeFactors),
		TotalBalance:    s.TotalBalance().StringFixed(2),
	}
}

// Analyzer parses directories of analysis files concurrently.
type Analyzer struct {
	parser  FileParser
	workers int
	logger  logging.Logger
}

// NewAnalyzer creates an Analyzer running at most workers parses at a time.
func NewAnalyzer(parser FileParser, workers int, logger logging.Logger) *Analyzer {
	if workers < 1 {
		workers = 1
	}
	return &Analyzer{parser: parser, workers: workers, logger: logger}
}

// AnalyzeDir parses every .txt and .md file directly inside dir and returns
// one row per file, sorted by file name. The first failure cancels the
// remaining work and is returned.
func (a *Analyzer) AnalyzeDir(ctx context.Context, dir string) ([]Row, error) {
	start := time.Now()

	files, err := fileutils.ListFilesWithExtensions(dir, Extensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	rows := make([]Row, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summary, err := a.parser.ParseFile(path)
			if err != nil {
				return fmt.Errorf("failed to analyze %s: %w", filepath.Base(path), err)
			}
			rows[i] = NewRow(filepath.Base(path), summary)
			a.logger.Debug("Analyzed file",
				logging.F(logging.FieldFile, path),
				logging.F(logging.FieldFormat, string(summary.Format)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.logger.WithError(err).Error("Batch analysis failed", logging.F(logging.FieldInputFile, dir))
		return nil, err
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].File < rows[j].File })

	a.logger.Info("Batch analysis completed",
		logging.F(logging.FieldInputFile, dir),
		logging.F(logging.FieldCount, len(rows)),
		logging.F(logging.FieldDuration, time.Since(start).String()))
	return rows, nil
}

// WriteCSV writes rows with a header line.
func WriteCSV(w io.Writer, rows []Row, delim rune) error {
	return common.WriteCSV(w, rows, delim)
}

// WriteCSVFile writes rows to path, creating parent directories as needed.
func WriteCSVFile(path string, rows []Row, delim rune, logger logging.Logger) error {
	return common.WriteCSVFile(path, rows, delim, logger)
}

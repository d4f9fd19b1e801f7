// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"os"

	"fjacquet/creditlens/internal/fileutils"
	"fjacquet/creditlens/internal/logging"
	"fjacquet/creditlens/internal/validation"
)

// Stdin is the input name that selects standard input.
const Stdin = "-"

// ReadInput returns the contents of path, or of stdin when path is "-".
func ReadInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		return "", fmt.Errorf("an input file is required (use -i <file> or -i - for stdin)")
	}
	if path == Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	if err := validation.IsValidFile(path); err != nil {
		return "", err
	}
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteOutput writes data to path, or to stdout when path is empty.
func WriteOutput(path string, data []byte, stdout io.Writer, log logging.Logger) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := fileutils.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Info("Wrote output", logging.F(logging.FieldOutputFile, path))
	return nil
}

// PasswordFromEnv returns flagValue, or the CREDITLENS_PASSWORD variable when
// the flag is empty.
func PasswordFromEnv(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("CREDITLENS_PASSWORD")
}

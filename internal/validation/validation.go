// Package validation holds input checks shared by the CLI commands and forms.
package validation

import (
	"fmt"
	"net/mail"
	"os"
	"strings"
)

// OutputFormats lists the supported rendering formats.
var OutputFormats = []string{"text", "json", "yaml", "csv"}

// IsValidFile checks that path exists and is a regular file.
func IsValidFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}
	return nil
}

// IsValidDirectory checks that path exists and is a directory.
func IsValidDirectory(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %s is not a directory", path)
	}
	return nil
}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	for _, f := range OutputFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are %s", format, strings.Join(OutputFormats, ", "))
}

// IsValidEmail accepts a bare address such as "jane@example.com". Display
// names ("Jane <jane@example.com>") are rejected.
func IsValidEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@"):], ".") {
		return fmt.Errorf("invalid email address: %q", email)
	}
	return nil
}

// IsValidFilePermissions checks that a file holding secrets is not readable
// by group or others.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode.Perm()&0077 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600", mode.Perm().String())
	}
	return nil
}

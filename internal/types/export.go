package types

import (
	"strings"

	ierr "github.com/deespora/backoffice/internal/errors"
)

// FileFormat is a user import/export file format
type FileFormat string

const (
	FileFormatCSV  FileFormat = "csv"
	FileFormatJSON FileFormat = "json"
)

// ParseFileFormat accepts a format name or a file name with that extension
func ParseFileFormat(s string) (FileFormat, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.LastIndex(s, "."); i >= 0 {
		s = s[i+1:]
	}
	switch FileFormat(s) {
	case FileFormatCSV, FileFormatJSON:
		return FileFormat(s), nil
	}
	return "", ierr.NewErrorf("unsupported file format %q", s).
		WithHint("Unsupported file format. Please use CSV or JSON.").
		Mark(ierr.ErrValidation)
}

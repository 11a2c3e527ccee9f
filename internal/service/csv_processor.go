package service

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/deespora/backoffice/internal/domain/record"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/deespora/backoffice/internal/types"
)

// userCSVHeaders are the columns of a users export, in order
var userCSVHeaders = []string{"Name", "Email", "Phone", "Status", "Onboarding Date"}

// CSVProcessor reads and writes the users CSV format
type CSVProcessor struct {
	Logger *logger.Logger
}

// NewCSVProcessor creates a new CSV processor
func NewCSVProcessor(logger *logger.Logger) *CSVProcessor {
	return &CSVProcessor{
		Logger: logger,
	}
}

// PrepareCSVReader creates a configured CSV reader from the file content
func (cp *CSVProcessor) PrepareCSVReader(fileContent []byte) *csv.Reader {
	// Check for and remove BOM if present
	if len(fileContent) >= 3 && fileContent[0] == 0xEF && fileContent[1] == 0xBB && fileContent[2] == 0xBF {
		fileContent = fileContent[3:]
		cp.Logger.Debug("BOM detected and removed from file content")
	}

	reader := csv.NewReader(bytes.NewReader(fileContent))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}

// WriteUsers writes one row per user under userCSVHeaders
func (cp *CSVProcessor) WriteUsers(w io.Writer, users []record.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(userCSVHeaders); err != nil {
		return ierr.WithError(err).WithHint("Failed to write export").Mark(ierr.ErrSystem)
	}
	for _, u := range users {
		if err := cw.Write(userRow(u)); err != nil {
			return ierr.WithError(err).WithHint("Failed to write export").Mark(ierr.ErrSystem)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return ierr.WithError(err).WithHint("Failed to write export").Mark(ierr.ErrSystem)
	}
	return nil
}

func userRow(u record.Record) []string {
	date := record.NotAvailable
	if u.CreatedAt != nil {
		date = u.CreatedAt.Format(record.DisplayDateLayout)
	}
	return []string{
		orNA(u.DisplayName),
		orNA(u.Email),
		orNA(u.Phone),
		u.Status.Label(),
		date,
	}
}

func orNA(s string) string {
	if s == "" {
		return record.NotAvailable
	}
	return s
}

// ReadUsers parses a users CSV into raw user objects keyed the way the
// backend names them. Unknown columns are ignored.
func (cp *CSVProcessor) ReadUsers(fileContent []byte) ([]map[string]any, error) {
	reader := cp.PrepareCSVReader(fileContent)

	headers, err := reader.Read()
	if err == io.EOF {
		return []map[string]any{}, nil
	}
	if err != nil {
		return nil, importError(err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	users := make([]map[string]any, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, importError(err)
		}
		if isBlankRow(row) {
			continue
		}
		users = append(users, userFromRow(headers, row))
	}

	cp.Logger.Debugw("parsed users csv", "rows", len(users))
	return users, nil
}

func userFromRow(headers, row []string) map[string]any {
	user := make(map[string]any)
	for i, header := range headers {
		if i >= len(row) {
			break
		}
		value := strings.TrimSpace(row[i])
		if value == record.NotAvailable {
			value = ""
		}
		switch header {
		case "Name":
			first, last, _ := strings.Cut(value, " ")
			user["firstName"] = first
			user["lastName"] = strings.TrimSpace(last)
		case "Email":
			user["email"] = value
		case "Phone":
			user["phoneNumber"] = value
		case "Status":
			user["status"] = value
		case "Onboarding Date":
			user["createdAt"] = value
		}
	}
	return user
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func importError(err error) error {
	return ierr.WithError(err).
		WithHintf("Error importing file: %v", err).
		WithReportableDetails(map[string]any{"format": types.FileFormatCSV}).
		Mark(ierr.ErrValidation)
}

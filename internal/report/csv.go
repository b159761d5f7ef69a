package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/lshigami/courseboard/internal/apperror"
)

// FileName is the name offered for the downloaded export.
const FileName = "quiz_results.csv"

var Header = []string{"Name", "Department", "Course", "Score", "Date"}

// ErrEmptyInput is returned when there are no rows to export. It is a
// validation error: callers show it as a notice and write nothing.
var ErrEmptyInput error = apperror.NewValidation("No data to export")

// WriteCSV streams rows as CSV, quoting fields per RFC 4180 where needed.
func WriteCSV(w io.Writer, rows []Row, format Format) error {
	if len(rows) == 0 {
		return ErrEmptyInput
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		department := r.Department
		if department == "" {
			department = UnknownDepartment
		}
		record := []string{
			r.Username,
			department,
			r.Course,
			fmt.Sprintf("%d / %d", r.Score, r.Total),
			format.DateTime(r.Date),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func ToCSV(rows []Row, format Format) (string, error) {
	var sb strings.Builder
	if err := WriteCSV(&sb, rows, format); err != nil {
		return "", err
	}
	return sb.String(), nil
}

package report

import (
	"strings"
	"testing"
	"time"

	"github.com/lshigami/courseboard/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCSV_EmptyInput(t *testing.T) {
	out, err := ToCSV(nil, DefaultFormat())

	require.ErrorIs(t, err, ErrEmptyInput)
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, out)
}

func TestToCSV_SingleRow(t *testing.T) {
	date := time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC)
	rows := []Row{{Username: "a", Department: "X", Course: "C", Score: 3, Total: 5, Date: date}}

	out, err := ToCSV(rows, DefaultFormat())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Name,Department,Course,Score,Date", lines[0])
	assert.Equal(t, "a,X,C,3 / 5,03/01/2024 14:05:09", lines[1])
}

func TestToCSV_MissingDepartmentIsUnknown(t *testing.T) {
	rows := []Row{{Username: "a", Course: "C", Score: 1, Total: 2, Date: time.Now()}}

	out, err := ToCSV(rows, DefaultFormat())
	require.NoError(t, err)

	assert.Contains(t, out, "a,Unknown,C,1 / 2,")
}

func TestToCSV_QuotesEmbeddedCommas(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := []Row{{Username: "a", Department: "R&D", Course: `Safety, "Advanced"`, Score: 1, Total: 1, Date: date}}

	out, err := ToCSV(rows, DefaultFormat())
	require.NoError(t, err)

	assert.Contains(t, out, `a,R&D,"Safety, ""Advanced""",1 / 1,03/01/2024 00:00:00`)
}

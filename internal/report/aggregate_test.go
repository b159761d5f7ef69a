package report

import (
	"testing"
	"time"

	"github.com/lshigami/courseboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleResults() []model.Result {
	return []model.Result{
		{ID: "r1", Username: "a", CourseTitle: "Go Basics", Score: 2, Total: 5, Date: day("2024-01-01")},
		{ID: "r2", Username: "b", CourseTitle: "Safety", Score: 4, Total: 5, Date: day("2024-03-01")},
	}
}

func sampleUsers() map[string]model.User {
	return map[string]model.User{
		"a": {Username: "a", Department: "Ops"},
		"b": {Username: "b", Department: "Sales"},
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	got := Aggregate(nil, nil, Filters{}, DefaultFormat())

	assert.Equal(t, Stats{}, got.Stats)
	require.NotNil(t, got.Rows)
	assert.Empty(t, got.Rows)
	assert.Empty(t, got.Options.Usernames)
}

func TestAggregate_NoFilters(t *testing.T) {
	got := Aggregate(sampleResults(), sampleUsers(), Filters{}, DefaultFormat())

	assert.Equal(t, Stats{TotalAttempts: 2, AvgScore: 3.00, MaxScore: 4, MinScore: 2}, got.Stats)
	require.Len(t, got.Rows, 2)
}

func TestAggregate_FilterByUsername(t *testing.T) {
	got := Aggregate(sampleResults(), sampleUsers(), Filters{Username: "a"}, DefaultFormat())

	require.Len(t, got.Rows, 1)
	assert.Equal(t, 2, got.Rows[0].Score)
	assert.Equal(t, Stats{TotalAttempts: 1, AvgScore: 2, MaxScore: 2, MinScore: 2}, got.Stats)
}

func TestAggregate_OptionsIgnoreFilters(t *testing.T) {
	got := Aggregate(sampleResults(), sampleUsers(), Filters{Username: "a"}, DefaultFormat())

	assert.ElementsMatch(t, []string{"Go Basics", "Safety"}, got.Options.Courses)
	assert.ElementsMatch(t, []string{"a", "b"}, got.Options.Usernames)
	assert.ElementsMatch(t, []string{"2", "4"}, got.Options.Scores)
	assert.ElementsMatch(t, []string{"Ops", "Sales"}, got.Options.Departments)
	assert.ElementsMatch(t, []string{"01/01/2024", "03/01/2024"}, got.Options.Dates)
}

func TestAggregate_OptionsAreDistinct(t *testing.T) {
	results := append(sampleResults(),
		model.Result{ID: "r3", Username: "a", CourseTitle: "Go Basics", Score: 2, Total: 5, Date: day("2024-01-01")},
	)

	got := Aggregate(results, sampleUsers(), Filters{}, DefaultFormat())

	assert.Len(t, got.Rows, 3)
	assert.Len(t, got.Options.Usernames, 2)
	assert.Len(t, got.Options.Courses, 2)
	assert.Len(t, got.Options.Scores, 2)
	assert.Len(t, got.Options.Dates, 2)
}

func TestJoin_SortsNewestFirst(t *testing.T) {
	rows := Join(sampleResults(), sampleUsers())

	require.Len(t, rows, 2)
	assert.Equal(t, day("2024-03-01"), rows[0].Date)
	assert.Equal(t, day("2024-01-01"), rows[1].Date)
}

func TestJoin_UnknownDepartment(t *testing.T) {
	rows := Join(sampleResults(), map[string]model.User{"b": {Username: "b", Department: "Sales"}})

	byUser := map[string]Row{}
	for _, r := range rows {
		byUser[r.Username] = r
	}
	assert.Equal(t, UnknownDepartment, byUser["a"].Department)
	assert.Equal(t, "Sales", byUser["b"].Department)
}

func TestAggregate_BlankDepartmentIsUnknown(t *testing.T) {
	users := sampleUsers()
	users["a"] = model.User{Username: "a", Department: ""}

	got := Aggregate(sampleResults(), users, Filters{Department: UnknownDepartment}, DefaultFormat())

	require.Len(t, got.Rows, 1)
	assert.Equal(t, "a", got.Rows[0].Username)
	assert.Equal(t, UnknownDepartment, got.Rows[0].Department)
	assert.Contains(t, got.Options.Departments, UnknownDepartment)

	out, err := ToCSV(got.Rows, DefaultFormat())
	require.NoError(t, err)
	assert.Contains(t, out, "a,Unknown,Go Basics,2 / 5,")
}

func TestAggregate_JoinSeesUserChanges(t *testing.T) {
	users := sampleUsers()
	first := Aggregate(sampleResults(), users, Filters{Department: "Ops"}, DefaultFormat())
	require.Len(t, first.Rows, 1)

	users["a"] = model.User{Username: "a", Department: "Finance"}
	second := Aggregate(sampleResults(), users, Filters{Department: "Ops"}, DefaultFormat())

	assert.Empty(t, second.Rows)
}

func TestFilters_Match(t *testing.T) {
	row := Row{Username: "a", Course: "Go Basics", Department: "Ops", Score: 3, Date: time.Date(2024, 5, 6, 22, 30, 0, 0, time.UTC)}
	format := DefaultFormat()

	cases := []struct {
		name    string
		filters Filters
		want    bool
	}{
		{"empty", Filters{}, true},
		{"any keyword", Filters{Username: "any", Course: "ANY", Score: "any"}, true},
		{"username hit", Filters{Username: "a"}, true},
		{"username miss", Filters{Username: "b"}, false},
		{"course miss", Filters{Course: "Safety"}, false},
		{"score hit", Filters{Score: "3"}, true},
		{"score miss", Filters{Score: "4"}, false},
		{"date hit", Filters{Date: "05/06/2024"}, true},
		{"date miss", Filters{Date: "05/07/2024"}, false},
		{"department hit", Filters{Department: "Ops"}, true},
		{"all anded", Filters{Username: "a", Department: "Sales"}, false},
		{"username padded", Filters{Username: " a "}, true},
		{"course padded", Filters{Course: "Go Basics "}, true},
		{"department padded", Filters{Department: "\tOps"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filters.Match(row, format))
		})
	}
}

func TestFilters_DateUsesConfiguredZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	format := Format{DateLayout: "2006-01-02", Location: tokyo}
	row := Row{Date: time.Date(2024, 5, 6, 22, 30, 0, 0, time.UTC)}

	assert.True(t, Filters{Date: "2024-05-07"}.Match(row, format))
	assert.False(t, Filters{Date: "2024-05-06"}.Match(row, format))
}

func TestSummarize_RoundsAverage(t *testing.T) {
	rows := []Row{{Score: 1}, {Score: 1}, {Score: 2}}

	got := Summarize(rows)

	assert.Equal(t, 1.33, got.AvgScore)
	assert.Equal(t, 2, got.MaxScore)
	assert.Equal(t, 1, got.MinScore)
}

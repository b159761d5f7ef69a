// Package report joins quiz results with user data, filters and summarizes
// them for the admin dashboard, and exports them as CSV.
package report

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lshigami/courseboard/internal/model"
	"github.com/shopspring/decimal"
)

const (
	UnknownDepartment = "Unknown"
	// AnyValue is accepted alongside the empty string as "no constraint".
	AnyValue = "any"
)

// Row is a Result joined with the submitting user's department at read time.
type Row struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	UserDisplayName string    `json:"user"`
	Department      string    `json:"department"`
	Course          string    `json:"course"`
	Score           int       `json:"score"`
	Total           int       `json:"total"`
	Date            time.Time `json:"date"`
}

type Filters struct {
	Username   string `form:"username" json:"username"`
	Course     string `form:"course" json:"course"`
	Score      string `form:"score" json:"score"`
	Date       string `form:"date" json:"date"`
	Department string `form:"department" json:"department"`
}

type Stats struct {
	TotalAttempts int     `json:"total_attempts"`
	AvgScore      float64 `json:"avg_score"`
	MaxScore      int     `json:"max_score"`
	MinScore      int     `json:"min_score"`
}

// Options are the distinct values offered by each dashboard filter.
type Options struct {
	Usernames   []string `json:"usernames"`
	Courses     []string `json:"courses"`
	Scores      []string `json:"scores"`
	Dates       []string `json:"dates"`
	Departments []string `json:"departments"`
}

type Aggregation struct {
	Rows    []Row   `json:"rows"`
	Stats   Stats   `json:"stats"`
	Options Options `json:"options"`
}

// Aggregate joins, orders, filters and summarizes results. Option lists come
// from the unfiltered set so one filter never narrows the others' choices.
func Aggregate(results []model.Result, users map[string]model.User, filters Filters, format Format) Aggregation {
	base := Join(results, users)

	rows := make([]Row, 0, len(base))
	for _, row := range base {
		if filters.Match(row, format) {
			rows = append(rows, row)
		}
	}

	return Aggregation{
		Rows:    rows,
		Stats:   Summarize(rows),
		Options: DistinctOptions(base, format),
	}
}

// Join attaches departments and sorts the rows newest first. It runs on every
// call because user records may change between calls.
func Join(results []model.Result, users map[string]model.User) []Row {
	rows := make([]Row, 0, len(results))
	for _, r := range results {
		department := UnknownDepartment
		if u, ok := users[r.Username]; ok && strings.TrimSpace(u.Department) != "" {
			department = u.Department
		}
		rows = append(rows, Row{
			ID:              r.ID,
			Username:        r.Username,
			UserDisplayName: r.UserDisplayName,
			Department:      department,
			Course:          r.CourseTitle,
			Score:           r.Score,
			Total:           r.Total,
			Date:            r.Date,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})
	return rows
}

func unconstrained(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, AnyValue)
}

// Match reports whether row satisfies every set filter. Filter values are
// compared with surrounding whitespace removed.
func (f Filters) Match(row Row, format Format) bool {
	return matches(f.Username, row.Username) &&
		matches(f.Course, row.Course) &&
		matches(f.Score, strconv.Itoa(row.Score)) &&
		matches(f.Date, format.Date(row.Date)) &&
		matches(f.Department, row.Department)
}

func matches(filter, value string) bool {
	return unconstrained(filter) || strings.TrimSpace(filter) == value
}

// Summarize computes the dashboard statistics. All values are zero for no rows.
func Summarize(rows []Row) Stats {
	if len(rows) == 0 {
		return Stats{}
	}
	stats := Stats{
		TotalAttempts: len(rows),
		MaxScore:      rows[0].Score,
		MinScore:      rows[0].Score,
	}
	var sum int64
	for _, r := range rows {
		sum += int64(r.Score)
		if r.Score > stats.MaxScore {
			stats.MaxScore = r.Score
		}
		if r.Score < stats.MinScore {
			stats.MinScore = r.Score
		}
	}
	stats.AvgScore = decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(len(rows)))).
		Round(2).
		InexactFloat64()
	return stats
}

func DistinctOptions(rows []Row, format Format) Options {
	opts := Options{
		Usernames:   []string{},
		Courses:     []string{},
		Scores:      []string{},
		Dates:       []string{},
		Departments: []string{},
	}
	seen := map[string]map[string]bool{}
	add := func(list *[]string, kind, v string) {
		if seen[kind] == nil {
			seen[kind] = map[string]bool{}
		}
		if seen[kind][v] {
			return
		}
		seen[kind][v] = true
		*list = append(*list, v)
	}
	for _, r := range rows {
		add(&opts.Usernames, "username", r.Username)
		add(&opts.Courses, "course", r.Course)
		add(&opts.Scores, "score", strconv.Itoa(r.Score))
		add(&opts.Dates, "date", format.Date(r.Date))
		if r.Department != "" {
			add(&opts.Departments, "department", r.Department)
		}
	}
	return opts
}

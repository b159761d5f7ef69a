package report

import (
	"strings"
	"time"

	"github.com/lshigami/courseboard/internal/grading"
	"github.com/lshigami/courseboard/internal/model"
)

// BuildResult assembles the record persisted for one quiz submission.
// An empty courseTitle falls back to courseID so a failed title lookup never
// blocks recording the score. The record ID is left for the repository.
func BuildResult(user model.User, courseID, courseTitle string, outcome grading.Outcome, now time.Time) model.Result {
	title := strings.TrimSpace(courseTitle)
	if title == "" {
		title = courseID
	}
	return model.Result{
		Username:        user.Username,
		UserDisplayName: user.Name,
		CourseTitle:     title,
		Score:           outcome.Score,
		Total:           outcome.Total,
		Date:            now.UTC(),
	}
}

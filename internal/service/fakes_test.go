package service

import (
	"context"
	"sort"
	"strings"

	"github.com/lshigami/courseboard/internal/apperror"
	"github.com/lshigami/courseboard/internal/model"
)

type fakeCourseRepo struct {
	courses map[string]model.Course
	err     error
	nextID  int
	finds   int
	// onWrite runs inside Replace, Delete and Upsert before the row changes.
	onWrite func(id string)
}

func newFakeCourseRepo(courses ...model.Course) *fakeCourseRepo {
	r := &fakeCourseRepo{courses: map[string]model.Course{}}
	for _, c := range courses {
		r.courses[c.ID] = c
	}
	return r
}

func (r *fakeCourseRepo) List(context.Context) ([]model.Course, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]model.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *fakeCourseRepo) FindByID(_ context.Context, id string) (*model.Course, error) {
	r.finds++
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.courses[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return &c, nil
}

func (r *fakeCourseRepo) Create(_ context.Context, c *model.Course) error {
	if r.err != nil {
		return r.err
	}
	if c.ID == "" {
		r.nextID++
		c.ID = "course-" + strings.Repeat("x", r.nextID)
	}
	r.courses[c.ID] = *c
	return nil
}

func (r *fakeCourseRepo) Replace(_ context.Context, c *model.Course) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.courses[c.ID]; !ok {
		return apperror.ErrNotFound
	}
	r.wrote(c.ID)
	r.courses[c.ID] = *c
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.courses[id]; !ok {
		return apperror.ErrNotFound
	}
	r.wrote(id)
	delete(r.courses, id)
	return nil
}

func (r *fakeCourseRepo) Upsert(_ context.Context, c *model.Course) error {
	if r.err != nil {
		return r.err
	}
	r.wrote(c.ID)
	r.courses[c.ID] = *c
	return nil
}

func (r *fakeCourseRepo) wrote(id string) {
	if r.onWrite != nil {
		r.onWrite(id)
	}
}

type fakeUserRepo struct {
	users map[string]model.User
	err   error
}

func newFakeUserRepo(users ...model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]model.User{}}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) List(context.Context) ([]model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[username]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[u.Username]; ok {
		return apperror.ErrDuplicate
	}
	r.users[u.Username] = *u
	return nil
}

func (r *fakeUserRepo) Replace(_ context.Context, u *model.User) error {
	if _, ok := r.users[u.Username]; !ok {
		return apperror.ErrNotFound
	}
	r.users[u.Username] = *u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, username string) error {
	if _, ok := r.users[username]; !ok {
		return apperror.ErrNotFound
	}
	delete(r.users, username)
	return nil
}

func (r *fakeUserRepo) Upsert(_ context.Context, u *model.User) error {
	r.users[u.Username] = *u
	return nil
}

type fakeResultRepo struct {
	results []model.Result
	err     error
}

func (r *fakeResultRepo) List(context.Context) ([]model.Result, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]model.Result(nil), r.results...), nil
}

func (r *fakeResultRepo) Append(_ context.Context, res *model.Result) error {
	if r.err != nil {
		return r.err
	}
	if res.ID == "" {
		res.ID = "result-" + strings.Repeat("x", len(r.results)+1)
	}
	r.results = append(r.results, *res)
	return nil
}

func (r *fakeResultRepo) ListRecentByUsername(_ context.Context, username string, limit int) ([]model.Result, error) {
	if r.err != nil {
		return nil, r.err
	}
	var mine []model.Result
	for _, res := range r.results {
		if res.Username == username {
			mine = append(mine, res)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool { return mine[i].Date.After(mine[j].Date) })
	if len(mine) > limit {
		mine = mine[:limit]
	}
	return mine, nil
}

type fakeCache struct {
	courses     map[string]model.Course
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{courses: map[string]model.Course{}}
}

func (c *fakeCache) Get(_ context.Context, id string) (*model.Course, bool) {
	course, ok := c.courses[id]
	if !ok {
		return nil, false
	}
	return &course, true
}

func (c *fakeCache) Set(_ context.Context, course *model.Course) {
	c.courses[course.ID] = *course
}

func (c *fakeCache) Invalidate(_ context.Context, id string) {
	delete(c.courses, id)
	c.invalidated = append(c.invalidated, id)
}

func (c *fakeCache) Close() error { return nil }

type fakeLLM struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func (f *fakeLLM) Close() error { return nil }

func intPtr(v int) *int { return &v }

func fourOptions() []string { return []string{"a", "b", "c", "d"} }

func twoQuestionCourse(id, title string) model.Course {
	return model.Course{
		ID:      id,
		Title:   title,
		Content: "Body",
		Quiz: []model.Question{
			{Text: "Q1", Options: fourOptions(), AnswerIndex: 1},
			{Text: "Q2", Options: fourOptions(), AnswerIndex: 2},
		},
	}
}

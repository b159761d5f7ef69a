package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/courseboard/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseRepository interface {
	List(ctx context.Context) ([]model.Course, error)
	FindByID(ctx context.Context, id string) (*model.Course, error)
	Create(ctx context.Context, course *model.Course) error
	Replace(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id string) error
	// Upsert stores course under its own ID, replacing any existing quiz.
	Upsert(ctx context.Context, course *model.Course) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func orderedQuiz(db *gorm.DB) *gorm.DB {
	return db.Order("questions.order_in_quiz ASC")
}

func numberQuiz(course *model.Course) {
	for i := range course.Quiz {
		course.Quiz[i].ID = 0
		course.Quiz[i].CourseID = course.ID
		course.Quiz[i].OrderInQuiz = i
	}
}

func (r *courseRepository) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Preload("Quiz", orderedQuiz).
		Order("courses.title ASC").
		Find(&courses).Error
	if err != nil {
		return nil, wrap("list courses", err)
	}
	return courses, nil
}

func (r *courseRepository) FindByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Preload("Quiz", orderedQuiz).
		First(&course, "id = ?", id).Error
	if err != nil {
		return nil, wrap("find course", err)
	}
	return &course, nil
}

func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	numberQuiz(course)
	return wrap("create course", r.db.WithContext(ctx).Create(course).Error)
}

func (r *courseRepository) Replace(ctx context.Context, course *model.Course) error {
	numberQuiz(course)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Course{}).Where("id = ?", course.ID).Updates(map[string]interface{}{
			"title":   course.Title,
			"content": course.Content,
			"video":   course.Video,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return replaceQuiz(tx, course)
	})
	return wrap("replace course", err)
}

func (r *courseRepository) Upsert(ctx context.Context, course *model.Course) error {
	numberQuiz(course)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "content", "video", "updated_at"}),
		}).Omit("Quiz").Create(course).Error
		if err != nil {
			return err
		}
		return replaceQuiz(tx, course)
	})
	return wrap("upsert course", err)
}

func replaceQuiz(tx *gorm.DB, course *model.Course) error {
	if err := tx.Where("course_id = ?", course.ID).Delete(&model.Question{}).Error; err != nil {
		return err
	}
	if len(course.Quiz) == 0 {
		return nil
	}
	return tx.Create(&course.Quiz).Error
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Course{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return wrap("delete course", err)
}

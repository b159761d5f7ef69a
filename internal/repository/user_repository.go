package repository

import (
	"context"

	"github.com/lshigami/courseboard/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Replace(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, username string) error
	Upsert(ctx context.Context, user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("username ASC").Find(&users).Error; err != nil {
		return nil, wrap("list users", err)
	}
	return users, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, wrap("find user", err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return wrap("create user", r.db.WithContext(ctx).Create(user).Error)
}

// Replace overwrites every editable field of the user keyed by user.Username.
func (r *userRepository) Replace(ctx context.Context, user *model.User) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", user.Username).Updates(map[string]interface{}{
		"name":       user.Name,
		"password":   user.Password,
		"department": user.Department,
		"role":       user.Role,
	})
	if res.Error != nil {
		return wrap("replace user", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("replace user", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, username string) error {
	res := r.db.WithContext(ctx).Where("username = ?", username).Delete(&model.User{})
	if res.Error != nil {
		return wrap("delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("delete user", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *userRepository) Upsert(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "password", "department", "role", "updated_at"}),
	}).Create(user).Error
	return wrap("upsert user", err)
}

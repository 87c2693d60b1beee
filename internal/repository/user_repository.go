package repository

import (
	"context"

	"gorm.io/gorm"

	"ecohub/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Search(ctx context.Context, search string) ([]model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	UpdateRole(ctx context.Context, id uint, role model.Role) (int64, error)
	UpdateRoleFrom(ctx context.Context, id uint, from, to model.Role) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
	SumCarbonSaved(ctx context.Context) (float64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Search lists users, optionally filtered by a case-insensitive username
// substring. MySQL LIKE is case-insensitive under the default collation.
func (r *userRepository) Search(ctx context.Context, search string) ([]model.User, error) {
	var users []model.User
	q := r.db.WithContext(ctx)
	if search != "" {
		q = q.Where("username LIKE ?", "%"+search+"%")
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Where("role = ?", role).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRole sets the role unconditionally and returns affected rows.
func (r *userRepository) UpdateRole(ctx context.Context, id uint, role model.Role) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("role", role)
	return res.RowsAffected, res.Error
}

// UpdateRoleFrom performs a one-way role transition in a single statement.
// Zero affected rows means the user is absent or not in the expected role.
func (r *userRepository) UpdateRoleFrom(ctx context.Context, id uint, from, to model.Role) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND role = ?", id, from).
		Update("role", to)
	return res.RowsAffected, res.Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	return res.RowsAffected, res.Error
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}

// SumCarbonSaved totals carbon_saved_kg across all users, coalescing an
// empty table to zero.
func (r *userRepository) SumCarbonSaved(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("COALESCE(SUM(carbon_saved_kg), 0)").
		Scan(&total).Error
	return total, err
}

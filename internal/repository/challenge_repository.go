package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ecohub/internal/model"
)

// ChallengeRepository defines challenge persistence operations.
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *model.Challenge) error
	FindByID(ctx context.Context, id uint) (*model.Challenge, error)
	List(ctx context.Context) ([]model.Challenge, error)
	Update(ctx context.Context, challenge *model.Challenge) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type challengeRepository struct {
	db *gorm.DB
}

// NewChallengeRepository builds a GORM-backed repository.
func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) Create(ctx context.Context, challenge *model.Challenge) error {
	return r.db.WithContext(ctx).Create(challenge).Error
}

func (r *challengeRepository) FindByID(ctx context.Context, id uint) (*model.Challenge, error) {
	var challenge model.Challenge
	if err := r.db.WithContext(ctx).First(&challenge, id).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *challengeRepository) List(ctx context.Context) ([]model.Challenge, error) {
	var challenges []model.Challenge
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

func (r *challengeRepository) Update(ctx context.Context, challenge *model.Challenge) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Challenge{}).
		Where("id = ?", challenge.ID).
		Updates(map[string]interface{}{
			"title":         challenge.Title,
			"description":   challenge.Description,
			"points_reward": challenge.PointsReward,
			"co2_saving_kg": challenge.CO2SavingKg,
			"duration_days": challenge.DurationDays,
			"image_url":     challenge.ImageURL,
			"category":      challenge.Category,
		})
	return res.RowsAffected, res.Error
}

func (r *challengeRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Challenge{}, id)
	return res.RowsAffected, res.Error
}

// EnrollmentRepository defines persistence for user challenge enrollments.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.UserChallenge) error
	FindByID(ctx context.Context, id uint) (*model.UserChallenge, error)
	ListByUser(ctx context.Context, userID uint) ([]model.EnrollmentDetail, error)
	UpdateProgress(ctx context.Context, id uint, progress int) (int64, error)
	Complete(ctx context.Context, id uint, at time.Time) (int64, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository builds a GORM-backed repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *model.UserChallenge) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepository) FindByID(ctx context.Context, id uint) (*model.UserChallenge, error) {
	var enrollment model.UserChallenge
	if err := r.db.WithContext(ctx).First(&enrollment, id).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// ListByUser joins enrollments with their challenges, newest join first.
func (r *enrollmentRepository) ListByUser(ctx context.Context, userID uint) ([]model.EnrollmentDetail, error) {
	var details []model.EnrollmentDetail
	err := r.db.WithContext(ctx).
		Table("user_challenges uc").
		Select("uc.*, c.title, c.description, c.points_reward, c.co2_saving_kg, c.duration_days, c.category").
		Joins("JOIN challenges c ON uc.challenge_id = c.id").
		Where("uc.user_id = ?", userID).
		Order("uc.joined_at DESC").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *enrollmentRepository) UpdateProgress(ctx context.Context, id uint, progress int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.UserChallenge{}).
		Where("id = ?", id).
		Update("progress", progress)
	return res.RowsAffected, res.Error
}

// Complete flips the enrollment to completed in a single conditional
// statement, so two concurrent completions cannot both succeed.
func (r *enrollmentRepository) Complete(ctx context.Context, id uint, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.UserChallenge{}).
		Where("id = ? AND status = ?", id, model.EnrollmentStatusInProgress).
		Updates(map[string]interface{}{
			"status":       model.EnrollmentStatusCompleted,
			"completed_at": at,
		})
	return res.RowsAffected, res.Error
}

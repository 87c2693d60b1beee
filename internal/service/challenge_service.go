package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ecohub/internal/db"
	apperrors "ecohub/internal/errors"
	"ecohub/internal/model"
	"ecohub/internal/repository"
)

// ChallengeInput carries the writable challenge fields.
type ChallengeInput struct {
	Title        string
	Description  string
	PointsReward int
	CO2SavingKg  float64
	DurationDays int
	ImageURL     string
	Category     string
}

// ChallengeService handles the challenge catalog and user enrollments.
// Admin gating for the write operations is checked inside each operation
// rather than by route middleware; every mutating catalog call takes the
// caller's role.
type ChallengeService interface {
	List(ctx context.Context) ([]model.Challenge, error)
	Get(ctx context.Context, id uint) (*model.Challenge, error)
	Create(ctx context.Context, callerRole model.Role, input ChallengeInput) (*model.Challenge, error)
	Update(ctx context.Context, callerRole model.Role, id uint, input ChallengeInput) error
	Delete(ctx context.Context, callerRole model.Role, id uint) error
	MyEnrollments(ctx context.Context, userID uint) ([]model.EnrollmentDetail, error)
	Join(ctx context.Context, userID, challengeID uint) (*model.UserChallenge, error)
	UpdateProgress(ctx context.Context, callerID uint, callerRole model.Role, enrollmentID uint, progress int) error
	Complete(ctx context.Context, callerID uint, callerRole model.Role, enrollmentID uint) error
}

type challengeService struct {
	challengeRepo  repository.ChallengeRepository
	enrollmentRepo repository.EnrollmentRepository
}

// NewChallengeService creates a new challenge service.
func NewChallengeService(challengeRepo repository.ChallengeRepository, enrollmentRepo repository.EnrollmentRepository) ChallengeService {
	return &challengeService{
		challengeRepo:  challengeRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// List returns all challenges, newest first.
func (s *challengeService) List(ctx context.Context) ([]model.Challenge, error) {
	challenges, err := s.challengeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}
	return challenges, nil
}

// Get returns a single challenge.
func (s *challengeService) Get(ctx context.Context, id uint) (*model.Challenge, error) {
	challenge, err := s.challengeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("find challenge: %w", err)
	}
	return challenge, nil
}

// Create stores a new challenge. Admin only.
func (s *challengeService) Create(ctx context.Context, callerRole model.Role, input ChallengeInput) (*model.Challenge, error) {
	if callerRole != model.RoleAdmin {
		return nil, apperrors.ErrAdminRequired
	}

	challenge := &model.Challenge{
		Title:        input.Title,
		Description:  input.Description,
		PointsReward: input.PointsReward,
		CO2SavingKg:  input.CO2SavingKg,
		DurationDays: input.DurationDays,
		ImageURL:     input.ImageURL,
		Category:     input.Category,
	}
	if challenge.Category == "" {
		challenge.Category = "Week"
	}

	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, fmt.Errorf("create challenge: %w", err)
	}
	return challenge, nil
}

// Update overwrites a challenge's fields. Admin only.
func (s *challengeService) Update(ctx context.Context, callerRole model.Role, id uint, input ChallengeInput) error {
	if callerRole != model.RoleAdmin {
		return apperrors.ErrAdminRequired
	}

	challenge := &model.Challenge{
		ID:           id,
		Title:        input.Title,
		Description:  input.Description,
		PointsReward: input.PointsReward,
		CO2SavingKg:  input.CO2SavingKg,
		DurationDays: input.DurationDays,
		ImageURL:     input.ImageURL,
		Category:     input.Category,
	}
	if challenge.DurationDays == 0 {
		challenge.DurationDays = 7
	}
	if challenge.Category == "" {
		challenge.Category = "Week"
	}

	affected, err := s.challengeRepo.Update(ctx, challenge)
	if err != nil {
		return fmt.Errorf("update challenge: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrChallengeNotFound
	}
	return nil
}

// Delete removes a challenge. Admin only.
func (s *challengeService) Delete(ctx context.Context, callerRole model.Role, id uint) error {
	if callerRole != model.RoleAdmin {
		return apperrors.ErrAdminRequired
	}

	affected, err := s.challengeRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete challenge: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrChallengeNotFound
	}
	return nil
}

// MyEnrollments returns the caller's enrollments with challenge details,
// newest join first.
func (s *challengeService) MyEnrollments(ctx context.Context, userID uint) ([]model.EnrollmentDetail, error) {
	details, err := s.enrollmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return details, nil
}

// Join enrolls the caller in a challenge. The composite unique index on
// (user_id, challenge_id) rejects a second join atomically.
func (s *challengeService) Join(ctx context.Context, userID, challengeID uint) (*model.UserChallenge, error) {
	enrollment := &model.UserChallenge{
		UserID:      userID,
		ChallengeID: challengeID,
		Progress:    0,
		Status:      model.EnrollmentStatusInProgress,
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		if db.IsDuplicateEntry(err) {
			return nil, apperrors.ErrAlreadyJoined
		}
		return nil, fmt.Errorf("join challenge: %w", err)
	}
	return enrollment, nil
}

// UpdateProgress sets an enrollment's progress. The caller must own the
// enrollment or be an admin.
func (s *challengeService) UpdateProgress(ctx context.Context, callerID uint, callerRole model.Role, enrollmentID uint, progress int) error {
	if progress < 0 || progress > 100 {
		return apperrors.ErrInvalidProgress
	}

	enrollment, err := s.findOwned(ctx, callerID, callerRole, enrollmentID)
	if err != nil {
		return err
	}

	if _, err := s.enrollmentRepo.UpdateProgress(ctx, enrollment.ID, progress); err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

// Complete flips an enrollment to completed once. Progress is deliberately
// not required to have reached 100.
func (s *challengeService) Complete(ctx context.Context, callerID uint, callerRole model.Role, enrollmentID uint) error {
	enrollment, err := s.findOwned(ctx, callerID, callerRole, enrollmentID)
	if err != nil {
		return err
	}

	if enrollment.Status == model.EnrollmentStatusCompleted {
		return apperrors.ErrAlreadyCompleted
	}

	affected, err := s.enrollmentRepo.Complete(ctx, enrollment.ID, time.Now())
	if err != nil {
		return fmt.Errorf("complete challenge: %w", err)
	}
	if affected == 0 {
		// Lost a race with another completion of the same enrollment.
		return apperrors.ErrAlreadyCompleted
	}
	return nil
}

func (s *challengeService) findOwned(ctx context.Context, callerID uint, callerRole model.Role, enrollmentID uint) (*model.UserChallenge, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}

	if enrollment.UserID != callerID && callerRole != model.RoleAdmin {
		return nil, apperrors.ErrAccessDenied
	}
	return enrollment, nil
}

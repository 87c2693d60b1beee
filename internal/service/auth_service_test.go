package service

import (
	"context"
	"testing"

	gosqlmysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ecohub/internal/auth"
	apperrors "ecohub/internal/errors"
	"ecohub/internal/model"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Username:   "greta",
		Email:      "greta@example.com",
		Password:   "password123",
		FirstName:  "Greta",
		LastName:   "Larsson",
		BirthMonth: 3,
		BirthDay:   7,
		BirthYear:  1999,
		Gender:     "female",
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		input         RegisterInput
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful registration",
			input: validRegisterInput(),
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "duplicate email",
			input: validRegisterInput(),
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Return(&gosqlmysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			expectedError: apperrors.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			mockTokenStore := new(MockTokenStore)

			svc := NewAuthService(mockRepo, jwtService, mockTokenStore)
			user, err := svc.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.input.Email, user.Email)
				assert.Equal(t, model.RoleUser, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.input.Password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_BirthDateComposition(t *testing.T) {
	mockRepo := new(MockUserRepository)
	var captured *model.User
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*model.User)
		}).
		Return(nil)

	svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))

	input := validRegisterInput()
	input.BirthMonth = 3
	input.BirthDay = 7
	input.BirthYear = 1999

	_, err := svc.Register(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, "1999-03-07", captured.BirthDate)
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "greta@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "greta@example.com").Return(&model.User{
					ID:           42,
					Username:     "greta",
					Email:        "greta@example.com",
					PasswordHash: string(hashedPassword),
					Role:         model.RoleUser,
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(42), "greta@example.com", model.RoleUser, mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "greta@example.com",
			password: "hunter2",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "greta@example.com").Return(&model.User{
					ID:           42,
					Email:        "greta@example.com",
					PasswordHash: string(hashedPassword),
					Role:         model.RoleUser,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService, mockTokenStore)

			accessToken, refreshToken, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)

				claims, err := jwtService.ValidateToken(accessToken)
				assert.NoError(t, err)
				assert.Equal(t, uint(42), claims.UserID)
				assert.Equal(t, model.RoleUser, claims.Role)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_NonEnumerable(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct"), 10)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByEmail", mock.Anything, "known@example.com").Return(&model.User{
		ID:           1,
		Email:        "known@example.com",
		PasswordHash: string(hashedPassword),
		Role:         model.RoleUser,
	}, nil)

	svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))

	_, _, _, errUnknown := svc.Login(context.Background(), "nobody@example.com", "whatever")
	_, _, _, errWrongPass := svc.Login(context.Background(), "known@example.com", "wrong")

	assert.Equal(t, errUnknown, errWrongPass)
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(7, "greta@example.com", model.RoleSeller)
	assert.NoError(t, err)

	mockTokenStore := new(MockTokenStore)
	mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).
		Return(uint(7), "greta@example.com", model.RoleSeller, nil)

	svc := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)

	accessToken, err := svc.RefreshToken(context.Background(), refreshToken)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, model.RoleSeller, claims.Role)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), auth.NewJWTService("test-secret"), new(MockTokenStore))

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.Equal(t, apperrors.ErrInvalidRefreshToken, err)
}

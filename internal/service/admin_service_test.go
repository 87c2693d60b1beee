package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "ecohub/internal/errors"
	"ecohub/internal/model"
)

func TestAdminService_ApproveSeller(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "pending user approved",
			setupMock: func(m *MockUserRepository) {
				m.On("UpdateRoleFrom", mock.Anything, uint(5), model.RoleUser, model.RoleSeller).
					Return(int64(1), nil)
			},
			expectedError: nil,
		},
		{
			name: "second approval fails",
			setupMock: func(m *MockUserRepository) {
				m.On("UpdateRoleFrom", mock.Anything, uint(5), model.RoleUser, model.RoleSeller).
					Return(int64(0), nil)
			},
			expectedError: apperrors.ErrSellerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockUsers)

			svc := NewAdminService(mockUsers, new(MockProductRepository), nil)
			err := svc.ApproveSeller(context.Background(), 5)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAdminService_ProductModeration(t *testing.T) {
	t.Run("approve pending product", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockProducts.On("UpdateStatusFrom", mock.Anything, uint(9), model.ProductStatusPending, model.ProductStatusApproved).
			Return(int64(1), nil)

		svc := NewAdminService(new(MockUserRepository), mockProducts, nil)
		assert.NoError(t, svc.ApproveProduct(context.Background(), 9))
		mockProducts.AssertExpectations(t)
	})

	t.Run("reject after approve fails", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		// Product already left the pending state, so the conditional update
		// matches no rows.
		mockProducts.On("UpdateStatusFrom", mock.Anything, uint(9), model.ProductStatusPending, model.ProductStatusRejected).
			Return(int64(0), nil)

		svc := NewAdminService(new(MockUserRepository), mockProducts, nil)
		err := svc.RejectProduct(context.Background(), 9)
		assert.Equal(t, apperrors.ErrProductProcessed, err)
		mockProducts.AssertExpectations(t)
	})
}

func TestAdminService_UpdateUserRole(t *testing.T) {
	tests := []struct {
		name          string
		role          model.Role
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "valid role",
			role: model.RoleSeller,
			setupMock: func(m *MockUserRepository) {
				m.On("UpdateRole", mock.Anything, uint(3), model.RoleSeller).Return(int64(1), nil)
			},
			expectedError: nil,
		},
		{
			name:          "invalid role rejected before any write",
			role:          model.Role("superuser"),
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidRole,
		},
		{
			name: "user absent",
			role: model.RoleAdmin,
			setupMock: func(m *MockUserRepository) {
				m.On("UpdateRole", mock.Anything, uint(3), model.RoleAdmin).Return(int64(0), nil)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockUsers)

			svc := NewAdminService(mockUsers, new(MockProductRepository), nil)
			err := svc.UpdateUserRole(context.Background(), 3, tt.role)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAdminService_DeleteUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("Delete", mock.Anything, uint(8)).Return(int64(0), nil)

	svc := NewAdminService(mockUsers, new(MockProductRepository), nil)
	err := svc.DeleteUser(context.Background(), 8)
	assert.Equal(t, apperrors.ErrUserNotFound, err)
}

func TestAdminService_ListPendingSellers(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("ListByRole", mock.Anything, model.RoleUser).Return([]model.User{
		{ID: 1, Username: "ana", Email: "ana@example.com", Role: model.RoleUser, PasswordHash: "secret"},
	}, nil)

	svc := NewAdminService(mockUsers, new(MockProductRepository), nil)
	sellers, err := svc.ListPendingSellers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, sellers, 1)
	assert.Equal(t, "ana", sellers[0].Username)
}

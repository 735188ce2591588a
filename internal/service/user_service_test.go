package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"alumnihub/internal/errors"
	"alumnihub/internal/model"
)

func TestUserService_ToggleActive(t *testing.T) {
	admin := &model.User{ID: 1, Role: model.RoleAdmin, IsActive: true}

	t.Run("self toggle is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		service := NewUserService(mockRepo)
		_, err := service.ToggleActive(context.Background(), admin, admin.ID)

		assert.Equal(t, errors.ErrSelfToggle, err)
		mockRepo.AssertNotCalled(t, "FindByID")
	})

	t.Run("self toggle is rejected even when caller is inactive", func(t *testing.T) {
		inactiveAdmin := &model.User{ID: 4, Role: model.RoleAdmin, IsActive: false}
		mockRepo := new(MockUserRepository)

		service := NewUserService(mockRepo)
		_, err := service.ToggleActive(context.Background(), inactiveAdmin, inactiveAdmin.ID)

		assert.Equal(t, errors.ErrSelfToggle, err)
	})

	t.Run("flips active to inactive", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		target := &model.User{ID: 2, Role: model.RoleAlumni, IsActive: true}
		mockRepo.On("FindByID", mock.Anything, uint(2)).Return(target, nil)
		mockRepo.On("Save", mock.Anything, target).Return(nil)

		service := NewUserService(mockRepo)
		updated, err := service.ToggleActive(context.Background(), admin, 2)

		assert.NoError(t, err)
		assert.False(t, updated.IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("flips inactive back to active", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		target := &model.User{ID: 2, Role: model.RoleAlumni, IsActive: false}
		mockRepo.On("FindByID", mock.Anything, uint(2)).Return(target, nil)
		mockRepo.On("Save", mock.Anything, target).Return(nil)

		service := NewUserService(mockRepo)
		updated, err := service.ToggleActive(context.Background(), admin, 2)

		assert.NoError(t, err)
		assert.True(t, updated.IsActive)
	})

	t.Run("missing target", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo)
		_, err := service.ToggleActive(context.Background(), admin, 99)

		assert.Equal(t, errors.ErrUserNotFound, err)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("List", mock.Anything, 0, 100).Return([]model.User{
		{ID: 1, Role: model.RoleAdmin},
		{ID: 2, Role: model.RoleAlumni},
	}, nil)

	service := NewUserService(mockRepo)
	users, err := service.ListUsers(context.Background(), 0, 100)

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	mockRepo.AssertExpectations(t)
}

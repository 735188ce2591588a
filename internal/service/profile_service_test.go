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

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.AlumniProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *model.AlumniProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uint) (*model.AlumniProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AlumniProfile), args.Error(1)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uint) (*model.AlumniProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AlumniProfile), args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context, offset, limit int) ([]model.AlumniProfile, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AlumniProfile), args.Error(1)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestProfileService_Create(t *testing.T) {
	owner := &model.User{ID: 2, Email: "john@example.com", Role: model.RoleAlumni, IsActive: true}

	t.Run("creates with submitted fields only", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.AlumniProfile")).Return(nil)

		service := NewProfileService(mockRepo, nil)
		profile, err := service.Create(context.Background(), owner, ProfileInput{
			GraduationYear: intPtr(2019),
			Major:          strPtr("Physics"),
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(2), profile.UserID)
		assert.Equal(t, 2019, *profile.GraduationYear)
		assert.Equal(t, "Physics", *profile.Major)
		assert.Nil(t, profile.Company)
		assert.Nil(t, profile.Bio)
		mockRepo.AssertExpectations(t)
	})

	t.Run("conflict when profile exists", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, uint(2)).Return(&model.AlumniProfile{ID: 1, UserID: 2}, nil)

		service := NewProfileService(mockRepo, nil)
		_, err := service.Create(context.Background(), owner, ProfileInput{})

		assert.Equal(t, errors.ErrProfileExists, err)
	})

	t.Run("double-create race maps to conflict", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.AlumniProfile")).Return(gorm.ErrDuplicatedKey)

		service := NewProfileService(mockRepo, nil)
		_, err := service.Create(context.Background(), owner, ProfileInput{})

		assert.Equal(t, errors.ErrProfileExists, err)
	})
}

func TestProfileService_UpdateMine_PatchSemantics(t *testing.T) {
	owner := &model.User{ID: 2, Email: "john@example.com", Role: model.RoleAlumni, IsActive: true}

	t.Run("changes only submitted fields", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		existing := &model.AlumniProfile{
			ID:             1,
			UserID:         2,
			GraduationYear: intPtr(2019),
			Major:          strPtr("Physics"),
			Company:        strPtr("Acme"),
		}
		mockRepo.On("FindByUserID", mock.Anything, uint(2)).Return(existing, nil)
		mockRepo.On("Save", mock.Anything, existing).Return(nil)

		service := NewProfileService(mockRepo, nil)
		updated, err := service.UpdateMine(context.Background(), owner, ProfileInput{
			Company: strPtr("Globex"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Globex", *updated.Company)
		// Omitted fields keep their prior values.
		assert.Equal(t, 2019, *updated.GraduationYear)
		assert.Equal(t, "Physics", *updated.Major)
		mockRepo.AssertExpectations(t)
	})

	t.Run("explicit empty string is applied, not dropped", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		existing := &model.AlumniProfile{ID: 1, UserID: 2, Bio: strPtr("old bio")}
		mockRepo.On("FindByUserID", mock.Anything, uint(2)).Return(existing, nil)
		mockRepo.On("Save", mock.Anything, existing).Return(nil)

		service := NewProfileService(mockRepo, nil)
		updated, err := service.UpdateMine(context.Background(), owner, ProfileInput{
			Bio: strPtr(""),
		})

		assert.NoError(t, err)
		assert.Equal(t, "", *updated.Bio)
	})

	t.Run("not found without profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)

		service := NewProfileService(mockRepo, nil)
		_, err := service.UpdateMine(context.Background(), owner, ProfileInput{Bio: strPtr("hi")})

		assert.Equal(t, errors.ErrProfileNotFound, err)
	})
}

func TestProfileService_GetByID(t *testing.T) {
	t.Run("missing profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		service := NewProfileService(mockRepo, nil)
		_, err := service.GetByID(context.Background(), 42)

		assert.Equal(t, errors.ErrProfileNotFound, err)
	})

	t.Run("joined with owner", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.AlumniProfile{
			ID:     1,
			UserID: 2,
			User:   &model.User{ID: 2, FullName: "John"},
		}, nil)

		service := NewProfileService(mockRepo, nil)
		profile, err := service.GetByID(context.Background(), 1)

		assert.NoError(t, err)
		assert.NotNil(t, profile.User)
		assert.Equal(t, "John", profile.User.FullName)
	})
}

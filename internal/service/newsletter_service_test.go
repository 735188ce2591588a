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

// MockSubscriberRepository is a mock implementation of SubscriberRepository.
type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) Create(ctx context.Context, subscriber *model.NewsletterSubscriber) error {
	args := m.Called(ctx, subscriber)
	return args.Error(0)
}

func (m *MockSubscriberRepository) Save(ctx context.Context, subscriber *model.NewsletterSubscriber) error {
	args := m.Called(ctx, subscriber)
	return args.Error(0)
}

func (m *MockSubscriberRepository) FindByEmail(ctx context.Context, email string) (*model.NewsletterSubscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsletterSubscriber), args.Error(1)
}

func (m *MockSubscriberRepository) ListActive(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NewsletterSubscriber), args.Error(1)
}

func TestNewsletterService_Subscribe(t *testing.T) {
	t.Run("new email creates an active row", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		mockRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.NewsletterSubscriber")).Return(nil)

		service := NewNewsletterService(mockRepo)
		result, err := service.Subscribe(context.Background(), "new@example.com")

		assert.NoError(t, err)
		assert.True(t, result.Subscribed)
		assert.False(t, result.Reactivated)
		mockRepo.AssertExpectations(t)
	})

	t.Run("active subscription is a no-op success", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		mockRepo.On("FindByEmail", mock.Anything, "active@example.com").Return(&model.NewsletterSubscriber{
			ID: 3, Email: "active@example.com", IsActive: true,
		}, nil)

		service := NewNewsletterService(mockRepo)
		result, err := service.Subscribe(context.Background(), "active@example.com")

		assert.NoError(t, err)
		assert.True(t, result.Subscribed)
		assert.False(t, result.Reactivated)
		// No Create or Save expected: the row is untouched.
		mockRepo.AssertExpectations(t)
	})

	t.Run("inactive subscription is reactivated in place", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		existing := &model.NewsletterSubscriber{ID: 3, Email: "lapsed@example.com", IsActive: false}
		mockRepo.On("FindByEmail", mock.Anything, "lapsed@example.com").Return(existing, nil)
		mockRepo.On("Save", mock.Anything, existing).Return(nil)

		service := NewNewsletterService(mockRepo)
		result, err := service.Subscribe(context.Background(), "lapsed@example.com")

		assert.NoError(t, err)
		assert.True(t, result.Subscribed)
		assert.True(t, result.Reactivated)
		assert.True(t, existing.IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("create race still reports subscribed", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		mockRepo.On("FindByEmail", mock.Anything, "race@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.NewsletterSubscriber")).Return(gorm.ErrDuplicatedKey)

		service := NewNewsletterService(mockRepo)
		result, err := service.Subscribe(context.Background(), "race@example.com")

		assert.NoError(t, err)
		assert.True(t, result.Subscribed)
	})
}

func TestNewsletterService_Unsubscribe(t *testing.T) {
	t.Run("unknown email is not found", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		mockRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		service := NewNewsletterService(mockRepo)
		err := service.Unsubscribe(context.Background(), "ghost@example.com")

		assert.Equal(t, errors.ErrSubscriberNotFound, err)
	})

	t.Run("existing subscription is deactivated", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		existing := &model.NewsletterSubscriber{ID: 3, Email: "active@example.com", IsActive: true}
		mockRepo.On("FindByEmail", mock.Anything, "active@example.com").Return(existing, nil)
		mockRepo.On("Save", mock.Anything, existing).Return(nil)

		service := NewNewsletterService(mockRepo)
		err := service.Unsubscribe(context.Background(), "active@example.com")

		assert.NoError(t, err)
		assert.False(t, existing.IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unsubscribing twice still succeeds", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		existing := &model.NewsletterSubscriber{ID: 3, Email: "lapsed@example.com", IsActive: false}
		mockRepo.On("FindByEmail", mock.Anything, "lapsed@example.com").Return(existing, nil)
		mockRepo.On("Save", mock.Anything, existing).Return(nil)

		service := NewNewsletterService(mockRepo)
		err := service.Unsubscribe(context.Background(), "lapsed@example.com")

		assert.NoError(t, err)
		assert.False(t, existing.IsActive)
	})
}

func TestNewsletterService_ListActive(t *testing.T) {
	mockRepo := new(MockSubscriberRepository)
	mockRepo.On("ListActive", mock.Anything).Return([]model.NewsletterSubscriber{
		{ID: 1, Email: "a@example.com", IsActive: true},
		{ID: 2, Email: "b@example.com", IsActive: true},
	}, nil)

	service := NewNewsletterService(mockRepo)
	subscribers, err := service.ListActive(context.Background())

	assert.NoError(t, err)
	assert.Len(t, subscribers, 2)
	mockRepo.AssertExpectations(t)
}

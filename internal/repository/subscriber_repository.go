package repository

import (
	"context"

	"gorm.io/gorm"

	"alumnihub/internal/model"
)

// SubscriberRepository defines newsletter subscriber persistence operations.
type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *model.NewsletterSubscriber) error
	Save(ctx context.Context, subscriber *model.NewsletterSubscriber) error
	FindByEmail(ctx context.Context, email string) (*model.NewsletterSubscriber, error)
	ListActive(ctx context.Context) ([]model.NewsletterSubscriber, error)
}

type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository builds a GORM-backed repository.
func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(ctx context.Context, subscriber *model.NewsletterSubscriber) error {
	return r.db.WithContext(ctx).Create(subscriber).Error
}

func (r *subscriberRepository) Save(ctx context.Context, subscriber *model.NewsletterSubscriber) error {
	return r.db.WithContext(ctx).Save(subscriber).Error
}

func (r *subscriberRepository) FindByEmail(ctx context.Context, email string) (*model.NewsletterSubscriber, error) {
	var subscriber model.NewsletterSubscriber
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&subscriber).Error; err != nil {
		return nil, err
	}
	return &subscriber, nil
}

func (r *subscriberRepository) ListActive(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	var subscribers []model.NewsletterSubscriber
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("subscribed_at").Find(&subscribers).Error; err != nil {
		return nil, err
	}
	return subscribers, nil
}

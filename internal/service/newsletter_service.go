package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"alumnihub/internal/errors"
	"alumnihub/internal/model"
	"alumnihub/internal/repository"
)

// SubscribeResult reports the outcome of a subscribe call.
type SubscribeResult struct {
	Message     string `json:"message"`
	Subscribed  bool   `json:"subscribed"`
	Reactivated bool   `json:"reactivated"`
}

// NewsletterService handles the mailing list.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*SubscribeResult, error)
	Unsubscribe(ctx context.Context, email string) error
	ListActive(ctx context.Context) ([]model.NewsletterSubscriber, error)
}

type newsletterService struct {
	repo repository.SubscriberRepository
}

// NewNewsletterService creates a new newsletter service.
func NewNewsletterService(repo repository.SubscriberRepository) NewsletterService {
	return &newsletterService{repo: repo}
}

// Subscribe is idempotent: an active subscription is a no-op success, an
// inactive one is reactivated in place, and an unknown email gets a new row.
func (s *newsletterService) Subscribe(ctx context.Context, email string) (*SubscribeResult, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find subscriber: %w", err)
	}

	if existing != nil {
		if existing.IsActive {
			return &SubscribeResult{Message: "Email already subscribed", Subscribed: true}, nil
		}
		existing.IsActive = true
		if err := s.repo.Save(ctx, existing); err != nil {
			return nil, fmt.Errorf("reactivate subscription: %w", err)
		}
		return &SubscribeResult{Message: "Subscription reactivated", Subscribed: true, Reactivated: true}, nil
	}

	subscriber := &model.NewsletterSubscriber{
		Email:    email,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, subscriber); err != nil {
		// Concurrent first-time subscribes race on the unique email index;
		// the loser is still subscribed, so report success.
		if err == gorm.ErrDuplicatedKey {
			return &SubscribeResult{Message: "Email already subscribed", Subscribed: true}, nil
		}
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	return &SubscribeResult{Message: "Successfully subscribed to newsletter", Subscribed: true}, nil
}

// Unsubscribe deactivates the subscription. Only a completely unknown email
// is an error; unsubscribing twice succeeds.
func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	subscriber, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrSubscriberNotFound
		}
		return fmt.Errorf("find subscriber: %w", err)
	}

	subscriber.IsActive = false
	if err := s.repo.Save(ctx, subscriber); err != nil {
		return fmt.Errorf("deactivate subscription: %w", err)
	}
	return nil
}

// ListActive returns active subscribers only.
func (s *newsletterService) ListActive(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	return s.repo.ListActive(ctx)
}

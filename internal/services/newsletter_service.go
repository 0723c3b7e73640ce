package services

import (
	"errors"
	"fmt"
	"strings"

	"officeit/internal/catalog"
	"officeit/internal/models"
	"officeit/internal/repositories"
)

// NewsletterService manages newsletter subscriptions.
type NewsletterService struct {
	repo   repositories.SubscriberRepository
	events EventPublisher
}

// NewNewsletterService creates a new NewsletterService.
func NewNewsletterService(repo repositories.SubscriberRepository, events EventPublisher) *NewsletterService {
	return &NewsletterService{repo: repo, events: events}
}

// Subscribe registers email. An address already subscribed, in any case,
// fails with repositories.ErrDuplicate.
func (s *NewsletterService) Subscribe(email string) (*models.Subscriber, error) {
	email = strings.TrimSpace(email)
	if err := validationError(catalog.ValidateSubscription(email)); err != nil {
		return nil, err
	}
	_, err := s.repo.GetByEmail(email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%s is already subscribed: %w", email, repositories.ErrDuplicate)
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, err
	}

	subscriber := &models.Subscriber{Email: email}
	if err := s.repo.Create(subscriber); err != nil {
		return nil, err
	}
	publish(s.events, EventNewsletterJoined, subscriber)
	return subscriber, nil
}

// Subscribers lists current subscriptions.
func (s *NewsletterService) Subscribers() ([]models.Subscriber, error) {
	return s.repo.GetAll()
}

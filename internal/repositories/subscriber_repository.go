package repositories

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"officeit/internal/models"
)

// SubscriberRepository defines the interface for newsletter subscriptions.
type SubscriberRepository interface {
	Create(subscriber *models.Subscriber) error
	GetByEmail(email string) (*models.Subscriber, error)
	GetAll() ([]models.Subscriber, error)
}

// GORMSubscriberRepository is a GORM implementation of SubscriberRepository.
// Emails are stored lower-cased.
type GORMSubscriberRepository struct {
	db *gorm.DB
}

// NewGORMSubscriberRepository creates a new instance of GORMSubscriberRepository.
func NewGORMSubscriberRepository(db *gorm.DB) *GORMSubscriberRepository {
	return &GORMSubscriberRepository{db: db}
}

// Create stores a new subscription.
func (r *GORMSubscriberRepository) Create(subscriber *models.Subscriber) error {
	if subscriber.ID == "" {
		subscriber.ID = uuid.New().String()
	}
	subscriber.Email = strings.ToLower(subscriber.Email)
	if err := r.db.Create(subscriber).Error; err != nil {
		return fmt.Errorf("failed to create subscriber: %w", translateGormError(err))
	}
	return nil
}

// GetByEmail finds a subscription regardless of email case.
func (r *GORMSubscriberRepository) GetByEmail(email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	if err := r.db.First(&subscriber, "email = ?", strings.ToLower(email)).Error; err != nil {
		return nil, fmt.Errorf("subscriber %q not found: %w", email, translateGormError(err))
	}
	return &subscriber, nil
}

// GetAll lists subscriptions, newest first.
func (r *GORMSubscriberRepository) GetAll() ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	if err := r.db.Order("created_at desc").Find(&subscribers).Error; err != nil {
		return nil, fmt.Errorf("failed to get subscribers: %w", err)
	}
	return subscribers, nil
}

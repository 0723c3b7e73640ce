package models

import "time"

// Subscriber is a newsletter subscription.
type Subscriber struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(254);not null"`
	CreatedAt time.Time `json:"createdAt"`
}

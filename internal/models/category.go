package models

import "time"

// Category groups products. Products reference a category by name.
type Category struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name         string    `json:"name" gorm:"type:varchar(50);uniqueIndex;not null"`
	ProductCount int64     `json:"productCount" gorm:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

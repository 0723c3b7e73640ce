package models

import (
	"time"

	"gorm.io/datatypes"
)

// Availability values accepted for a product.
const (
	AvailabilityInStock    = "In Stock"
	AvailabilityOutOfStock = "Out of Stock"
)

// Specs maps a technical attribute name to its value, e.g. "Memory" -> "16GB".
type Specs map[string]string

// Product represents a product in the catalog.
type Product struct {
	ID           string                    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name         string                    `json:"name" gorm:"type:varchar(200);not null"`
	Price        float64                   `json:"price" gorm:"not null"`
	Discount     float64                   `json:"discount" gorm:"not null;default:0"` // sale price, 0 when not discounted
	Category     string                    `json:"category" gorm:"type:varchar(50);index"`
	Image        string                    `json:"image"`
	Description  string                    `json:"description" gorm:"type:text"`
	Availability string                    `json:"availability" gorm:"type:varchar(20);not null;default:'In Stock'"`
	Featured     bool                      `json:"featured" gorm:"not null;default:false;index"`
	Specs        datatypes.JSONType[Specs] `json:"specs"`
	CreatedAt    time.Time                 `json:"createdAt"`
	UpdatedAt    time.Time                 `json:"updatedAt"`
}

// SpecMap returns the product specs, never nil.
func (p *Product) SpecMap() Specs {
	specs := p.Specs.Data()
	if specs == nil {
		return Specs{}
	}
	return specs
}

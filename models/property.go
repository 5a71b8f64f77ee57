package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Listing types as they appear in the marketplace UI.
const (
	ListingRent = "Arrendar"
	ListingSale = "Vender"
)

type Property struct {
	Id           string  `json:"id" gorm:"primaryKey"`
	Title        string  `json:"title" gorm:"not null"`
	ListingType  string  `json:"listing_type" gorm:"type:VARCHAR(20);not null"`
	Address      string  `json:"address" gorm:"not null"`
	Municipality string  `json:"municipality" gorm:"not null"`
	Province     string  `json:"province" gorm:"not null"`
	Amount       float64 `json:"amount" gorm:"type:numeric(12,2)"` // monthly rent or sale price
	Currency     string  `json:"currency" gorm:"type:VARCHAR(3)"`
	OwnerID      uint    `json:"owner_id" gorm:"not null;index"`
	Owner        Party   `json:"owner" gorm:"foreignKey:OwnerID;references:Id;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Active       bool    `json:"active"`
}

func (property *Property) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	property.Id = uuid.NewString()
	return
}

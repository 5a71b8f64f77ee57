package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Agency is the tenant unit: every agency gets its own Postgres schema
// holding its parties, properties, transactions and issued documents.
type Agency struct {
	Id           string `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null;unique"`
	NIF          string `json:"nif" gorm:"null"`
	Address      string `json:"address" gorm:"not null"`
	Municipality string `json:"municipality" gorm:"not null"`
	Province     string `json:"province" gorm:"not null"`
	UserId       string `json:"-"`
	User         User   `json:"user" gorm:"foreignKey:UserId;references:Id"`
	SchemaName   string `json:"-"`
}

func (agency *Agency) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	agency.Id = uuid.NewString()
	return
}

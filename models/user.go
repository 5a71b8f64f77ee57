package models

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role values; owner/broker/legal_rep may publish listings.
const (
	RoleOwner    = "owner"
	RoleBroker   = "broker"
	RoleLegalRep = "legal_rep"
	RoleTenant   = "tenant"
)

// Group values; "internal" marks marketplace staff.
const (
	GroupPublic   = "public"
	GroupInternal = "internal"
)

type User struct {
	Id         string `json:"id" gorm:"primaryKey"`
	FirstName  string `json:"first_name" gorm:"not null"`
	LastName   string `json:"last_name" gorm:"not null"`
	Password   []byte `json:"-" gorm:"not null"`
	Email      string `json:"email" gorm:"unique;not null"`
	Role       string `json:"role" gorm:"type:VARCHAR(20);not null;default:tenant"`
	Group      string `json:"group" gorm:"type:VARCHAR(20);not null;default:public"`
	SchemaName string `json:"-" gorm:"not null"`
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	user.Id = uuid.NewString()
	return
}

func (user *User) SetPassword(password string) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), 12)
	user.Password = hashedPassword
}

func (user *User) ComparePassword(password string) error {
	return bcrypt.CompareHashAndPassword(user.Password, []byte(password))
}

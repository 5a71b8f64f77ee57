package models

// Party is a named entity appearing on documents: a property owner, a tenant,
// a buyer. NIF is the national id / tax number printed on legal documents.
type Party struct {
	Id           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null"`
	NIF          string `json:"nif" gorm:"not null;index"`
	Address      string `json:"address" gorm:"not null"`
	Municipality string `json:"municipality" gorm:"not null"`
	Province     string `json:"province" gorm:"not null"`
	Email        string `json:"email" gorm:"null"`
	PhoneNumber  string `json:"phone_number" gorm:"null"`
	Active       bool   `json:"-"`
}

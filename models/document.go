package models

import (
	"time"

	"gorm.io/datatypes"
)

// Document is an issued document: an immutable record of one render. The full
// request is kept as a JSONB snapshot so a reprint reproduces the original
// byte for byte; the totals columns exist for listing/reporting only and are
// always written together from the derived figures.
type Document struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Number    string         `json:"number" gorm:"size:40;uniqueIndex"`
	Type      string         `json:"document_type" gorm:"type:VARCHAR(20);not null;index"`
	Title     string         `json:"title"`
	IssueDate time.Time      `json:"issue_date" gorm:"index"`
	Request   datatypes.JSON `json:"request" gorm:"type:jsonb"`
	HTML      string         `json:"-" gorm:"type:text"`
	Subtotal  float64        `json:"subtotal" gorm:"type:numeric(12,2)"`
	TaxTotal  float64        `json:"tax_total" gorm:"type:numeric(12,2)"`
	Total     float64        `json:"total" gorm:"type:numeric(12,2)"`
	IssuedBy  string         `json:"issued_by" gorm:"size:128"`
	CreatedAt time.Time      `json:"created_at"`
}

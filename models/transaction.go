package models

import "time"

// Transaction is a monetary event (rent payment, fee) that financial
// documents reference. It is recorded as paid; invoices derive their tax
// totals from it at render time instead of storing them redundantly here.
type Transaction struct {
	Id          uint      `json:"id" gorm:"primaryKey"`
	PropertyID  *string   `json:"property_id" gorm:"index"`
	Amount      float64   `json:"amount" gorm:"type:numeric(12,2)"`
	Currency    string    `json:"currency" gorm:"type:VARCHAR(3)"`
	Description string    `json:"description"`
	Reference   string    `json:"reference"`
	Method      string    `json:"method"`
	PaidAt      time.Time `json:"paid_at" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
}

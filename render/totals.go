package render

import (
	"github.com/Milaston7/ARRENDAKI-sub001/money"
)

// InvoiceTotals is derived fresh on every render and never persisted on its
// own: Total is always Base + Tax after minor-unit rounding, so the three
// figures cannot drift apart.
type InvoiceTotals struct {
	Base  float64 `json:"base_amount"`
	Tax   float64 `json:"tax_amount"`
	Total float64 `json:"total_amount"`
}

// ComputeTotals applies taxRate to the transaction amount. A nil transaction
// yields a zero-value invoice rather than an error.
func ComputeTotals(tx *TransactionInfo, taxRate float64) InvoiceTotals {
	base := money.Round2(resolveAmount(tx))
	tax := money.Round2(base * taxRate)
	return InvoiceTotals{
		Base:  base,
		Tax:   tax,
		Total: money.Round2(base + tax),
	}
}

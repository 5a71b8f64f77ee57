package render

import (
	"strings"
	"time"
)

// Default resolution used to live as inline fallback expressions scattered
// through the templates. Each field gets its own named resolver so the
// degradation rules are testable in isolation.

const blankField = "________"

func resolveAmount(tx *TransactionInfo) float64 {
	if tx == nil {
		return 0
	}
	return tx.Amount
}

func resolveCurrency(tx *TransactionInfo, fallback string) string {
	if tx == nil || strings.TrimSpace(tx.Currency) == "" {
		return fallback
	}
	return strings.ToUpper(strings.TrimSpace(tx.Currency))
}

func resolveDescription(tx *TransactionInfo, generic string) string {
	if tx == nil || strings.TrimSpace(tx.Description) == "" {
		return generic
	}
	return strings.TrimSpace(tx.Description)
}

func resolveText(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return strings.TrimSpace(s)
}

func resolveIssueDate(t time.Time, now func() time.Time) time.Time {
	if t.IsZero() {
		return now()
	}
	return t
}

// firstNameToken returns the string before the first space of a full name;
// signature blocks are keyed by it.
func firstNameToken(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return blankField
	}
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i]
	}
	return name
}

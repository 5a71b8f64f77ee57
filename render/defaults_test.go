package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultResolvers(t *testing.T) {
	t.Run("amount", func(t *testing.T) {
		assert.Zero(t, resolveAmount(nil))
		assert.Equal(t, 42.5, resolveAmount(&TransactionInfo{Amount: 42.5}))
	})

	t.Run("currency", func(t *testing.T) {
		assert.Equal(t, "AOA", resolveCurrency(nil, "AOA"))
		assert.Equal(t, "AOA", resolveCurrency(&TransactionInfo{}, "AOA"))
		assert.Equal(t, "USD", resolveCurrency(&TransactionInfo{Currency: " usd "}, "AOA"))
	})

	t.Run("description", func(t *testing.T) {
		assert.Equal(t, "generic", resolveDescription(nil, "generic"))
		assert.Equal(t, "generic", resolveDescription(&TransactionInfo{Description: "  "}, "generic"))
		assert.Equal(t, "Renda", resolveDescription(&TransactionInfo{Description: " Renda "}, "generic"))
	})

	t.Run("text", func(t *testing.T) {
		assert.Equal(t, blankField, resolveText("", blankField))
		assert.Equal(t, "Luanda", resolveText("  Luanda ", blankField))
	})

	t.Run("issue date", func(t *testing.T) {
		now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		clock := func() time.Time { return now }
		assert.Equal(t, now, resolveIssueDate(time.Time{}, clock))
		given := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, given, resolveIssueDate(given, clock))
	})

	t.Run("first name token", func(t *testing.T) {
		assert.Equal(t, "Mariana", firstNameToken("Mariana dos Santos"))
		assert.Equal(t, "Cher", firstNameToken("Cher"))
		assert.Equal(t, blankField, firstNameToken("   "))
	})
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type updateDTO struct {
	Title    *string  `json:"title"`
	Amount   *float64 `json:"amount"`
	Internal *string  `json:"-"`
	NoTag    *string
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestUpdatesFromPtrDTO(t *testing.T) {
	t.Run("only non-nil fields are included", func(t *testing.T) {
		in := updateDTO{Title: strPtr("Vivenda T3")}
		updates := UpdatesFromPtrDTO(&in, nil)
		assert.Equal(t, map[string]any{"title": "Vivenda T3"}, updates)
	})

	t.Run("skips dash and untagged fields", func(t *testing.T) {
		in := updateDTO{Internal: strPtr("x"), NoTag: strPtr("y")}
		updates := UpdatesFromPtrDTO(&in, nil)
		assert.Empty(t, updates)
	})

	t.Run("renames map translates column names", func(t *testing.T) {
		in := updateDTO{Amount: f64Ptr(1500)}
		updates := UpdatesFromPtrDTO(&in, map[string]string{"amount": "monthly_amount"})
		assert.Equal(t, map[string]any{"monthly_amount": 1500.0}, updates)
	})
}

func TestNormalizePtrDTO(t *testing.T) {
	in := updateDTO{Title: strPtr("  Vivenda T3  "), Amount: f64Ptr(1500.005)}
	NormalizePtrDTO(&in)
	assert.Equal(t, "Vivenda T3", *in.Title)
	assert.InDelta(t, 1500.0, *in.Amount, 0.011)
	assert.Nil(t, in.Internal, "nil fields stay nil")
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 5, ParseIntDefault(" 5 ", 1))
	assert.Equal(t, 1, ParseIntDefault("abc", 1))
	assert.Equal(t, 1, ParseIntDefault("-3", 1))
}

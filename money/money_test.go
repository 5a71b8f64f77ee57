package money

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{"kwanza with grouping", 114000, "AOA", "114 000,00 Kz"},
		{"zero", 0, "AOA", "0,00 Kz"},
		{"under one thousand", 950.5, "AOA", "950,50 Kz"},
		{"millions", 1234567.89, "AOA", "1 234 567,89 Kz"},
		{"empty code falls back to kwanza", 100, "", "100,00 Kz"},
		{"lowercase code", 100, "aoa", "100,00 Kz"},
		{"dollar symbol", 2500, "USD", "2 500,00 US$"},
		{"unknown code keeps the code", 100, "CHF", "100,00 CHF"},
		{"negative", -1500.25, "AOA", "-1 500,25 Kz"},
		{"rounds to minor unit", 13.9986, "AOA", "14,00 Kz"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.amount, tc.code))
		})
	}
}

func TestValidCurrency(t *testing.T) {
	assert.True(t, ValidCurrency("AOA"))
	assert.True(t, ValidCurrency("usd"))
	assert.True(t, ValidCurrency(""))
	assert.True(t, ValidCurrency(" EUR "))
	assert.False(t, ValidCurrency("KWANZA"))
	assert.False(t, ValidCurrency("A1A"))
	assert.False(t, ValidCurrency("K"))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "15/01/2024", FormatDate(d))
	assert.Equal(t, "15 de Janeiro de 2024", FormatDateLong(d))
}

func TestAddMonthsClamped(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	cases := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain twelve months", day(2024, 1, 15), 12, day(2025, 1, 15)},
		{"leap day clamps to feb 28", day(2024, 2, 29), 12, day(2025, 2, 28)},
		{"jan 31 to feb leap year", day(2024, 1, 31), 1, day(2024, 2, 29)},
		{"jan 31 to feb common year", day(2025, 1, 31), 1, day(2025, 2, 28)},
		{"31st into a 30 day month", day(2024, 3, 31), 1, day(2024, 4, 30)},
		{"crosses year boundary", day(2024, 11, 30), 3, day(2025, 2, 28)},
		{"twelve months keeps month ends aligned", day(2024, 8, 31), 12, day(2025, 8, 31)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AddMonthsClamped(tc.start, tc.months))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 14.0, Round2(13.9986))
	assert.Equal(t, 0.14, Round2(0.14))
	assert.Equal(t, -1.01, Round2(-1.006))
}

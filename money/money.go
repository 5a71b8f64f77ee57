// Package money formats monetary amounts and dates for printed documents.
//
// The output format is pinned to Portuguese-Angola conventions (space
// thousands grouping, comma decimals, symbol after the amount, dd/mm/yyyy
// dates) and must stay byte-stable across releases: issued contracts and
// invoices are legal documents and a formatting drift would make reprints
// differ from the originals.
package money

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultCurrency is the ISO 4217 code used when a transaction carries none.
const DefaultCurrency = "AOA"

// symbols maps ISO 4217 codes to a local display symbol. Codes without an
// entry are rendered with the code itself.
var symbols = map[string]string{
	"AOA": "Kz",
	"EUR": "€",
	"USD": "US$",
	"BRL": "R$",
}

// Round2 rounds x to 2 decimal places (banking-style simple round).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Format renders amount in pt-AO convention for the given ISO 4217 code,
// e.g. Format(114000, "AOA") == "114 000,00 Kz".
func Format(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrency
	}

	v := Round2(amount)
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(' ')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte(',')
	b.WriteString(frac)
	b.WriteByte(' ')

	if sym, ok := symbols[code]; ok {
		b.WriteString(sym)
	} else {
		b.WriteString(code)
	}
	return b.String()
}

// ValidCurrency reports whether code has the shape of an ISO 4217 code
// (three ASCII letters). An empty code is valid; it resolves to the default.
func ValidCurrency(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return true
	}
	if len(code) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		c := code[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

// FormatDate renders t as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// FormatDateLong renders t as e.g. "15 de Janeiro de 2024".
func FormatDateLong(t time.Time) string {
	return strconv.Itoa(t.Day()) + " de " + monthNames[t.Month()-1] + " de " + strconv.Itoa(t.Year())
}

// AddMonthsClamped adds months to t, clamping the day to the last day of the
// target month instead of rolling over. 2024-02-29 plus 12 months is
// 2025-02-28; time.Time.AddDate would roll it into March.
func AddMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	m += time.Month(months)
	// normalize year/month before clamping the day
	first := time.Date(y, m, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

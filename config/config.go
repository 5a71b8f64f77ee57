package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Milaston7/ARRENDAKI-sub001/money"
)

// Render is the immutable configuration of the document renderer. The locale,
// currency and tax rate used to live as scattered literals; they are carried
// here explicitly so tests can vary them without touching renderer logic.
type Render struct {
	Locale      string        // BCP 47 tag of the formatting convention
	Currency    string        // ISO 4217 default currency code
	TaxRate     float64       // VAT rate applied on invoices (0.14 = 14%)
	WarmupDelay time.Duration // delay before the renderer reports ready

	// PDF pipeline (headless Chromium)
	ChromiumPath string
	PDFTimeout   time.Duration
}

// DefaultRender returns the production defaults: Angolan locale and currency,
// the 14% IVA rate, and the 500ms warm-up of the original behavior.
func DefaultRender() Render {
	return Render{
		Locale:      "pt-AO",
		Currency:    money.DefaultCurrency,
		TaxRate:     0.14,
		WarmupDelay: 500 * time.Millisecond,
		PDFTimeout:  15 * time.Second,
	}
}

// RenderFromEnv overlays defaults with RENDER_* environment variables.
func RenderFromEnv() Render {
	cfg := DefaultRender()
	if v := strings.TrimSpace(os.Getenv("RENDER_CURRENCY")); v != "" {
		cfg.Currency = strings.ToUpper(v)
	}
	if v := strings.TrimSpace(os.Getenv("RENDER_TAX_RATE")); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate >= 0 {
			cfg.TaxRate = rate
		}
	}
	if v := strings.TrimSpace(os.Getenv("RENDER_WARMUP_MS")); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.WarmupDelay = time.Duration(ms) * time.Millisecond
		}
	}
	if v := strings.TrimSpace(os.Getenv("RENDER_CHROMIUM_PATH")); v != "" {
		cfg.ChromiumPath = v
	}
	if v := strings.TrimSpace(os.Getenv("RENDER_PDF_TIMEOUT_SECONDS")); v != "" {
		if s, err := strconv.Atoi(v); err == nil && s > 0 {
			cfg.PDFTimeout = time.Duration(s) * time.Second
		}
	}
	return cfg
}

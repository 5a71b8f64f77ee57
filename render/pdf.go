package render

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/Milaston7/ARRENDAKI-sub001/config"
)

// PDFExporter prints rendered document HTML to PDF via headless Chromium.
// Print and file export share this single pipeline; the export endpoint only
// changes the response disposition.
type PDFExporter struct {
	cfg config.Render
}

func NewPDFExporter(cfg config.Render) PDFExporter {
	return PDFExporter{cfg: cfg}
}

// Export prints html to PDF bytes. If Chromium is unavailable it returns an
// error; the caller decides whether to retry or fall back to raw HTML.
func (e PDFExporter) Export(ctx context.Context, html string) ([]byte, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if e.cfg.ChromiumPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(e.cfg.ChromiumPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	timeout := e.cfg.PDFTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	runCtx, cancelRun := chromedp.NewContext(allocCtx)
	defer cancelRun()
	runCtx, cancelTimeout := context.WithTimeout(runCtx, timeout)
	defer cancelTimeout()

	var pdf []byte
	dataURL := "data:text/html," + url.PathEscape(html)
	err := chromedp.Run(runCtx,
		chromedp.Navigate(dataURL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, perr := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if perr == nil {
				pdf = buf
			}
			return perr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return pdf, nil
}

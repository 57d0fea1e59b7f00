package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 geometry in inches with 20mm margins, matching the print stylesheet.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.79
)

// HTMLToPDF renders the HTML document in a headless browser and returns the
// PDF bytes. Requires Chrome/Chromium on the system.
func (c *Converter) HTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	// Chrome only prints what it navigated to, so the document goes through
	// a temp file rather than a data URL (which caps out on large résumés).
	tmp, err := os.CreateTemp("", "bryanai-*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp document: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write temp document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp document: %w", err)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, c.timeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+filepath.ToSlash(tmpPath)),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	return pdf, nil
}

// SavePDF converts the HTML document and writes the PDF artifact, returning
// its path.
func (c *Converter) SavePDF(ctx context.Context, html, prefix string) (string, error) {
	pdf, err := c.HTMLToPDF(ctx, html)
	if err != nil {
		return "", err
	}
	return c.writeArtifact(prefix, "pdf", pdf)
}

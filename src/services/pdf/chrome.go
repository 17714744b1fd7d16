package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeRasterizer prints through a headless Chrome started per export.
type ChromeRasterizer struct {
	execPath string
	timeout  time.Duration
}

// NewChromeRasterizer uses the Chrome at execPath, or the one on PATH when
// execPath is empty.
func NewChromeRasterizer(execPath string, timeout time.Duration) *ChromeRasterizer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromeRasterizer{execPath: execPath, timeout: timeout}
}

func (r *ChromeRasterizer) Render(ctx context.Context, html string, opts RenderOptions) (Document, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.execPath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	f := opts.Format
	var height float64
	var buf []byte
	err := chromedp.Run(taskCtx,
		chromedp.EmulateViewport(f.PrintableWidthPx(), int64(f.PrintableHeightPx())),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady(opts.Selector, chromedp.ByQuery),
		chromedp.Evaluate(fmt.Sprintf(`document.querySelector(%q).getBoundingClientRect().height`, opts.Selector), &height),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(f.WidthIn).
				WithPaperHeight(f.HeightIn).
				WithMarginTop(f.MarginTopIn).
				WithMarginBottom(f.MarginBotIn).
				WithMarginLeft(f.MarginSideIn).
				WithMarginRight(f.MarginSideIn).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<span></span>`).
				WithFooterTemplate(opts.FooterHTML).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return Document{}, err
	}
	return Document{Data: buf, ContentHeightPx: height}, nil
}

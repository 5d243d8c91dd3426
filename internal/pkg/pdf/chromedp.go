package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeDPConverter 使用远程 Chrome 实例把 HTML 渲染成 PDF
type ChromeDPConverter struct {
	RemoteWebSocketURL string
	DefaultTimeout     time.Duration
	DefaultOptions     Options
}

func NewChromeDPConverter(remoteWebSocketURL string) *ChromeDPConverter {
	return &ChromeDPConverter{
		RemoteWebSocketURL: remoteWebSocketURL,
		DefaultTimeout:     60 * time.Second,
		DefaultOptions: Options{
			PaperWidthInch:   8.5,
			PaperHeightInch:  11,
			MarginTopInch:    0.4,
			MarginBottomInch: 0.4,
			MarginLeftInch:   0.4,
			MarginRightInch:  0.4,
			Landscape:        false,
		},
	}
}

func (c *ChromeDPConverter) ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	options := c.DefaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.DefaultTimeout)
	defer cancel()

	allocCtx, allocCancel := chromedp.NewRemoteAllocator(timeoutCtx, c.RemoteWebSocketURL)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	printToPDFParams := page.PrintToPDF().
		WithPrintBackground(true).
		WithPreferCSSPageSize(true).
		WithMarginTop(options.MarginTopInch).
		WithMarginBottom(options.MarginBottomInch).
		WithMarginLeft(options.MarginLeftInch).
		WithMarginRight(options.MarginRightInch).
		WithLandscape(options.Landscape)

	if options.PaperWidthInch > 0 && options.PaperHeightInch > 0 {
		printToPDFParams = printToPDFParams.
			WithPaperWidth(options.PaperWidthInch).
			WithPaperHeight(options.PaperHeightInch)
	}

	var pdfData []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfData, _, err = printToPDFParams.Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("渲染PDF失败: %w", err)
	}
	return pdfData, nil
}

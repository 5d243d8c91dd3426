package pdf

import (
	"context"
)

// Converter PDF转换器接口
//
//go:generate mockgen -source=./pdf.go -package=pdfmocks -destination=./mocks/pdf.mock.go Converter
type Converter interface {
	// ConvertHTMLToPDF 将HTML内容转换为PDF
	ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error)
}

type Options struct {
	PaperWidthInch   float64
	PaperHeightInch  float64
	MarginTopInch    float64
	MarginBottomInch float64
	MarginLeftInch   float64
	MarginRightInch  float64
	Landscape        bool
}

type Option func(*Options)

// WithLandscape 横版，证书一般用这个
func WithLandscape() Option {
	return func(o *Options) {
		o.Landscape = true
	}
}

func WithPaperSize(widthInch, heightInch float64) Option {
	return func(o *Options) {
		o.PaperWidthInch = widthInch
		o.PaperHeightInch = heightInch
	}
}

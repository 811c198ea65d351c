// Package sheetlens inspects spreadsheet workbooks: it locates empty
// cells and produces lossless grid serializations.
package sheetlens

import "go.uber.org/zap"

// DefaultMaxFindings is the display limit applied when Options does
// not set one.
const DefaultMaxFindings = 20

// Options configures workbook inspection.
type Options struct {
	// MaxFindings caps how many empty-cell positions display
	// formatting shows. Zero or negative selects DefaultMaxFindings.
	MaxFindings int
	// Logger receives progress and warn-and-continue events. Nil
	// disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{MaxFindings: DefaultMaxFindings}
}

// FindingsLimit returns the effective display limit.
func (o Options) FindingsLimit() int {
	if o.MaxFindings <= 0 {
		return DefaultMaxFindings
	}
	return o.MaxFindings
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

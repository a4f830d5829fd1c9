// Package sheetstyle reads the workbook-level metadata and theme palette of
// an .xlsx package into the object models of its subpackages.
package sheetstyle

import "log"

// Options configures inspection behavior.
type Options struct {
	// Logger receives warnings about parts that could not be read. If nil,
	// warnings are dropped.
	Logger *log.Logger
	// IncludeCalcChain specifies whether to read xl/calcChain.xml.
	// If nil, defaults to true.
	IncludeCalcChain *bool
	// IncludeTheme specifies whether to read the theme palette.
	// If nil, defaults to true.
	IncludeTheme *bool
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldIncludeCalcChain returns whether to read the calculation chain.
func (o Options) ShouldIncludeCalcChain() bool {
	if o.IncludeCalcChain != nil {
		return *o.IncludeCalcChain
	}
	return true
}

// ShouldIncludeTheme returns whether to read the theme palette.
func (o Options) ShouldIncludeTheme() bool {
	if o.IncludeTheme != nil {
		return *o.IncludeTheme
	}
	return true
}

func (o Options) warnf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

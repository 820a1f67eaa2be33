// Package analytics is the pure computation core of salescope: flattening
// fact rows with their dimension attributes, grouping and folding measures,
// and the windowed transforms (rank, running totals, variance vs average,
// year-over-year, part-to-whole). Nothing in this package performs I/O and
// every function returns a new collection instead of mutating its input.
package analytics

import (
	"github.com/smallbiznis/salescope/internal/warehouse/domain"
)

// EnrichedLine is a SalesLine extended with its dimension rows. Product and
// Customer are nil when the fact row has no matching dimension key; the fact
// row itself is never dropped (left-outer-join semantics).
type EnrichedLine struct {
	domain.SalesLine
	Product  *domain.Product
	Customer *domain.Customer
}

// Flatten joins every fact row against both dimensions.
func Flatten(snap *domain.Snapshot) []EnrichedLine {
	out := make([]EnrichedLine, 0, len(snap.Lines))
	for _, line := range snap.Lines {
		out = append(out, EnrichedLine{
			SalesLine: line,
			Product:   snap.ProductByKey(line.ProductKey),
			Customer:  snap.CustomerByKey(line.CustomerKey),
		})
	}
	return out
}

// WithOrderDate filters to rows usable in time-based analysis. Callers that
// only need additive totals keep the unfiltered slice; the choice is made at
// each call site, never globally.
func WithOrderDate(lines []EnrichedLine) []EnrichedLine {
	out := make([]EnrichedLine, 0, len(lines))
	for _, line := range lines {
		if line.OrderDate != nil {
			out = append(out, line)
		}
	}
	return out
}

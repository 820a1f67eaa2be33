package domain

import "context"

// Service rebuilds the report views from the current fact/dimension state.
// Both builds are pure functions of the snapshot plus the evaluation instant;
// concurrent calls share nothing and may run in parallel.
type Service interface {
	BuildProductReports(ctx context.Context) (ProductReportSet, error)
	BuildCustomerReports(ctx context.Context) (CustomerReportSet, error)
}

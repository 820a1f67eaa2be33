package domain

import "context"

// Service answers the ad-hoc analytical queries over the warehouse snapshot.
// Every call recomputes from current data; n limits rankings to the top (or
// bottom) n entries, with 0 meaning all.
type Service interface {
	TopProductsBySales(ctx context.Context, n int) ([]RankedProduct, error)
	BottomProductsBySales(ctx context.Context, n int) ([]RankedProduct, error)
	TopCustomersBySales(ctx context.Context, n int) ([]RankedCustomer, error)
	CustomersByFewestOrders(ctx context.Context, n int) ([]RankedCustomer, error)

	YearlySales(ctx context.Context) ([]YearlySalesPoint, error)
	MonthlySales(ctx context.Context) ([]MonthlySalesPoint, error)
	RunningYearlySales(ctx context.Context) ([]RunningSalesPoint, error)

	ProductYearlyPerformance(ctx context.Context) ([]ProductYearPerformance, error)
	CategoryShare(ctx context.Context) ([]CategoryShare, error)
}

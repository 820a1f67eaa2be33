package service

import (
	"context"
	"sort"

	"github.com/smallbiznis/salescope/internal/analytics"
	"github.com/smallbiznis/salescope/internal/insight/domain"
	obsmetrics "github.com/smallbiznis/salescope/internal/observability/metrics"
	warehousedomain "github.com/smallbiznis/salescope/internal/warehouse/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// categoryUnknown labels fact rows whose product dimension is missing; the
// rows still count toward the grand total.
const categoryUnknown = "n/a"

type Params struct {
	fx.In

	Repo    warehousedomain.Repository
	Log     *zap.Logger
	Metrics *obsmetrics.Metrics
}

type Service struct {
	repo    warehousedomain.Repository
	log     *zap.Logger
	metrics *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		repo:    p.Repo,
		log:     p.Log.Named("insight.service"),
		metrics: p.Metrics,
	}
}

func (s *Service) TopProductsBySales(ctx context.Context, n int) ([]domain.RankedProduct, error) {
	return s.rankProducts(ctx, n, false, "top_products")
}

func (s *Service) BottomProductsBySales(ctx context.Context, n int) ([]domain.RankedProduct, error) {
	return s.rankProducts(ctx, n, true, "bottom_products")
}

func (s *Service) rankProducts(ctx context.Context, n int, ascending bool, shape string) ([]domain.RankedProduct, error) {
	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.InsightQueried(ctx, shape)

	// Rankings are purely additive, so undated rows stay in.
	lines := analytics.Flatten(snap)
	groups := analytics.GroupBy(lines, func(l analytics.EnrichedLine) int64 { return l.ProductKey })

	type productTotal struct {
		key   int64
		name  string
		sales int64
	}
	totals := make([]productTotal, 0, len(groups))
	for _, g := range groups {
		t := productTotal{
			key:   g.Key,
			sales: analytics.Sum(g.Items, func(l analytics.EnrichedLine) int64 { return l.SalesAmount }),
		}
		for _, l := range g.Items {
			if l.Product != nil {
				t.name = l.Product.ProductName
				break
			}
		}
		totals = append(totals, t)
	}

	ranked := analytics.TopN(analytics.Rank(totals, func(t productTotal) int64 { return t.sales }, ascending), n)
	out := make([]domain.RankedProduct, len(ranked))
	for i, r := range ranked {
		out[i] = domain.RankedProduct{
			Rank:        r.Rank,
			ProductKey:  r.Item.key,
			ProductName: r.Item.name,
			TotalSales:  r.Item.sales,
		}
	}
	return out, nil
}

func (s *Service) TopCustomersBySales(ctx context.Context, n int) ([]domain.RankedCustomer, error) {
	totals, err := s.customerTotals(ctx, "top_customers")
	if err != nil {
		return nil, err
	}
	ranked := analytics.TopN(analytics.Rank(totals, func(t customerTotal) int64 { return t.sales }, false), n)
	return toRankedCustomers(ranked), nil
}

func (s *Service) CustomersByFewestOrders(ctx context.Context, n int) ([]domain.RankedCustomer, error) {
	totals, err := s.customerTotals(ctx, "fewest_order_customers")
	if err != nil {
		return nil, err
	}
	ranked := analytics.TopN(analytics.Rank(totals, func(t customerTotal) int64 { return t.orders }, true), n)
	return toRankedCustomers(ranked), nil
}

type customerTotal struct {
	key    int64
	name   string
	sales  int64
	orders int64
}

func (s *Service) customerTotals(ctx context.Context, shape string) ([]customerTotal, error) {
	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.InsightQueried(ctx, shape)

	lines := analytics.Flatten(snap)
	groups := analytics.GroupBy(lines, func(l analytics.EnrichedLine) int64 { return l.CustomerKey })

	totals := make([]customerTotal, 0, len(groups))
	for _, g := range groups {
		t := customerTotal{
			key:    g.Key,
			sales:  analytics.Sum(g.Items, func(l analytics.EnrichedLine) int64 { return l.SalesAmount }),
			orders: analytics.DistinctCount(g.Items, func(l analytics.EnrichedLine) string { return l.OrderNumber }),
		}
		for _, l := range g.Items {
			if l.Customer != nil {
				t.name = l.Customer.FullName()
				break
			}
		}
		totals = append(totals, t)
	}
	return totals, nil
}

func toRankedCustomers(ranked []analytics.Ranked[customerTotal]) []domain.RankedCustomer {
	out := make([]domain.RankedCustomer, len(ranked))
	for i, r := range ranked {
		out[i] = domain.RankedCustomer{
			Rank:         r.Rank,
			CustomerKey:  r.Item.key,
			CustomerName: r.Item.name,
			TotalSales:   r.Item.sales,
			TotalOrders:  r.Item.orders,
		}
	}
	return out
}

func (s *Service) YearlySales(ctx context.Context) ([]domain.YearlySalesPoint, error) {
	buckets, err := s.yearlyBuckets(ctx, "yearly_sales")
	if err != nil {
		return nil, err
	}
	out := make([]domain.YearlySalesPoint, len(buckets))
	for i, b := range buckets {
		out[i] = domain.YearlySalesPoint{
			Year:           b.year,
			TotalSales:     b.sales,
			TotalCustomers: b.customers,
			TotalQuantity:  b.quantity,
		}
	}
	return out, nil
}

func (s *Service) MonthlySales(ctx context.Context) ([]domain.MonthlySalesPoint, error) {
	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.InsightQueried(ctx, "monthly_sales")

	dated := analytics.WithOrderDate(analytics.Flatten(snap))
	type ym struct {
		year  int
		month int
	}
	groups := analytics.GroupBy(dated, func(l analytics.EnrichedLine) ym {
		return ym{year: l.OrderDate.Year(), month: int(l.OrderDate.Month())}
	})

	out := make([]domain.MonthlySalesPoint, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.MonthlySalesPoint{
			Year:           g.Key.year,
			Month:          g.Key.month,
			TotalSales:     analytics.Sum(g.Items, func(l analytics.EnrichedLine) int64 { return l.SalesAmount }),
			TotalCustomers: analytics.DistinctCount(g.Items, func(l analytics.EnrichedLine) int64 { return l.CustomerKey }),
			TotalQuantity:  analytics.Sum(g.Items, func(l analytics.EnrichedLine) int64 { return int64(l.Quantity) }),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}

type yearBucket struct {
	year      int
	sales     int64
	customers int64
	quantity  int64
	avgPrice  float64
}

func (s *Service) yearlyBuckets(ctx context.Context, shape string) ([]yearBucket, error) {
	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.InsightQueried(ctx, shape)

	dated := analytics.WithOrderDate(analytics.Flatten(snap))
	groups := analytics.GroupBy(dated, func(l analytics.EnrichedLine) int { return l.OrderDate.Year() })

	buckets := make([]yearBucket, 0, len(groups))
	for _, g := range groups {
		n := int64(len(g.Items))
		var priceSum int64
		for _, l := range g.Items {
			priceSum += l.Price
		}
		buckets = append(buckets, yearBucket{
			year:      g.Key,
			sales:     analytics.Sum(g.Items, func(l analytics.EnrichedLine) int64 { return l.SalesAmount }),
			customers: analytics.DistinctCount(g.Items, func(l analytics.EnrichedLine) int64 { return l.CustomerKey }),
			quantity:  analytics.Sum(g.Items, func(l analytics.EnrichedLine) int64 { return int64(l.Quantity) }),
			avgPrice:  float64(priceSum) / float64(n),
		})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].year < buckets[j].year })
	return buckets, nil
}

func (s *Service) RunningYearlySales(ctx context.Context) ([]domain.RunningSalesPoint, error) {
	buckets, err := s.yearlyBuckets(ctx, "running_yearly_sales")
	if err != nil {
		return nil, err
	}

	points := analytics.RunningTotals(buckets,
		func(b yearBucket) int64 { return b.sales },
		func(b yearBucket) float64 { return b.avgPrice },
	)

	out := make([]domain.RunningSalesPoint, len(points))
	for i, p := range points {
		out[i] = domain.RunningSalesPoint{
			Year:           p.Item.year,
			TotalSales:     p.Item.sales,
			RunningTotal:   p.RunningTotal,
			AvgPrice:       p.Item.avgPrice,
			MovingAvgPrice: p.MovingAvg,
		}
	}
	return out, nil
}

func (s *Service) ProductYearlyPerformance(ctx context.Context) ([]domain.ProductYearPerformance, error) {
	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.InsightQueried(ctx, "product_yearly_performance")

	dated := analytics.WithOrderDate(analytics.Flatten(snap))
	type productYear struct {
		key  int64
		year int
	}
	groups := analytics.GroupBy(dated, func(l analytics.EnrichedLine) productYear {
		return productYear{key: l.ProductKey, year: l.OrderDate.Year()}
	})

	type perfRow struct {
		key   int64
		name  string
		year  int
		sales int64
	}
	rows := make([]perfRow, 0, len(groups))
	for _, g := range groups {
		r := perfRow{
			key:   g.Key.key,
			year:  g.Key.year,
			sales: analytics.Sum(g.Items, func(l analytics.EnrichedLine) int64 { return l.SalesAmount }),
		}
		for _, l := range g.Items {
			if l.Product != nil {
				r.name = l.Product.ProductName
				break
			}
		}
		rows = append(rows, r)
	}

	// Year-ascending within each product partition; YearOverYear relies on it.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].key != rows[j].key {
			return rows[i].key < rows[j].key
		}
		return rows[i].year < rows[j].year
	})

	part := func(r perfRow) int64 { return r.key }
	measure := func(r perfRow) int64 { return r.sales }
	variance := analytics.VsAverage(rows, part, measure)
	trend := analytics.YearOverYear(rows, part, measure)

	out := make([]domain.ProductYearPerformance, len(rows))
	for i, r := range rows {
		out[i] = domain.ProductYearPerformance{
			Year:          r.year,
			ProductKey:    r.key,
			ProductName:   r.name,
			CurrentSales:  r.sales,
			AvgSales:      variance[i].PartitionAvg,
			DiffFromAvg:   variance[i].DiffFromAvg,
			AvgChange:     variance[i].AvgChange,
			PreviousSales: trend[i].Previous,
			DiffFromPrev:  trend[i].Diff,
			Change:        trend[i].Change,
		}
	}
	return out, nil
}

func (s *Service) CategoryShare(ctx context.Context) ([]domain.CategoryShare, error) {
	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.InsightQueried(ctx, "category_share")

	// Part-to-whole is purely additive: undated rows count too.
	lines := analytics.Flatten(snap)
	groups := analytics.GroupBy(lines, func(l analytics.EnrichedLine) string {
		if l.Product == nil || l.Product.Category == "" {
			return categoryUnknown
		}
		return l.Product.Category
	})

	type categoryTotal struct {
		category string
		sales    int64
	}
	totals := make([]categoryTotal, 0, len(groups))
	for _, g := range groups {
		totals = append(totals, categoryTotal{
			category: g.Key,
			sales:    analytics.Sum(g.Items, func(l analytics.EnrichedLine) int64 { return l.SalesAmount }),
		})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].sales > totals[j].sales })

	shares := analytics.PartToWhole(totals, func(t categoryTotal) int64 { return t.sales })
	out := make([]domain.CategoryShare, len(shares))
	for i, sh := range shares {
		out[i] = domain.CategoryShare{
			Category:     sh.Item.category,
			TotalSales:   sh.Total,
			OverallSales: sh.GrandTotal,
			Percentage:   sh.Percentage,
		}
	}
	return out, nil
}

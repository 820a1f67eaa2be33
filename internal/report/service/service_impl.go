package service

import (
	"context"
	"sort"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/salescope/internal/analytics"
	"github.com/smallbiznis/salescope/internal/clock"
	"github.com/smallbiznis/salescope/internal/config"
	obsmetrics "github.com/smallbiznis/salescope/internal/observability/metrics"
	"github.com/smallbiznis/salescope/internal/report/domain"
	warehousedomain "github.com/smallbiznis/salescope/internal/warehouse/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Repo     warehousedomain.Repository
	Log      *zap.Logger
	Clock    clock.Clock
	Segments *config.SegmentConfigHolder
	GenID    *snowflake.Node
	Metrics  *obsmetrics.Metrics
}

type Service struct {
	repo     warehousedomain.Repository
	log      *zap.Logger
	clock    clock.Clock
	segments *config.SegmentConfigHolder
	genID    *snowflake.Node
	metrics  *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		repo:     p.Repo,
		log:      p.Log.Named("report.service"),
		clock:    p.Clock,
		segments: p.Segments,
		genID:    p.GenID,
		metrics:  p.Metrics,
	}
}

func (s *Service) BuildProductReports(ctx context.Context) (domain.ProductReportSet, error) {
	started := time.Now()
	now := s.clock.Now()

	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return domain.ProductReportSet{}, err
	}

	// Every KPI in the product view depends on order dates (lifespan,
	// recency, monthly rates), so undated rows are excluded up front.
	dated := analytics.WithOrderDate(analytics.Flatten(snap))
	groups := analytics.GroupBy(dated, func(l analytics.EnrichedLine) int64 { return l.ProductKey })
	cfg := s.segments.Get()

	reports := make([]domain.ProductReport, 0, len(groups))
	for _, g := range groups {
		reports = append(reports, s.buildProductReport(g.Key, g.Items, cfg, now))
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].ProductKey < reports[j].ProductKey })

	set := domain.ProductReportSet{
		BuildInfo: domain.BuildInfo{
			BuildID:     s.genID.Generate().String(),
			GeneratedAt: now,
		},
		Reports: reports,
	}

	s.metrics.ReportBuilt(ctx, "product", time.Since(started))
	s.log.Info("product report built",
		zap.String("build_id", set.BuildID),
		zap.Int("products", len(reports)),
	)
	return set, nil
}

func (s *Service) buildProductReport(key int64, lines []analytics.EnrichedLine, cfg config.SegmentConfig, now time.Time) domain.ProductReport {
	totalSales := analytics.Sum(lines, func(l analytics.EnrichedLine) int64 { return l.SalesAmount })
	totalOrders := analytics.DistinctCount(lines, func(l analytics.EnrichedLine) string { return l.OrderNumber })

	first := analytics.MinTime(lines, orderDate)
	last := analytics.MaxTime(lines, orderDate)
	lifespan := monthsOrZero(first, last)

	report := domain.ProductReport{
		ProductKey:       key,
		Segment:          productSegment(totalSales, cfg.Product),
		LastSaleDate:     last,
		RecencyInMonths:  monthsOrZero(last, &now),
		TotalOrders:      totalOrders,
		TotalSales:       totalSales,
		TotalQuantity:    analytics.Sum(lines, func(l analytics.EnrichedLine) int64 { return int64(l.Quantity) }),
		TotalCustomers:   analytics.DistinctCount(lines, func(l analytics.EnrichedLine) int64 { return l.CustomerKey }),
		LifespanInMonths: lifespan,
		AvgSellingPrice: analytics.MeanRatio(lines,
			func(l analytics.EnrichedLine) int64 { return l.SalesAmount },
			func(l analytics.EnrichedLine) int64 { return int64(l.Quantity) },
		),
		AvgRevenuePerOrder: perUnit(totalSales, totalOrders),
		AvgMonthlyRevenue:  monthlyRate(totalSales, lifespan),
	}

	// A join miss leaves the dimension attributes at their zero values; the
	// fact-side aggregates above still stand.
	if p := firstProduct(lines); p != nil {
		report.ProductName = p.ProductName
		report.Category = p.Category
		report.Subcategory = p.Subcategory
		report.Cost = p.Cost
	}
	return report
}

func (s *Service) BuildCustomerReports(ctx context.Context) (domain.CustomerReportSet, error) {
	started := time.Now()
	now := s.clock.Now()

	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return domain.CustomerReportSet{}, err
	}

	dated := analytics.WithOrderDate(analytics.Flatten(snap))
	groups := analytics.GroupBy(dated, func(l analytics.EnrichedLine) int64 { return l.CustomerKey })
	cfg := s.segments.Get()

	reports := make([]domain.CustomerReport, 0, len(groups))
	for _, g := range groups {
		reports = append(reports, s.buildCustomerReport(g.Key, g.Items, cfg, now))
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].CustomerKey < reports[j].CustomerKey })

	set := domain.CustomerReportSet{
		BuildInfo: domain.BuildInfo{
			BuildID:     s.genID.Generate().String(),
			GeneratedAt: now,
		},
		Reports: reports,
	}

	s.metrics.ReportBuilt(ctx, "customer", time.Since(started))
	s.log.Info("customer report built",
		zap.String("build_id", set.BuildID),
		zap.Int("customers", len(reports)),
	)
	return set, nil
}

func (s *Service) buildCustomerReport(key int64, lines []analytics.EnrichedLine, cfg config.SegmentConfig, now time.Time) domain.CustomerReport {
	totalSales := analytics.Sum(lines, func(l analytics.EnrichedLine) int64 { return l.SalesAmount })
	totalOrders := analytics.DistinctCount(lines, func(l analytics.EnrichedLine) string { return l.OrderNumber })

	first := analytics.MinTime(lines, orderDate)
	last := analytics.MaxTime(lines, orderDate)
	lifespan := monthsOrZero(first, last)

	report := domain.CustomerReport{
		CustomerKey:      key,
		AgeGroup:         domain.AgeGroupUnknown,
		Segment:          customerSegment(lifespan, totalSales, cfg.Customer),
		LastOrderDate:    last,
		RecencyInMonths:  monthsOrZero(last, &now),
		TotalOrders:      totalOrders,
		TotalSales:       totalSales,
		TotalQuantity:    analytics.Sum(lines, func(l analytics.EnrichedLine) int64 { return int64(l.Quantity) }),
		TotalProducts:    analytics.DistinctCount(lines, func(l analytics.EnrichedLine) int64 { return l.ProductKey }),
		LifespanInMonths: lifespan,
		AvgOrderValue:    perUnit(totalSales, totalOrders),
		AvgMonthlySpend:  monthlyRate(totalSales, lifespan),
	}

	if c := firstCustomer(lines); c != nil {
		report.CustomerNumber = c.CustomerNumber
		report.CustomerName = c.FullName()
		years, known := age(c.Birthdate, now)
		report.Age = years
		report.AgeGroup = ageGroup(years, known, cfg.AgeBands)
	}
	return report
}

func orderDate(l analytics.EnrichedLine) *time.Time { return l.OrderDate }

func firstProduct(lines []analytics.EnrichedLine) *warehousedomain.Product {
	for _, l := range lines {
		if l.Product != nil {
			return l.Product
		}
	}
	return nil
}

func firstCustomer(lines []analytics.EnrichedLine) *warehousedomain.Customer {
	for _, l := range lines {
		if l.Customer != nil {
			return l.Customer
		}
	}
	return nil
}

func monthsOrZero(from, to *time.Time) int {
	if from == nil || to == nil {
		return 0
	}
	return analytics.MonthsBetween(*from, *to)
}

// perUnit guards the divide: no orders means no rate, not a panic.
func perUnit(total, count int64) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// monthlyRate treats a single active month as the total itself.
func monthlyRate(total int64, lifespanMonths int) float64 {
	if lifespanMonths == 0 {
		return float64(total)
	}
	return float64(total) / float64(lifespanMonths)
}

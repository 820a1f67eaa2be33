package domain

import "time"

// Product segments, ordered threshold rules, first match wins.
const (
	ProductSegmentHigh = "High-Performer"
	ProductSegmentMid  = "Mid-Range"
	ProductSegmentLow  = "Low-Performer"
)

// Customer segments.
const (
	CustomerSegmentVIP     = "VIP"
	CustomerSegmentRegular = "Regular"
	CustomerSegmentNew     = "New"
)

// AgeGroupUnknown is assigned when the customer has no birthdate on file.
const AgeGroupUnknown = "n/a"

// ProductReport is one row per product, rebuilt from the current snapshot on
// every request. It is a projection, never persisted.
type ProductReport struct {
	ProductKey  int64  `json:"product_key"`
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Cost        int64  `json:"cost"`

	Segment string `json:"segment"`

	LastSaleDate    *time.Time `json:"last_sale_date,omitempty"`
	RecencyInMonths int        `json:"recency_in_months"`

	TotalOrders      int64   `json:"total_orders"`
	TotalSales       int64   `json:"total_sales"`
	TotalQuantity    int64   `json:"total_quantity"`
	TotalCustomers   int64   `json:"total_customers"`
	LifespanInMonths int     `json:"lifespan_in_months"`
	AvgSellingPrice  float64 `json:"avg_selling_price"`

	AvgRevenuePerOrder float64 `json:"avg_revenue_per_order"`
	AvgMonthlyRevenue  float64 `json:"avg_monthly_revenue"`
}

// CustomerReport is the customer-grain analogue of ProductReport.
type CustomerReport struct {
	CustomerKey    int64  `json:"customer_key"`
	CustomerNumber string `json:"customer_number"`
	CustomerName   string `json:"customer_name"`

	Age      int    `json:"age"`
	AgeGroup string `json:"age_group"`
	Segment  string `json:"segment"`

	LastOrderDate   *time.Time `json:"last_order_date,omitempty"`
	RecencyInMonths int        `json:"recency_in_months"`

	TotalOrders      int64 `json:"total_orders"`
	TotalSales       int64 `json:"total_sales"`
	TotalQuantity    int64 `json:"total_quantity"`
	TotalProducts    int64 `json:"total_products"`
	LifespanInMonths int   `json:"lifespan_in_months"`

	AvgOrderValue   float64 `json:"avg_order_value"`
	AvgMonthlySpend float64 `json:"avg_monthly_spend"`
}

// BuildInfo identifies one on-demand rebuild of a report view.
type BuildInfo struct {
	BuildID     string    `json:"build_id"`
	GeneratedAt time.Time `json:"generated_at"`
}

type ProductReportSet struct {
	BuildInfo
	Reports []ProductReport `json:"reports"`
}

type CustomerReportSet struct {
	BuildInfo
	Reports []CustomerReport `json:"reports"`
}

package domain

// RankedProduct is one row of a product ranking. Ties share a rank.
type RankedProduct struct {
	Rank        int    `json:"rank"`
	ProductKey  int64  `json:"product_key"`
	ProductName string `json:"product_name"`
	TotalSales  int64  `json:"total_sales"`
}

type RankedCustomer struct {
	Rank         int    `json:"rank"`
	CustomerKey  int64  `json:"customer_key"`
	CustomerName string `json:"customer_name"`
	TotalSales   int64  `json:"total_sales"`
	TotalOrders  int64  `json:"total_orders"`
}

// YearlySalesPoint is sales activity aggregated to one calendar year.
type YearlySalesPoint struct {
	Year           int   `json:"year"`
	TotalSales     int64 `json:"total_sales"`
	TotalCustomers int64 `json:"total_customers"`
	TotalQuantity  int64 `json:"total_quantity"`
}

type MonthlySalesPoint struct {
	Year           int   `json:"year"`
	Month          int   `json:"month"`
	TotalSales     int64 `json:"total_sales"`
	TotalCustomers int64 `json:"total_customers"`
	TotalQuantity  int64 `json:"total_quantity"`
}

// RunningSalesPoint extends a yearly point with prefix aggregates: the
// running total of sales and the moving average of the average selling price.
type RunningSalesPoint struct {
	Year           int     `json:"year"`
	TotalSales     int64   `json:"total_sales"`
	RunningTotal   int64   `json:"running_total"`
	AvgPrice       float64 `json:"avg_price"`
	MovingAvgPrice float64 `json:"moving_avg_price"`
}

// ProductYearPerformance labels one product-year against the product's own
// multi-year average and against the prior year.
type ProductYearPerformance struct {
	Year        int    `json:"year"`
	ProductKey  int64  `json:"product_key"`
	ProductName string `json:"product_name"`

	CurrentSales int64   `json:"current_sales"`
	AvgSales     float64 `json:"avg_sales"`
	DiffFromAvg  float64 `json:"diff_from_avg"`
	AvgChange    string  `json:"avg_change"`

	PreviousSales int64  `json:"previous_sales"`
	DiffFromPrev  int64  `json:"diff_from_prev"`
	Change        string `json:"change"`
}

// CategoryShare is one category's contribution to overall sales.
type CategoryShare struct {
	Category     string  `json:"category"`
	TotalSales   int64   `json:"total_sales"`
	OverallSales int64   `json:"overall_sales"`
	Percentage   float64 `json:"percentage"`
}

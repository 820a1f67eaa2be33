package domain

import "time"

// SalesLine is one line item of an order. One order number spans many lines.
// sales_amount is expected to be price*quantity but the warehouse does not
// enforce it, so it is carried as-is.
type SalesLine struct {
	OrderNumber  string     `gorm:"column:order_number;index" json:"order_number"`
	ProductKey   int64      `gorm:"column:product_key;index" json:"product_key"`
	CustomerKey  int64      `gorm:"column:customer_key;index" json:"customer_key"`
	OrderDate    *time.Time `gorm:"column:order_date" json:"order_date,omitempty"`
	ShippingDate *time.Time `gorm:"column:shipping_date" json:"shipping_date,omitempty"`
	DueDate      *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	SalesAmount  int64      `gorm:"column:sales_amount" json:"sales_amount"`
	Quantity     int32      `gorm:"column:quantity" json:"quantity"`
	Price        int64      `gorm:"column:price" json:"price"`
}

func (SalesLine) TableName() string { return "fact_sales" }

// Product is dimension data referenced, never owned, by SalesLine.
type Product struct {
	ProductKey    int64      `gorm:"column:product_key;primaryKey" json:"product_key"`
	ProductID     int64      `gorm:"column:product_id" json:"product_id"`
	ProductNumber string     `gorm:"column:product_number" json:"product_number"`
	ProductName   string     `gorm:"column:product_name" json:"product_name"`
	CategoryID    string     `gorm:"column:category_id" json:"category_id"`
	Category      string     `gorm:"column:category" json:"category"`
	Subcategory   string     `gorm:"column:subcategory" json:"subcategory"`
	Maintenance   string     `gorm:"column:maintenance" json:"maintenance"`
	Cost          int64      `gorm:"column:cost" json:"cost"`
	ProductLine   string     `gorm:"column:product_line" json:"product_line"`
	StartDate     *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
}

func (Product) TableName() string { return "dim_products" }

type Customer struct {
	CustomerKey    int64      `gorm:"column:customer_key;primaryKey" json:"customer_key"`
	CustomerID     int64      `gorm:"column:customer_id" json:"customer_id"`
	CustomerNumber string     `gorm:"column:customer_number" json:"customer_number"`
	FirstName      string     `gorm:"column:first_name" json:"first_name"`
	LastName       string     `gorm:"column:last_name" json:"last_name"`
	Country        string     `gorm:"column:country" json:"country"`
	MaritalStatus  string     `gorm:"column:marital_status" json:"marital_status"`
	Gender         string     `gorm:"column:gender" json:"gender"`
	Birthdate      *time.Time `gorm:"column:birthdate" json:"birthdate,omitempty"`
	CreateDate     *time.Time `gorm:"column:create_date" json:"create_date,omitempty"`
}

func (Customer) TableName() string { return "dim_customers" }

func (c Customer) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

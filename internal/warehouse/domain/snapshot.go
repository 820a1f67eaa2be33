package domain

// Snapshot is an immutable in-memory materialization of the fact and
// dimension tables. Report computations read it; nothing mutates it.
type Snapshot struct {
	Lines     []SalesLine
	Products  []Product
	Customers []Customer

	productByKey  map[int64]*Product
	customerByKey map[int64]*Customer
}

// NewSnapshot indexes both dimensions by key. Lookup misses are expected:
// a fact row with no dimension match still aggregates (left-join semantics).
func NewSnapshot(lines []SalesLine, products []Product, customers []Customer) *Snapshot {
	snap := &Snapshot{
		Lines:         lines,
		Products:      products,
		Customers:     customers,
		productByKey:  make(map[int64]*Product, len(products)),
		customerByKey: make(map[int64]*Customer, len(customers)),
	}
	for i := range products {
		snap.productByKey[products[i].ProductKey] = &products[i]
	}
	for i := range customers {
		snap.customerByKey[customers[i].CustomerKey] = &customers[i]
	}
	return snap
}

func (s *Snapshot) ProductByKey(key int64) *Product {
	return s.productByKey[key]
}

func (s *Snapshot) CustomerByKey(key int64) *Customer {
	return s.customerByKey[key]
}

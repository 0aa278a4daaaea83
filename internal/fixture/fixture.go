// Package fixture generates synthetic customer and order records.
// All randomness comes from an injected source so output is reproducible
// under a fixed seed.
package fixture

// Customer is a generated customer record.
type Customer struct {
	ID    int    `json:"customer_id"`
	Name  string `json:"customer_name"`
	Email string `json:"email"`
}

// Order is a generated order placed by a customer.
type Order struct {
	ID          int    `json:"order_id"`
	CustomerID  int    `json:"customer_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	OrderDate   string `json:"order_date"`
	Status      string `json:"status"`
}

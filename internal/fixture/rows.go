package fixture

import "strconv"

// Output file names.
const (
	CustomersFile = "customers.csv"
	OrdersFile    = "orders.csv"
)

// CustomerHeader is the header row of customers.csv.
var CustomerHeader = []string{"customer_id", "customer_name", "email"}

// OrderHeader is the header row of orders.csv.
var OrderHeader = []string{"order_id", "customer_id", "product_name", "quantity", "order_date", "status"}

// CustomerRows returns the header followed by one row per customer.
func CustomerRows(customers []Customer) [][]string {
	rows := make([][]string, 0, len(customers)+1)
	rows = append(rows, CustomerHeader)
	for _, c := range customers {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Name,
			c.Email,
		})
	}
	return rows
}

// OrderRows returns the header followed by one row per order.
func OrderRows(orders []Order) [][]string {
	rows := make([][]string, 0, len(orders)+1)
	rows = append(rows, OrderHeader)
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.Itoa(o.ID),
			strconv.Itoa(o.CustomerID),
			o.ProductName,
			strconv.Itoa(o.Quantity),
			o.OrderDate,
			o.Status,
		})
	}
	return rows
}

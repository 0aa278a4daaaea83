package fixture

import (
	"slices"
	"testing"
)

func TestCustomerRows(t *testing.T) {
	rows := CustomerRows([]Customer{
		{ID: 1, Name: "aaaaaaaaaa", Email: "bbbbb@example.com"},
		{ID: 2, Name: "cccccccccc", Email: "ddddd@example.com"},
	})

	want := [][]string{
		{"customer_id", "customer_name", "email"},
		{"1", "aaaaaaaaaa", "bbbbb@example.com"},
		{"2", "cccccccccc", "ddddd@example.com"},
	}
	if !slices.EqualFunc(rows, want, slices.Equal[[]string]) {
		t.Errorf("CustomerRows = %v, want %v", rows, want)
	}
}

func TestOrderRows(t *testing.T) {
	rows := OrderRows([]Order{
		{ID: 1, CustomerID: 3, ProductName: "Product B", Quantity: 7, OrderDate: "2024-01-31", Status: "Shipped"},
	})

	want := [][]string{
		{"order_id", "customer_id", "product_name", "quantity", "order_date", "status"},
		{"1", "3", "Product B", "7", "2024-01-31", "Shipped"},
	}
	if !slices.EqualFunc(rows, want, slices.Equal[[]string]) {
		t.Errorf("OrderRows = %v, want %v", rows, want)
	}
}

func TestRowsHeaderOnly(t *testing.T) {
	if got := CustomerRows(nil); len(got) != 1 {
		t.Errorf("CustomerRows(nil) len = %d, want 1", len(got))
	}
	if got := OrderRows(nil); len(got) != 1 {
		t.Errorf("OrderRows(nil) len = %d, want 1", len(got))
	}
}

func TestProductsIsCopy(t *testing.T) {
	p := Products()
	p[0] = "changed"
	if products[0] == "changed" {
		t.Error("Products should return a copy")
	}
	if len(Products()) != 4 {
		t.Errorf("catalog size = %d, want 4", len(Products()))
	}
}

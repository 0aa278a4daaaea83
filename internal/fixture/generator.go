package fixture

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

var (
	// ErrNoStatuses is returned when the status vocabulary is empty.
	ErrNoStatuses = errors.New("status vocabulary is empty")

	// ErrOrderRange is returned when the per-customer order bounds are invalid.
	ErrOrderRange = errors.New("invalid order count range")

	// ErrTooManyCustomers is returned when a customer count exceeds MaxCustomers.
	ErrTooManyCustomers = errors.New("too many customers")
)

// Upper bounds on a single run. Everything is held in memory before it is
// written, so larger requests are refused instead of exhausting it.
const (
	MaxCustomers         = 10_000_000
	MaxOrdersPerCustomer = 1_000_000
)

// CheckCustomers reports whether n customers can be generated.
func CheckCustomers(n int) error {
	if n > MaxCustomers {
		return fmt.Errorf("%w: %d, limit %d", ErrTooManyCustomers, n, MaxCustomers)
	}
	return nil
}

// StatusMode selects how order statuses are assigned.
type StatusMode int

const (
	// StatusRandom draws each status independently from the vocabulary.
	StatusRandom StatusMode = iota
	// StatusCycle assigns vocabulary[k mod len] to the k-th order of a customer.
	StatusCycle
)

// OrderParams controls order generation.
type OrderParams struct {
	MinOrders int
	MaxOrders int
	Statuses  []string
	Mode      StatusMode
}

// Generator produces customers and orders from a single random source.
type Generator struct {
	rand *rand.Rand
	now  func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces the wall clock used for order dates.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a generator drawing from r.
func New(r *rand.Rand, opts ...Option) *Generator {
	g := &Generator{rand: r, now: time.Now}
	for _, o := range opts {
		o(g)
	}
	return g
}

// NewSeeded creates a generator backed by a PCG source with the given seed.
func NewSeeded(seed uint64, opts ...Option) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), opts...)
}

// Customers generates n customers with ids 1..n.
// Counts above MaxCustomers are not refused here; see CheckCustomers.
func (g *Generator) Customers(n int) []Customer {
	if n <= 0 {
		return []Customer{}
	}

	customers := make([]Customer, 0, min(n, MaxCustomers))
	for i := range n {
		customers = append(customers, Customer{
			ID:    i + 1,
			Name:  g.randomString(nameLen),
			Email: g.randomString(emailLocalLen) + "@" + emailDomain,
		})
	}
	return customers
}

// Orders generates between p.MinOrders and p.MaxOrders orders for every
// customer, in customer order. Order ids run from 1 across all customers.
func (g *Generator) Orders(customers []Customer, p OrderParams) ([]Order, error) {
	if len(p.Statuses) == 0 {
		return nil, fmt.Errorf("generate orders: %w", ErrNoStatuses)
	}
	if p.MinOrders < 0 || p.MaxOrders < p.MinOrders || p.MaxOrders > MaxOrdersPerCustomer {
		return nil, fmt.Errorf("generate orders: %w: min %d, max %d, limit %d",
			ErrOrderRange, p.MinOrders, p.MaxOrders, MaxOrdersPerCustomer)
	}

	today := g.now()
	var orders []Order
	id := 1

	for _, c := range customers {
		n := p.MinOrders + int(g.rand.Uint64N(uint64(p.MaxOrders-p.MinOrders)+1))
		for k := range n {
			orders = append(orders, Order{
				ID:          id,
				CustomerID:  c.ID,
				ProductName: g.pick(products),
				Quantity:    minQuantity + g.rand.IntN(maxQuantity-minQuantity+1),
				OrderDate:   today.AddDate(0, 0, -g.rand.IntN(maxAgeDays+1)).Format(dateLayout),
				Status:      g.status(p, k),
			})
			id++
		}
	}

	return orders, nil
}

// status picks the status for the k-th order within one customer's batch.
func (g *Generator) status(p OrderParams, k int) string {
	if p.Mode == StatusCycle {
		return p.Statuses[k%len(p.Statuses)]
	}
	return g.pick(p.Statuses)
}

func (g *Generator) randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[g.rand.IntN(len(alphanumeric))]
	}
	return string(b)
}

// pick returns a random element from a string slice.
func (g *Generator) pick(s []string) string {
	return s[g.rand.IntN(len(s))]
}

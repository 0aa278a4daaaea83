package fixture

const (
	// emailDomain is appended to every generated email local part.
	emailDomain = "example.com"

	alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	nameLen       = 10
	emailLocalLen = 5

	minQuantity = 1
	maxQuantity = 10

	// orders are dated within the past year, today included
	maxAgeDays = 365

	dateLayout = "2006-01-02"
)

var products = []string{
	"Product A",
	"Product B",
	"Product C",
	"Product D",
}

// DefaultStatuses is the status vocabulary used when none is supplied.
var DefaultStatuses = []string{"Pending", "Processing", "Shipped", "Delivered"}

// Products returns a copy of the product catalog.
func Products() []string {
	return append([]string(nil), products...)
}

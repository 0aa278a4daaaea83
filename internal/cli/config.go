package cli

import (
	"strconv"
	"strings"

	"github.com/zarlcorp/zseed/internal/fixture"
)

// Config holds the generation parameters taken from positional arguments.
type Config struct {
	Customers    int
	MinOrders    int
	MaxOrders    int
	Statuses     []string
	RandomStatus bool
}

// Options holds the --flag switches that may appear anywhere in the arguments.
type Options struct {
	JSON        bool
	Interactive bool
	Version     bool
	Seed        uint64
	HasSeed     bool
}

// DefaultConfig returns the configuration used when no arguments are given.
func DefaultConfig() Config {
	return Config{
		Customers:    10,
		MinOrders:    5,
		MaxOrders:    10,
		Statuses:     append([]string(nil), fixture.DefaultStatuses...),
		RandomStatus: true,
	}
}

// OrderParams converts the config into order generation parameters.
func (c Config) OrderParams() fixture.OrderParams {
	mode := fixture.StatusCycle
	if c.RandomStatus {
		mode = fixture.StatusRandom
	}
	return fixture.OrderParams{
		MinOrders: c.MinOrders,
		MaxOrders: c.MaxOrders,
		Statuses:  c.Statuses,
		Mode:      mode,
	}
}

// Argument slots, in positional order.
const (
	slotCustomers = iota
	slotMinOrders
	slotMaxOrders
	slotStatuses
	slotRandomStatus
)

// slotFlags names each slot for -name=value / --name=value arguments.
var slotFlags = map[string]int{
	"customers":    slotCustomers,
	"minorders":    slotMinOrders,
	"maxorders":    slotMaxOrders,
	"statuses":     slotStatuses,
	"randomstatus": slotRandomStatus,
}

// namedValue is a slot set by name rather than by position.
type namedValue struct {
	slot  int
	value string
}

// ParseArgs splits recognized flags from positional values and applies the
// positional values left to right:
//
//	customers min-orders max-orders statuses random-status
//
// Each slot can also be set by name (-customers=N, --minOrders=N,
// --maxOrders=N, --statuses=A,B, --randomStatus=false). Named values are
// applied after positional ones and win. A missing or unparsable value
// keeps the value the slot already had.
func ParseArgs(args []string) (Config, Options) {
	opts, named, positional := splitFlags(args)

	cfg := DefaultConfig()
	for i, a := range positional {
		cfg = applySlot(cfg, i, a)
	}
	for _, nv := range named {
		cfg = applySlot(cfg, nv.slot, nv.value)
	}
	return cfg, opts
}

func applySlot(cfg Config, slot int, a string) Config {
	switch slot {
	case slotCustomers:
		cfg.Customers = parseCount(a, cfg.Customers)
	case slotMinOrders:
		cfg.MinOrders = parseCount(a, cfg.MinOrders)
	case slotMaxOrders:
		cfg.MaxOrders = parseCount(a, cfg.MaxOrders)
	case slotStatuses:
		if a != "" {
			cfg.Statuses = ParseStatuses(a)
		}
	case slotRandomStatus:
		cfg.RandomStatus = parseFlag(a, cfg.RandomStatus)
	}
	return cfg
}

// ParseStatuses splits a comma-separated vocabulary exactly, keeping empty
// entries in place so cycle positions match the input. It returns nil when
// every entry is empty.
func ParseStatuses(s string) []string {
	parts := strings.Split(s, ",")
	for _, p := range parts {
		if p != "" {
			return parts
		}
	}
	return nil
}

// parseCount parses an unsigned integer, returning def when s is not one.
func parseCount(s string, def int) int {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, strconv.IntSize-1)
	if err != nil {
		return def
	}
	return int(n)
}

// parseFlag accepts only "true" or "false", in any case.
func parseFlag(s string, def bool) bool {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, "true"):
		return true
	case strings.EqualFold(s, "false"):
		return false
	}
	return def
}

func splitFlags(args []string) (Options, []namedValue, []string) {
	var opts Options
	var named []namedValue
	var positional []string

	for _, a := range args {
		switch {
		case strings.EqualFold(a, "--json"):
			opts.JSON = true
		case strings.EqualFold(a, "--interactive"), a == "-i":
			opts.Interactive = true
		case strings.EqualFold(a, "--version"):
			opts.Version = true
		case hasPrefixFold(a, "--seed="):
			if n, err := strconv.ParseUint(a[len("--seed="):], 10, 64); err == nil {
				opts.Seed = n
				opts.HasSeed = true
			}
		default:
			if nv, ok := parseNamed(a); ok {
				named = append(named, nv)
				continue
			}
			positional = append(positional, a)
		}
	}

	return opts, named, positional
}

// parseNamed recognizes -name=value and --name=value for the slot names.
func parseNamed(a string) (namedValue, bool) {
	if !strings.HasPrefix(a, "-") {
		return namedValue{}, false
	}
	name, value, ok := strings.Cut(strings.TrimPrefix(strings.TrimPrefix(a, "-"), "-"), "=")
	if !ok {
		return namedValue{}, false
	}
	slot, ok := slotFlags[strings.ToLower(name)]
	if !ok {
		return namedValue{}, false
	}
	return namedValue{slot: slot, value: value}, true
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

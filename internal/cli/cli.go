// Package cli implements zseed's one-shot generation command.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zseed/internal/csvfile"
	"github.com/zarlcorp/zseed/internal/fixture"
	"golang.org/x/term"
)

// Confirmation is printed after both files are written.
const Confirmation = "customer master data and order data saved as CSV files"

// Summary describes a completed generation run.
type Summary struct {
	RunID     string   `json:"run_id"`
	Customers int      `json:"customers"`
	Orders    int      `json:"orders"`
	Files     []string `json:"files"`
}

// NewGenerator returns a generator seeded from opts, or from fresh entropy
// when no seed was given.
func NewGenerator(opts Options) *fixture.Generator {
	if opts.HasSeed {
		return fixture.NewSeeded(opts.Seed)
	}
	return fixture.New(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// Generate produces customers and orders for cfg and writes customers.csv
// then orders.csv to fsys. Nothing is cleaned up on failure.
func Generate(fsys zfilesystem.ReadWriteFileFS, g *fixture.Generator, cfg Config) (Summary, error) {
	if err := fixture.CheckCustomers(cfg.Customers); err != nil {
		return Summary{}, err
	}
	customers := g.Customers(cfg.Customers)

	orders, err := g.Orders(customers, cfg.OrderParams())
	if err != nil {
		return Summary{}, err
	}

	if err := writeRows(fsys, fixture.CustomersFile, fixture.CustomerRows(customers)); err != nil {
		return Summary{}, err
	}
	if err := writeRows(fsys, fixture.OrdersFile, fixture.OrderRows(orders)); err != nil {
		return Summary{}, err
	}

	return Summary{
		RunID:     uuid.NewString(),
		Customers: len(customers),
		Orders:    len(orders),
		Files:     []string{fixture.CustomersFile, fixture.OrdersFile},
	}, nil
}

func writeRows(fsys zfilesystem.ReadWriteFileFS, name string, rows [][]string) error {
	if err := csvfile.WriteFile(fsys, name, rows); err != nil {
		return err
	}
	slog.Debug("wrote csv", "file", name, "rows", len(rows))
	return nil
}

// Run generates both files into fsys and reports the result on w.
func Run(w io.Writer, fsys zfilesystem.ReadWriteFileFS, cfg Config, opts Options) error {
	sum, err := Generate(fsys, NewGenerator(opts), cfg)
	if err != nil {
		return err
	}

	if opts.JSON {
		return printJSON(w, sum)
	}

	msg := Confirmation
	if isTerminal(w) {
		msg = zstyle.StatusOK.Render(msg)
	}
	_, err = fmt.Fprintln(w, msg)
	return err
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && IsTerminal(f)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

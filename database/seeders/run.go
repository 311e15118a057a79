// Package seeders holds the demo data and the runner behind `foodshop seed`.
//
//	err := seeders.RunAll(ctx, os.Stdout, seeders.Entry{Name: "products", Seeder: productService})
package seeders

import (
	"context"
	"fmt"
	"io"

	"github.com/shashiranjanraj/foodshop/app/models"
)

// Seeder populates one collection when it is empty.
type Seeder interface {
	Seed(ctx context.Context) (models.SeedResult, error)
}

// Entry names a Seeder for progress output.
type Entry struct {
	Name   string
	Seeder Seeder
}

// RunAll executes every entry in order and stops on the first error.
func RunAll(ctx context.Context, out io.Writer, entries ...Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(out, "  (no seeders registered)")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(out, "  • Running seeder: %s … ", e.Name)
		res, err := e.Seeder.Seed(ctx)
		if err != nil {
			fmt.Fprintln(out, "FAILED")
			return fmt.Errorf("seeder %q: %w", e.Name, err)
		}
		if res.Seeded {
			fmt.Fprintf(out, "done (%d inserted)\n", res.Count)
		} else {
			fmt.Fprintf(out, "skipped (%d already present)\n", res.Count)
		}
	}
	return nil
}

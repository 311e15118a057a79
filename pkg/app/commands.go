package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"text/tabwriter"

	"github.com/shashiranjanraj/foodshop/config"
	"github.com/shashiranjanraj/foodshop/database/seeders"
	"github.com/shashiranjanraj/foodshop/internal/server"
)

// Serve boots the application and serves HTTP until ctx is cancelled.
func Serve(ctx context.Context) error {
	a, err := Boot(ctx)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	return server.Start(ctx, a.Kernel().Handler(), net.JoinHostPort("", config.Port()))
}

// Seed inserts the demo catalog into an empty product collection.
func Seed(ctx context.Context, out io.Writer) error {
	a, err := Boot(ctx)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	return seeders.RunAll(ctx, out, seeders.Entry{Name: "products", Seeder: a.Products})
}

// RouteList prints every mounted route. It does not touch the database.
func RouteList(out io.Writer) error {
	var a *Application
	infos := a.Kernel().Routes()

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPATH\tNAME")
	fmt.Fprintln(w, "------\t----\t----")
	for _, ri := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
	}
	return w.Flush()
}

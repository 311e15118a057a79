package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/foodshop/pkg/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "foodshop",
	Short:         "Food e-commerce backend",
	Long:          "Catalog browsing and order placement over HTTP, backed by MongoDB. Runs the server when no command is given.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Serve(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run", "start"},
	Short:   "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Serve(cmd.Context())
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo catalog if the product collection is empty",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Seed(cmd.Context(), cmd.OutOrStdout())
	},
}

var routeListCmd = &cobra.Command{
	Use:     "route:list",
	Aliases: []string{"routes"},
	Short:   "List all registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RouteList(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(routeListCmd)
}

package main

import (
	"fmt"
	"strings"

	"github.com/sandevgo/suppd/internal/service/agent"
	"github.com/spf13/cobra"
)

var (
	askCustomerID   string
	askCustomerName string
	askNoSave       bool
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Send a one-shot query through the support pipeline",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := newApp(ctx)

		result := app.Agent.HandleQuery(ctx, agent.QueryRequest{
			CustomerID:      askCustomerID,
			Query:           strings.Join(args, " "),
			CustomerName:    askCustomerName,
			SaveInteraction: !askNoSave,
		})

		fmt.Println(result.Response)
		if result.Error != "" {
			return fmt.Errorf("query degraded: %s", result.Error)
		}

		fmt.Printf("\n(context used: %v, items: %d)\n", result.ContextUsed, result.ContextItemsCount)
		return nil
	},
}

func init() {
	askCmd.Flags().StringVar(&askCustomerID, "customer", "cli_customer", "customer id to query as")
	askCmd.Flags().StringVar(&askCustomerName, "name", "", "customer display name")
	askCmd.Flags().BoolVar(&askNoSave, "no-save", false, "do not persist the exchange to memory")
	rootCmd.AddCommand(askCmd)
}

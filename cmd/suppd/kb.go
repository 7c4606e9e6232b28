package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Manage the knowledge base partition of the memory store",
}

var kbLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the static knowledge base into the memory store",
	Long:  `Adds every flattened knowledge record to the reserved partition. Loading on top of existing items duplicates them; use reload to start clean.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := newApp(ctx)
		res := app.KB.Load(ctx)

		fmt.Printf("loaded %d/%d items\n", res.LoadedCount, res.TotalItems)
		for _, e := range res.Errors {
			fmt.Printf("  failed %s: %s\n", e.Kind, e.Error)
		}
		if !res.Success || len(res.Errors) > 0 {
			return fmt.Errorf("knowledge base load finished with %d errors", len(res.Errors))
		}
		return nil
	},
}

var kbReloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Clear and reload the knowledge base",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := newApp(ctx)
		res := app.KB.Reload(ctx)
		if res.Error != "" {
			return fmt.Errorf("reload failed: %s", res.Error)
		}

		fmt.Printf("reloaded %d/%d items\n", res.LoadedCount, res.TotalItems)
		if len(res.Errors) > 0 {
			return fmt.Errorf("reload finished with %d errors", len(res.Errors))
		}
		return nil
	},
}

var kbClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all knowledge base items",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := newApp(ctx)
		res := app.KB.Clear(ctx)
		if !res.Success {
			return fmt.Errorf("clear failed: %s", res.Error)
		}

		fmt.Println("knowledge base cleared")
		return nil
	},
}

var kbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how many items the knowledge base partition holds",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := newApp(ctx)
		items, err := app.KB.Items(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("knowledge base holds %d items\n", len(items))
		return nil
	},
}

func init() {
	kbCmd.AddCommand(kbLoadCmd, kbReloadCmd, kbClearCmd, kbStatusCmd)
	rootCmd.AddCommand(kbCmd)
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smj9504/sketchplan/internal/adapters/driven/storage/sqlite"
	"github.com/smj9504/sketchplan/internal/core/domain"
	"github.com/smj9504/sketchplan/internal/core/ports/driven"
)

// pricebookDB is the --db flag shared by the pricebook subcommands.
var pricebookDB string

var pricebookCmd = &cobra.Command{
	Use:   "pricebook",
	Short: "Manage unit prices",
	Long: `Lists and overrides the unit prices used by estimates. Prices live in
a SQLite database; items without an override use the built-in defaults.`,
}

var pricebookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List effective unit prices",
	RunE:  runPricebookList,
}

var pricebookSetCmd = &cobra.Command{
	Use:   "set [item] [price]",
	Short: "Override a unit price",
	Args:  cobra.ExactArgs(2),
	RunE:  runPricebookSet,
}

func init() {
	pricebookCmd.PersistentFlags().StringVar(&pricebookDB, "db", "", "price book database file (default ~/.sketchplan/data/pricebook.db)")
	pricebookCmd.AddCommand(pricebookListCmd)
	pricebookCmd.AddCommand(pricebookSetCmd)
	rootCmd.AddCommand(pricebookCmd)
}

// openPriceBook resolves the price book to operate on: the --db file when
// given, the injected default otherwise. The caller runs the returned
// cleanup when done.
func openPriceBook() (driven.PriceBook, func(), error) {
	if pricebookDB != "" {
		book, err := sqlite.OpenPriceBook(pricebookDB)
		if err != nil {
			return nil, nil, fmt.Errorf("opening price book: %w", err)
		}
		return book, func() { book.Close() }, nil
	}
	if priceBook == nil {
		return nil, nil, errors.New("price book not configured")
	}
	return priceBook, func() {}, nil
}

func runPricebookList(cmd *cobra.Command, _ []string) error {
	book, cleanup, err := openPriceBook()
	if err != nil {
		return err
	}
	defer cleanup()

	prices, err := book.All(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list prices: %w", err)
	}

	cmd.Println(styleTitle.Render("Unit prices:"))
	cmd.Println()
	for _, item := range domain.AllPriceItems() {
		cmd.Printf("  %-16s %8s   %s\n", item, money(prices[item]), styleMuted.Render(item.Description()))
	}
	return nil
}

func runPricebookSet(cmd *cobra.Command, args []string) error {
	book, cleanup, err := openPriceBook()
	if err != nil {
		return err
	}
	defer cleanup()

	item := domain.PriceItem(args[0])
	if !item.IsValid() {
		names := make([]string, 0, len(domain.AllPriceItems()))
		for _, known := range domain.AllPriceItems() {
			names = append(names, known.String())
		}
		return fmt.Errorf("unknown item %q (use one of: %s)", args[0], strings.Join(names, ", "))
	}

	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", args[1], err)
	}

	if err := book.Set(context.Background(), item, price); err != nil {
		return fmt.Errorf("failed to set price: %w", err)
	}

	cmd.Printf("%s set to %s\n", item, money(price))
	return nil
}

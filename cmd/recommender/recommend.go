package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/upbringing/recommender/internal/domain"
	"github.com/upbringing/recommender/internal/infrastructure/cache"
	"github.com/upbringing/recommender/internal/infrastructure/loader"
	"github.com/upbringing/recommender/internal/usecase"
)

// defaultCatalogPath is used when no catalog source flag is given; it can be
// overridden with the PRODUCTS_CSV_PATH environment variable.
const defaultCatalogPath = "products.csv"

type recommendFlags struct {
	application string
	power       string
	description string
	count       int
	jsonOutput  bool
	strategy    string
	dataCSV     string
	dataJSON    string
	dataStdin   bool
}

func newRecommendCmd() *cobra.Command {
	flags := &recommendFlags{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend products for a query against a catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.application, "application", "", "application type (e.g. Packaging, Woodworking)")
	cmd.Flags().StringVar(&flags.power, "power", "", "power usage (High, Medium, or Low)")
	cmd.Flags().StringVar(&flags.description, "description", "", "product description requirements")
	cmd.Flags().IntVar(&flags.count, "count", 5, "number of recommendations")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "output results as JSON")
	cmd.Flags().StringVar(&flags.strategy, "strategy", "hybrid", "recommendation strategy (hybrid or filter)")
	cmd.Flags().StringVar(&flags.dataCSV, "data-csv", "", "path to catalog CSV file")
	cmd.Flags().StringVar(&flags.dataJSON, "data-json", "", "catalog as inline JSON array")
	cmd.Flags().BoolVar(&flags.dataStdin, "data-stdin", false, "read catalog JSON from stdin")

	return cmd
}

func runRecommend(ctx context.Context, flags *recommendFlags) error {
	records, err := catalogSource(flags).Records(ctx)
	if err != nil {
		return err
	}

	catalogCache := cache.NewCatalogCache(usecase.BuildSnapshot)
	service, err := usecase.NewRecommenderService(catalogCache, usecase.ServiceConfig{
		DefaultCount: flags.count,
	})
	if err != nil {
		return err
	}
	if err := service.Load(ctx, records); err != nil {
		return err
	}

	// Interactive fallback: prompt for any query field not supplied via flags
	if flags.application == "" || flags.power == "" || flags.description == "" {
		if err := promptQueryFields(flags); err != nil {
			return err
		}
	}

	results, err := service.Recommend(ctx, flags.strategy, domain.Query{
		Application: flags.application,
		PowerTier:   flags.power,
		Description: flags.description,
		Count:       flags.count,
	})
	if err != nil {
		return err
	}

	if flags.jsonOutput {
		return printJSON(results)
	}
	printRanked(results)
	return nil
}

// catalogSource picks the record source from flags: stdin, inline JSON, an
// explicit CSV path, or the default CSV file.
func catalogSource(flags *recommendFlags) domain.RecordSource {
	switch {
	case flags.dataStdin:
		return loader.NewJSONStreamSource(os.Stdin)
	case flags.dataJSON != "":
		return loader.NewJSONStringSource(flags.dataJSON)
	case flags.dataCSV != "":
		return loader.NewCSVSource(flags.dataCSV)
	default:
		path := os.Getenv("PRODUCTS_CSV_PATH")
		if path == "" {
			path = defaultCatalogPath
		}
		return loader.NewCSVSource(path)
	}
}

func promptQueryFields(flags *recommendFlags) error {
	fmt.Println("Welcome to the Product Recommendation Model Tester.")
	fmt.Println("This model uses Hybrid Scoring to ensure high match rates.")

	reader := bufio.NewReader(os.Stdin)
	var err error
	if flags.application == "" {
		flags.application, err = prompt(reader, "1. Enter Application (e.g., Packaging, Woodworking): ")
		if err != nil {
			return err
		}
	}
	if flags.power == "" {
		flags.power, err = prompt(reader, "2. Enter Desired Power Usage (High, Medium, or Low): ")
		if err != nil {
			return err
		}
	}
	if flags.description == "" {
		flags.description, err = prompt(reader, "3. Enter User Description (e.g., quiet, high flow): ")
		if err != nil {
			return err
		}
	}
	return nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func printJSON(results []domain.Recommendation) error {
	out, err := json.MarshalIndent(map[string]any{
		"success": true,
		"data":    results,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func printRanked(results []domain.Recommendation) {
	fmt.Println("\n--- Recommendation Results (Hybrid Scoring) ---")
	for rank, rec := range results {
		fmt.Printf("\nRANK %d: **%s** (Brand: %s)\n", rank+1, rec.Product, rec.Brand)
		fmt.Printf("  > Match Score: %.2f%%\n", rec.Score)
		fmt.Printf("  > Product Features: Application=%s, Power=%s\n", rec.Application, rec.PowerUsage)
	}
	fmt.Println("-------------------------------------------")
}

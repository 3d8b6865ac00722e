package cmd

import (
	"context"
	"fmt"
	"os"

	"catalog-engine/core/cache"
	"catalog-engine/core/config"
	"catalog-engine/core/logger"
	"catalog-engine/core/storage"
	"catalog-engine/feature/catalog"
	"catalog-engine/feature/catalog/models"
	"catalog-engine/feature/catalog/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var catalogGender string
var catalogStrict bool

// catalogCmd represents the one-shot catalog fetch command
var catalogCmd = &cobra.Command{
	Use:   "catalog [category]",
	Short: "Fetch the unified catalog once and print a summary",
	Long: `Runs the full unification pipeline against the configured sources
and prints the merged catalog summary to the console. With a category
argument, only that category is fetched.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		category := ""
		if len(args) > 0 {
			category = args[0]
		}
		runCatalogFetch(cmd.Context(), category)
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogGender, "gender", "U", "Gender filter (M, F, U)")
	catalogCmd.Flags().BoolVar(&catalogStrict, "strict", false, "Drop items whose category could not be confidently classified")
	RootCmd.AddCommand(catalogCmd)
}

func runCatalogFetch(ctx context.Context, category string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	// Storage is optional here; without it the manifest adapter just
	// loses its snapshot fallback.
	var store storage.Client
	if s, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("Storage client unavailable, snapshot fallback disabled", zap.Error(err))
	} else {
		store = s
	}

	sources := []source.Source{
		source.NewFigureDataSource(cfg.Sources.FigureData, store, cfg.Storage.Bucket, logg),
		source.NewWidgetsSource(cfg.Sources.Widgets, logg),
	}
	if cfg.Sources.Synthetic.Enabled {
		sources = append(sources, source.NewSyntheticSource(cfg.Sources.Synthetic))
	}

	// One-shot run, the cache only lives for this process.
	responseCache := cache.New(cache.NewMemoryStore(), nil, logg)
	svc := catalog.NewService(sources, responseCache, nil, logg)

	resp, err := svc.Catalog(ctx, models.Request{
		Category: category,
		Gender:   models.Gender(catalogGender),
		Strict:   catalogStrict,
	})
	if err != nil {
		logg.Fatal("Catalog fetch failed", zap.Error(err))
	}

	// Pretty Console Output
	fmt.Println("\n--- Unified Catalog ---")
	if category != "" {
		fmt.Printf("Category:       %s\n", category)
	}
	fmt.Printf("Gender:         %s\n", catalogGender)
	fmt.Printf("Total Items:    %d\n", resp.Metadata.TotalItems)
	fmt.Printf("Categories:     %d\n", len(resp.Metadata.CategoriesPresent))
	fmt.Println("-----------------------")

	fmt.Println("Source Breakdown:")
	for family, status := range resp.Metadata.SourceBreakdown {
		statusColor := "\033[32m" // Green
		switch status {
		case models.StatusUnavailable, models.StatusMalformed:
			statusColor = "\033[31m" // Red
		case models.StatusPartial:
			statusColor = "\033[33m" // Yellow
		}
		resetColor := "\033[0m"
		fmt.Printf("- %-14s %s%s%s\n", family, statusColor, status, resetColor)
	}
	fmt.Println("-----------------------")
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikolayk812/productcard-demo/internal/app"
	"github.com/nikolayk812/productcard-demo/internal/config"
	"github.com/nikolayk812/productcard-demo/internal/domain"
	"github.com/nikolayk812/productcard-demo/internal/eventbus"
	"github.com/nikolayk812/productcard-demo/internal/repository"
	"github.com/nikolayk812/productcard-demo/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	premium    bool
	verbose    bool
	logFile    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "productcard",
	Short: "Interactive product card with cart and reviews",
	Long: `productcard shows a product with its colour variants, a cart counter
and a review panel in the terminal.

Hover colours with ←/→, add with "a", remove with "r", switch tabs with tab
and press enter to write a review.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The TUI owns the terminal, so logs only go to a file when asked.
		if logFile == "" {
			logger = zap.NewNop()
			return nil
		}

		zapConfig := zap.NewProductionConfig()
		zapConfig.OutputPaths = []string{logFile}
		zapConfig.ErrorOutputPaths = []string{logFile}
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runProductCard,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the configured product and exit",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "catalog YAML file (default: built-in socks catalog)")
	rootCmd.PersistentFlags().BoolVar(&premium, "premium", false, "override the catalog premium flag (free shipping)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")

	rootCmd.AddCommand(catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadCatalog resolves the product and the premium flag; --premium wins over the file.
func loadCatalog(cmd *cobra.Command) (domain.Product, bool, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return domain.Product{}, false, err
	}

	product, err := cfg.ToDomain()
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("cfg.ToDomain: %w", err)
	}

	isPremium := cfg.Premium
	if cmd.Flags().Changed("premium") {
		isPremium = premium
	}

	return product, isPremium, nil
}

func runProductCard(cmd *cobra.Command, args []string) error {
	product, isPremium, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	bus := eventbus.New(logger.Named("bus"))
	application := app.New(isPremium, repository.NewCart(logger.Named("cart")), logger.Named("app"))

	model, err := ui.New(application, product, bus, logger)
	if err != nil {
		return fmt.Errorf("ui.New: %w", err)
	}

	logger.Info("starting product card",
		zap.String("product", product.Title()),
		zap.Bool("premium", isPremium),
		zap.Int("variants", len(product.Variants)))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tea.Program.Run: %w", err)
	}

	logger.Info("session ended", zap.Int("cart_items", application.CartCount()))
	return nil
}

func runCatalog(cmd *cobra.Command, args []string) error {
	product, isPremium, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	printCatalog(cmd.OutOrStdout(), product, isPremium)
	return nil
}

func printCatalog(w io.Writer, product domain.Product, isPremium bool) {
	shipping := product.ShippingFee.Label()
	if isPremium || product.ShippingFee.IsZero() {
		shipping = ui.FreeShipping
	}

	fmt.Fprintln(w, product.Title())
	fmt.Fprintf(w, "Shipping: %s\n", shipping)
	if product.OnSale {
		fmt.Fprintln(w, "On sale")
	}
	for _, d := range product.Details {
		fmt.Fprintf(w, "  - %s\n", d)
	}

	fmt.Fprintln(w, "Variants:")
	for _, v := range product.Variants {
		stock := "in stock"
		if !v.InStock() {
			stock = "out of stock"
		}
		fmt.Fprintf(w, "  %d  %-8s %-12s %s\n", v.ID, v.Color, stock, v.Image)
	}

	labels := make([]string, 0, len(product.Sizes))
	for _, s := range product.Sizes {
		labels = append(labels, s.Label)
	}
	fmt.Fprintf(w, "Sizes: %s\n", strings.Join(labels, ", "))
}

// Package config loads the product catalog shown by the product card.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/nikolayk812/productcard-demo/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the on-disk shape of a catalog file.
type Config struct {
	Premium bool          `yaml:"premium"`
	Product ProductConfig `yaml:"product"`
}

type ProductConfig struct {
	Brand       string          `yaml:"brand"`
	Name        string          `yaml:"name"`
	OnSale      bool            `yaml:"on_sale"`
	Details     []string        `yaml:"details"`
	ShippingFee MoneyConfig     `yaml:"shipping_fee"`
	Variants    []VariantConfig `yaml:"variants"`
	Sizes       []SizeConfig    `yaml:"sizes"`
}

type MoneyConfig struct {
	Amount   string `yaml:"amount"`
	Currency string `yaml:"currency"`
}

type VariantConfig struct {
	ID       int    `yaml:"id"`
	Color    string `yaml:"color"`
	Image    string `yaml:"image"`
	Quantity int    `yaml:"quantity"`
}

type SizeConfig struct {
	ID    int    `yaml:"id"`
	Label string `yaml:"label"`
}

// Default returns the built-in catalog.
func Default() (*Config, error) {
	return Parse(defaultYAML)
}

// Load reads a catalog file. An empty path yields the built-in catalog.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	p := c.Product

	var errs []error
	if p.Brand == "" && p.Name == "" {
		errs = append(errs, errors.New("product brand and name are empty"))
	}
	if len(p.Variants) == 0 {
		errs = append(errs, domain.ErrEmptyCatalog)
	}

	seen := make(map[int]bool, len(p.Variants))
	for i, v := range p.Variants {
		if seen[v.ID] {
			errs = append(errs, fmt.Errorf("variants[%d]: duplicate id %d", i, v.ID))
		}
		seen[v.ID] = true

		if v.Quantity < 0 {
			errs = append(errs, fmt.Errorf("variants[%d]: negative quantity %d", i, v.Quantity))
		}
	}

	if _, err := domain.ParseMoney(p.ShippingFee.Amount, p.ShippingFee.Currency); err != nil {
		errs = append(errs, fmt.Errorf("shipping_fee: %w", err))
	}

	return errors.Join(errs...)
}

// ToDomain converts the validated catalog into a domain.Product.
func (c *Config) ToDomain() (domain.Product, error) {
	p := c.Product

	fee, err := domain.ParseMoney(p.ShippingFee.Amount, p.ShippingFee.Currency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("domain.ParseMoney: %w", err)
	}

	variants := make([]domain.Variant, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, domain.Variant{
			ID:       domain.VariantID(v.ID),
			Color:    v.Color,
			Image:    v.Image,
			Quantity: v.Quantity,
		})
	}

	sizes := make([]domain.Size, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		sizes = append(sizes, domain.Size{ID: s.ID, Label: s.Label})
	}

	return domain.Product{
		Brand:       p.Brand,
		Name:        p.Name,
		OnSale:      p.OnSale,
		Details:     p.Details,
		Variants:    variants,
		Sizes:       sizes,
		ShippingFee: fee,
	}, nil
}

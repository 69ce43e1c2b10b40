package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikolayk812/productcard-demo/internal/config"
	"github.com/nikolayk812/productcard-demo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefault(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	assert.True(t, cfg.Premium)

	product, err := cfg.ToDomain()
	require.NoError(t, err)

	want := domain.Product{
		Brand:   "Vue Mastery",
		Name:    "Socks",
		OnSale:  true,
		Details: []string{"80% Cotton", "20% Polyester", "Gender-neutral"},
		Variants: []domain.Variant{
			{ID: 2234, Color: "#84CF6A", Image: "./assets/vmSocks-green-onWhite.jpg", Quantity: 10},
			{ID: 2235, Color: "#13438b", Image: "./assets/vmSocks-blue-onWhite.jpg", Quantity: 0},
		},
		Sizes: []domain.Size{
			{ID: 111, Label: "Small"},
			{ID: 112, Label: "Medium"},
			{ID: 113, Label: "Large"},
		},
		ShippingFee: domain.Money{Amount: decimal.RequireFromString("5.99"), Currency: currency.USD},
	}

	opts := cmp.Options{
		cmp.Comparer(func(x, y decimal.Decimal) bool { return x.Equal(y) }),
		cmp.Comparer(func(x, y currency.Unit) bool { return x.String() == y.String() }),
	}
	assert.Empty(t, cmp.Diff(want, product, opts))
	assert.Equal(t, "$5.99", product.ShippingFee.Label())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantError string
	}{
		{
			name: "minimal catalog: ok",
			content: `
product:
  brand: Acme
  name: Hat
  shipping_fee: {amount: "2", currency: EUR}
  variants:
    - {id: 1, color: red, image: red.png, quantity: 1}
`,
		},
		{
			name: "no variants: error",
			content: `
product:
  brand: Acme
  shipping_fee: {amount: "2", currency: EUR}
`,
			wantError: domain.ErrEmptyCatalog.Error(),
		},
		{
			name: "duplicate variant id: error",
			content: `
product:
  brand: Acme
  shipping_fee: {amount: "2", currency: EUR}
  variants:
    - {id: 1, quantity: 1}
    - {id: 1, quantity: 2}
`,
			wantError: "variants[1]: duplicate id 1",
		},
		{
			name: "negative quantity: error",
			content: `
product:
  brand: Acme
  shipping_fee: {amount: "2", currency: EUR}
  variants:
    - {id: 1, quantity: -3}
`,
			wantError: "variants[0]: negative quantity -3",
		},
		{
			name: "bad currency: error",
			content: `
product:
  brand: Acme
  shipping_fee: {amount: "2", currency: NOPE}
  variants:
    - {id: 1, quantity: 1}
`,
			wantError: "shipping_fee: currency[NOPE] is not valid",
		},
		{
			name:      "malformed yaml: error",
			content:   "product: [",
			wantError: "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			cfg, err := config.Load(path)
			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			product, err := cfg.ToDomain()
			require.NoError(t, err)
			assert.Equal(t, "Acme Hat", product.Title())
			assert.Empty(t, cmp.Diff([]domain.Size{}, product.Sizes, cmpopts.EquateEmpty()))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config")
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "Socks", cfg.Product.Name)
}

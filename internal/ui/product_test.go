package ui_test

import (
	"testing"

	"github.com/nikolayk812/productcard-demo/internal/app"
	"github.com/nikolayk812/productcard-demo/internal/domain"
	"github.com/nikolayk812/productcard-demo/internal/eventbus"
	"github.com/nikolayk812/productcard-demo/internal/ui"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProduct(t *testing.T, premium bool) (*ui.ProductModel, *app.App) {
	t.Helper()

	a := newApp(premium)
	p, err := ui.NewProductModel(socks(), premium, a, nil, ui.DefaultStyles(), zap.NewNop())
	require.NoError(t, err)
	return p, a
}

func TestProductDerivedValues(t *testing.T) {
	p, _ := newProduct(t, false)

	assert.Equal(t, "Vue Mastery Socks", p.Title())
	assert.True(t, p.OnSale())
	assert.Equal(t, "$5.99", p.Shipping())

	premium, _ := newProduct(t, true)
	assert.Equal(t, ui.FreeShipping, premium.Shipping())

	product := socks()
	product.ShippingFee.Amount = decimal.Zero
	zeroFee, err := ui.NewProductModel(product, false, newApp(false), nil, ui.DefaultStyles(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, ui.FreeShipping, zeroFee.Shipping())
}

func TestProductHover(t *testing.T) {
	p, _ := newProduct(t, true)
	variants := socks().Variants

	for i, v := range variants {
		require.NoError(t, p.Hover(i))
		assert.Equal(t, i, p.Selected())
		assert.Equal(t, v.Image, p.Image())
		assert.Equal(t, v.Quantity > 0, p.InStock())
	}

	for _, index := range []int{-1, len(variants)} {
		err := p.Hover(index)
		assert.ErrorIs(t, err, domain.ErrVariantOutOfRange)
		assert.Equal(t, len(variants)-1, p.Selected(), "selection must not move")
	}
}

func TestProductCart(t *testing.T) {
	tests := []struct {
		name    string
		hover   int
		actions []string
		want    []domain.VariantID
	}{
		{
			name:    "add green twice",
			hover:   0,
			actions: []string{"add", "add"},
			want:    []domain.VariantID{2234, 2234},
		},
		{
			name:    "add then remove is a net no-op",
			hover:   0,
			actions: []string{"add", "remove"},
		},
		{
			name:    "operation itself ignores stock",
			hover:   1,
			actions: []string{"add"},
			want:    []domain.VariantID{2235},
		},
		{
			name:    "remove absent variant",
			hover:   1,
			actions: []string{"remove"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, a := newProduct(t, true)
			require.NoError(t, p.Hover(tt.hover))

			for _, action := range tt.actions {
				switch action {
				case "add":
					p.AddToCart()
				case "remove":
					p.RemoveFromCart()
				}
			}

			assert.Equal(t, len(tt.want), a.CartCount())
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, a.Cart().Items)
			}
		})
	}
}

func TestProductKeys(t *testing.T) {
	p, a := newProduct(t, true)

	p.Update(runes("a"))
	assert.Equal(t, 1, a.CartCount())

	p.Update(runes("l"))
	assert.Equal(t, 1, p.Selected())
	p.Update(runes("l"))
	assert.Equal(t, 1, p.Selected(), "stays on the last variant")

	// add is disabled for an out-of-stock variant
	p.Update(runes("a"))
	assert.Equal(t, 1, a.CartCount())

	p.Update(runes("1"))
	assert.Equal(t, 0, p.Selected())
	p.Update(runes("9"))
	assert.Equal(t, 0, p.Selected())

	p.Update(runes("r"))
	assert.Zero(t, a.CartCount())
}

func TestProductMount(t *testing.T) {
	bus := eventbus.New(zap.NewNop())
	p, _ := newProduct(t, true)
	p.Mount(bus)
	p.Mount(bus)

	var want []domain.Review
	for range 3 {
		r := randomReview()
		review, err := domain.NewReview(r.name, r.text, r.rating, r.recommend)
		require.NoError(t, err)
		want = append(want, review)
		bus.Publish(eventbus.TopicReviewSubmitted, review)
	}
	bus.Publish(eventbus.TopicReviewSubmitted, "not a review")

	// mounting twice must not deliver each review twice
	assert.Equal(t, want, p.Reviews())

	p.Unmount()
	r := randomReview()
	late, err := domain.NewReview(r.name, r.text, r.rating, r.recommend)
	require.NoError(t, err)
	bus.Publish(eventbus.TopicReviewSubmitted, late)
	assert.Equal(t, want, p.Reviews())
}

func TestProductView(t *testing.T) {
	p, _ := newProduct(t, false)

	view := p.View()
	assert.Contains(t, view, "Vue Mastery Socks")
	assert.Contains(t, view, "In Stock")
	assert.Contains(t, view, "ON SALE!")
	assert.Contains(t, view, "Shipping: $5.99")
	assert.Contains(t, view, "80% Cotton")
	assert.Contains(t, view, "Small / Medium / Large")
	assert.Contains(t, view, "vmSocks-green-onWhite.jpg")

	require.NoError(t, p.Hover(1))
	view = p.View()
	assert.Contains(t, view, "Out of Stock")
	assert.Contains(t, view, "vmSocks-blue-onWhite.jpg")
}

func TestNewProductModelRequiresVariants(t *testing.T) {
	product := socks()
	product.Variants = nil

	_, err := ui.NewProductModel(product, true, newApp(true), nil, ui.DefaultStyles(), zap.NewNop())
	assert.ErrorIs(t, err, domain.ErrEmptyCatalog)
}

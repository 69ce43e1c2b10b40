// Package app holds the session-wide state: the premium flag and the cart.
package app

import (
	"github.com/nikolayk812/productcard-demo/internal/domain"
	"github.com/nikolayk812/productcard-demo/internal/port"
	"go.uber.org/zap"
)

type App struct {
	premium bool
	cart    port.CartRepository
	logger  *zap.Logger
}

func New(premium bool, cart port.CartRepository, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &App{
		premium: premium,
		cart:    cart,
		logger:  logger,
	}
}

func (a *App) Premium() bool {
	return a.premium
}

// UpdateCart appends id to the end of the cart.
func (a *App) UpdateCart(id domain.VariantID) {
	a.cart.AddItem(id)
	a.logger.Info("added to cart", zap.Int("variant_id", int(id)))
}

// RemoveItem drops every occurrence of id. Absent ids are ignored.
func (a *App) RemoveItem(id domain.VariantID) int {
	removed := a.cart.DeleteItem(id)
	if removed > 0 {
		a.logger.Info("removed from cart", zap.Int("variant_id", int(id)), zap.Int("removed", removed))
	}
	return removed
}

func (a *App) Cart() domain.Cart {
	return a.cart.GetCart()
}

func (a *App) CartCount() int {
	return a.cart.GetCart().Len()
}

package repository

import (
	"slices"

	"github.com/nikolayk812/productcard-demo/internal/domain"
	"github.com/nikolayk812/productcard-demo/internal/port"
	"go.uber.org/zap"
)

// cartRepository keeps the session cart in memory; nothing outlives the process.
type cartRepository struct {
	cart   domain.Cart
	logger *zap.Logger
}

func NewCart(logger *zap.Logger) port.CartRepository {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &cartRepository{logger: logger}
}

func (r *cartRepository) GetCart() domain.Cart {
	return domain.Cart{Items: slices.Clone(r.cart.Items)}
}

func (r *cartRepository) AddItem(id domain.VariantID) {
	r.cart.Add(id)

	r.logger.Debug("cart item added",
		zap.Int("variant_id", int(id)),
		zap.Int("cart_size", r.cart.Len()))
}

func (r *cartRepository) DeleteItem(id domain.VariantID) int {
	removed := r.cart.Remove(id)

	r.logger.Debug("cart item deleted",
		zap.Int("variant_id", int(id)),
		zap.Int("removed", removed),
		zap.Int("cart_size", r.cart.Len()))

	return removed
}

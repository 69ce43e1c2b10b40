package port

import (
	"github.com/nikolayk812/productcard-demo/internal/domain"
)

type CartRepository interface {
	GetCart() domain.Cart
	AddItem(id domain.VariantID)
	DeleteItem(id domain.VariantID) int
}

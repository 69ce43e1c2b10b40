package domain

import "errors"

var (
	ErrVariantOutOfRange = errors.New("variant index out of range")
	ErrEmptyCatalog      = errors.New("product has no variants")
)

type VariantID int

type Variant struct {
	ID       VariantID
	Color    string
	Image    string
	Quantity int
}

func (v Variant) InStock() bool {
	return v.Quantity > 0
}

type Size struct {
	ID    int
	Label string
}

type Product struct {
	Brand       string
	Name        string
	OnSale      bool
	Details     []string
	Variants    []Variant
	Sizes       []Size
	ShippingFee Money
}

func (p Product) Title() string {
	return p.Brand + " " + p.Name
}

func (p Product) Variant(index int) (Variant, error) {
	if index < 0 || index >= len(p.Variants) {
		return Variant{}, ErrVariantOutOfRange
	}
	return p.Variants[index], nil
}

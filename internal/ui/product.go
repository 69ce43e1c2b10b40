package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikolayk812/productcard-demo/internal/domain"
	"github.com/nikolayk812/productcard-demo/internal/eventbus"
	"github.com/nikolayk812/productcard-demo/internal/port"
	"go.uber.org/zap"
)

const FreeShipping = "Free"

// CartHandler receives the cart actions raised by the product display.
type CartHandler interface {
	UpdateCart(id domain.VariantID)
	RemoveItem(id domain.VariantID) int
}

// ProductModel shows one product, its colour variants and the review tabs.
// The selected index always points into product.Variants.
type ProductModel struct {
	product  domain.Product
	selected int
	premium  bool
	reviews  []domain.Review

	cart        CartHandler
	tabs        *TabsModel
	unsubscribe func()

	keys   KeyMap
	styles Styles
	logger *zap.Logger
}

func NewProductModel(product domain.Product, premium bool, cart CartHandler, tabs *TabsModel, styles Styles, logger *zap.Logger) (*ProductModel, error) {
	if len(product.Variants) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ProductModel{
		product: product,
		premium: premium,
		cart:    cart,
		tabs:    tabs,
		keys:    DefaultKeyMap,
		styles:  styles,
		logger:  logger,
	}, nil
}

// Mount subscribes to submitted reviews. Each one is appended in delivery order.
func (p *ProductModel) Mount(bus port.Subscriber) {
	if p.unsubscribe != nil {
		return
	}
	p.unsubscribe = bus.Subscribe(eventbus.TopicReviewSubmitted, func(payload any) {
		review, ok := payload.(domain.Review)
		if !ok {
			p.logger.Warn("unexpected review payload", zap.String("type", fmt.Sprintf("%T", payload)))
			return
		}
		p.reviews = append(p.reviews, review)
	})
}

func (p *ProductModel) Unmount() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

func (p *ProductModel) Title() string {
	return p.product.Title()
}

func (p *ProductModel) Selected() int {
	return p.selected
}

func (p *ProductModel) variant() domain.Variant {
	return p.product.Variants[p.selected]
}

func (p *ProductModel) Image() string {
	return p.variant().Image
}

func (p *ProductModel) InStock() bool {
	return p.variant().InStock()
}

func (p *ProductModel) OnSale() bool {
	return p.product.OnSale
}

func (p *ProductModel) Shipping() string {
	if p.premium || p.product.ShippingFee.IsZero() {
		return FreeShipping
	}
	return p.product.ShippingFee.Label()
}

func (p *ProductModel) Reviews() []domain.Review {
	return append([]domain.Review(nil), p.reviews...)
}

func (p *ProductModel) Tabs() *TabsModel {
	return p.tabs
}

// Hover selects the variant at index. Out-of-range indices are rejected and
// leave the selection untouched.
func (p *ProductModel) Hover(index int) error {
	if _, err := p.product.Variant(index); err != nil {
		return fmt.Errorf("hover %d: %w", index, err)
	}
	p.selected = index
	return nil
}

// AddToCart has no stock check of its own; only the key binding is disabled
// while the selected variant is out of stock.
func (p *ProductModel) AddToCart() {
	p.cart.UpdateCart(p.variant().ID)
}

func (p *ProductModel) RemoveFromCart() {
	p.cart.RemoveItem(p.variant().ID)
}

func (p *ProductModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	var err error
	switch {
	case key.Matches(keyMsg, p.keys.PrevVariant):
		if p.selected > 0 {
			err = p.Hover(p.selected - 1)
		}
	case key.Matches(keyMsg, p.keys.NextVariant):
		if p.selected < len(p.product.Variants)-1 {
			err = p.Hover(p.selected + 1)
		}
	case key.Matches(keyMsg, p.keys.PickVariant):
		err = p.Hover(int(keyMsg.String()[0] - '1'))
	case key.Matches(keyMsg, p.keys.AddToCart):
		if p.InStock() {
			p.AddToCart()
		}
	case key.Matches(keyMsg, p.keys.Remove):
		p.RemoveFromCart()
	}
	if err != nil {
		p.logger.Debug("variant not selected", zap.Error(err))
	}

	return nil
}

func (p *ProductModel) View() string {
	var sb strings.Builder

	sb.WriteString(p.styles.Title.Render(p.Title()))
	sb.WriteString("\n")
	sb.WriteString(p.styles.Muted.Render("Image: " + p.Image()))
	sb.WriteString("\n\n")

	if p.InStock() {
		sb.WriteString(p.styles.Success.Render("In Stock"))
	} else {
		sb.WriteString(p.styles.Error.Strikethrough(true).Render("Out of Stock"))
	}
	sb.WriteString("\n")

	if p.OnSale() {
		sb.WriteString(p.styles.Sale.Render("ON SALE! Don't miss out! ^.^"))
		sb.WriteString("\n")
	}
	sb.WriteString("Shipping: " + p.Shipping())
	sb.WriteString("\n\n")

	for _, d := range p.product.Details {
		sb.WriteString("• " + d + "\n")
	}
	sb.WriteString("\n")

	swatches := make([]string, 0, len(p.product.Variants))
	for i, v := range p.product.Variants {
		style := p.styles.Swatch
		marker := " "
		if i == p.selected {
			style = p.styles.SwatchSelected
			marker = "▲"
		}
		swatches = append(swatches, lipgloss.JoinVertical(lipgloss.Center,
			style.Background(lipgloss.Color(v.Color)).Render(" "),
			marker,
		))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, swatches...))
	sb.WriteString("\n")

	sizes := make([]string, 0, len(p.product.Sizes))
	for _, s := range p.product.Sizes {
		sizes = append(sizes, s.Label)
	}
	if len(sizes) > 0 {
		sb.WriteString("Sizes: " + strings.Join(sizes, " / "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	addStyle := p.styles.Button
	if !p.InStock() {
		addStyle = p.styles.ButtonDisabled
	}
	sb.WriteString(addStyle.Render("Add to Cart"))
	sb.WriteString(p.styles.Button.Render("Remove"))
	sb.WriteString("\n\n")

	if p.tabs != nil {
		sb.WriteString(p.tabs.View(p.reviews))
	}

	return sb.String()
}

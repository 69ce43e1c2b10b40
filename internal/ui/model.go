package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikolayk812/productcard-demo/internal/app"
	"github.com/nikolayk812/productcard-demo/internal/domain"
	"github.com/nikolayk812/productcard-demo/internal/port"
	"go.uber.org/zap"
)

// Model is the root Bubble Tea model. It owns no state of its own beyond
// focus; the cart lives in app.App and the reviews in the product display.
type Model struct {
	app     *app.App
	product *ProductModel
	tabs    *TabsModel
	form    *ReviewFormModel

	// writing is set while key input goes to the review form.
	writing bool

	keys   KeyMap
	help   help.Model
	styles Styles
	width  int
	logger *zap.Logger
}

// New wires the components together: the form publishes reviews on bus and
// the product display, mounted on the same bus, collects them.
func New(application *app.App, product domain.Product, bus port.EventBus, logger *zap.Logger) (Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := DefaultStyles()

	form := NewReviewFormModel(bus, styles, logger.Named("review_form"))
	tabs := NewTabsModel(form, styles)

	display, err := NewProductModel(product, application.Premium(), application, tabs, styles, logger.Named("product"))
	if err != nil {
		return Model{}, fmt.Errorf("NewProductModel: %w", err)
	}
	display.Mount(bus)

	return Model{
		app:     application,
		product: display,
		tabs:    tabs,
		form:    form,
		keys:    DefaultKeyMap,
		help:    help.New(),
		styles:  styles,
		logger:  logger,
	}, nil
}

func (m Model) Product() *ProductModel { return m.product }
func (m Model) Tabs() *TabsModel       { return m.tabs }
func (m Model) Form() *ReviewFormModel { return m.form }
func (m Model) Writing() bool          { return m.writing }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.writing {
			return m.updateWriting(msg)
		}
		return m.updateBrowsing(msg)
	}

	if m.writing {
		return m, m.form.Update(msg)
	}
	return m, nil
}

func (m Model) updateWriting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.CloseForm) {
		m.writing = false
		m.form.Blur()
		return m, nil
	}
	return m, m.form.Update(msg)
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.SwitchTab):
		m.tabs.Next()
		return m, nil
	case key.Matches(msg, m.keys.OpenForm):
		if m.tabs.Selected() != TabWriteReview {
			if err := m.tabs.Select(TabWriteReview); err != nil {
				return m, nil
			}
		}
		m.writing = true
		return m, m.form.Focus()
	}

	return m, m.product.Update(msg)
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(fmt.Sprintf("Cart(%d)", m.app.CartCount())))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Card.Render(m.product.View()))
	sb.WriteString("\n")

	if m.writing {
		sb.WriteString(m.styles.Footer.Render(m.help.View(formKeys{m.keys})))
	} else {
		sb.WriteString(m.styles.Footer.Render(m.help.View(browseKeys{m.keys})))
	}

	return sb.String()
}

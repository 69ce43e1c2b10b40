package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikolayk812/productcard-demo/internal/domain"
)

type Tab string

const (
	TabReviews     Tab = "Reviews"
	TabWriteReview Tab = "Make a Review"
)

const NoReviewsText = "There are no reviews yet."

var ErrUnknownTab = errors.New("unknown tab")

var tabOrder = []Tab{TabReviews, TabWriteReview}

// TabsModel switches between the review list and the embedded review form.
type TabsModel struct {
	selected Tab
	form     *ReviewFormModel
	styles   Styles
}

func NewTabsModel(form *ReviewFormModel, styles Styles) *TabsModel {
	return &TabsModel{
		selected: TabReviews,
		form:     form,
		styles:   styles,
	}
}

func (t *TabsModel) Selected() Tab {
	return t.selected
}

func (t *TabsModel) Form() *ReviewFormModel {
	return t.form
}

func (t *TabsModel) Select(tab Tab) error {
	for _, known := range tabOrder {
		if known == tab {
			t.selected = tab
			return nil
		}
	}
	return fmt.Errorf("tab %q: %w", string(tab), ErrUnknownTab)
}

func (t *TabsModel) Next() {
	for i, tab := range tabOrder {
		if tab == t.selected {
			t.selected = tabOrder[(i+1)%len(tabOrder)]
			return
		}
	}
}

// View renders the tab bar and the selected tab's body.
func (t *TabsModel) View(reviews []domain.Review) string {
	labels := make([]string, 0, len(tabOrder))
	for _, tab := range tabOrder {
		style := t.styles.Tab
		if tab == t.selected {
			style = t.styles.ActiveTab
		}
		labels = append(labels, style.Render(string(tab)))
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labels...))
	sb.WriteString("\n\n")

	switch t.selected {
	case TabReviews:
		sb.WriteString(t.reviewsView(reviews))
	case TabWriteReview:
		sb.WriteString(t.form.View())
	}

	return sb.String()
}

func (t *TabsModel) reviewsView(reviews []domain.Review) string {
	if len(reviews) == 0 {
		return t.styles.Muted.Render(NoReviewsText) + "\n"
	}

	var sb strings.Builder
	for i, r := range reviews {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(t.styles.Title.Render(r.Name))
		sb.WriteString("\n")
		sb.WriteString(r.Text)
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Rating: %d", r.Rating))
		sb.WriteString("\n")
	}
	return sb.String()
}

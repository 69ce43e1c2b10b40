package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikolayk812/productcard-demo/internal/domain"
	"github.com/nikolayk812/productcard-demo/internal/eventbus"
	"github.com/nikolayk812/productcard-demo/internal/port"
	"go.uber.org/zap"
)

const (
	MsgNameRequired      = "Name required."
	MsgReviewRequired    = "Review required."
	MsgRatingRequired    = "Rating required."
	MsgRecommendRequired = "Recommendation required."
)

type formField int

const (
	fieldName formField = iota
	fieldReview
	fieldRating
	fieldRecommend
	fieldCount
)

// ReviewFormModel collects one review and publishes it on the bus.
type ReviewFormModel struct {
	name   textinput.Model
	review textarea.Model

	// nameText and reviewText hold exactly what was entered. The widgets
	// sanitize their content (tabs become spaces, newlines are dropped from
	// the name) so they only serve as editors.
	nameText   string
	reviewText string

	rating    int                   // 0 while unset
	recommend domain.Recommendation // "" while unset

	// errors is never reset: messages pile up across submit attempts.
	errors []string

	field   formField
	focused bool

	bus    port.Publisher
	keys   KeyMap
	styles Styles
	logger *zap.Logger
}

func NewReviewFormModel(bus port.Publisher, styles Styles, logger *zap.Logger) *ReviewFormModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	name := textinput.New()
	name.Placeholder = "name"
	name.Prompt = ""
	name.CharLimit = 0

	review := textarea.New()
	review.Placeholder = "What did you think?"
	review.ShowLineNumbers = false
	review.CharLimit = 0
	review.SetWidth(48)
	review.SetHeight(3)

	return &ReviewFormModel{
		name:   name,
		review: review,
		bus:    bus,
		keys:   DefaultKeyMap,
		styles: styles,
		logger: logger,
	}
}

func (f *ReviewFormModel) Name() string                     { return f.nameText }
func (f *ReviewFormModel) Review() string                   { return f.reviewText }
func (f *ReviewFormModel) Rating() int                      { return f.rating }
func (f *ReviewFormModel) Recommend() domain.Recommendation { return f.recommend }

func (f *ReviewFormModel) Errors() []string {
	return append([]string(nil), f.errors...)
}

func (f *ReviewFormModel) SetName(name string) {
	f.nameText = name
	f.name.SetValue(name)
}

func (f *ReviewFormModel) SetReview(text string) {
	f.reviewText = text
	f.review.SetValue(text)
}

func (f *ReviewFormModel) SetRating(rating int) error {
	if !domain.ValidRating(rating) {
		return fmt.Errorf("rating %d: %w", rating, domain.ErrInvalidRating)
	}
	f.rating = rating
	return nil
}

func (f *ReviewFormModel) SetRecommend(r domain.Recommendation) error {
	if !r.Valid() {
		return fmt.Errorf("recommend %q: %w", string(r), domain.ErrInvalidRecommendation)
	}
	f.recommend = r
	return nil
}

// Submit validates the four fields in order. A complete form is published on
// the review-submitted topic and its fields are cleared; an incomplete one
// only appends one message per missing field.
func (f *ReviewFormModel) Submit() (domain.Review, bool) {
	name, text := f.nameText, f.reviewText

	if name != "" && text != "" && f.rating != 0 && f.recommend != "" {
		review, err := domain.NewReview(name, text, f.rating, f.recommend)
		if err != nil {
			// setters guard rating and recommend, so this is unreachable
			f.logger.Error("review rejected", zap.Error(err))
			return domain.Review{}, false
		}

		f.bus.Publish(eventbus.TopicReviewSubmitted, review)
		f.resetFields()

		f.logger.Info("review submitted",
			zap.Stringer("review_id", review.ID),
			zap.Int("rating", review.Rating))
		return review, true
	}

	var missing []string
	if name == "" {
		missing = append(missing, MsgNameRequired)
	}
	if text == "" {
		missing = append(missing, MsgReviewRequired)
	}
	if f.rating == 0 {
		missing = append(missing, MsgRatingRequired)
	}
	if f.recommend == "" {
		missing = append(missing, MsgRecommendRequired)
	}
	f.errors = append(f.errors, missing...)

	f.logger.Debug("review validation failed",
		zap.Strings("missing", missing),
		zap.Int("errors_total", len(f.errors)))
	return domain.Review{}, false
}

func (f *ReviewFormModel) resetFields() {
	f.nameText = ""
	f.reviewText = ""
	f.name.Reset()
	f.review.Reset()
	f.rating = 0
	f.recommend = ""
}

func (f *ReviewFormModel) Focused() bool {
	return f.focused
}

// Focus puts the cursor into the first field.
func (f *ReviewFormModel) Focus() tea.Cmd {
	f.focused = true
	return f.focusField(fieldName)
}

func (f *ReviewFormModel) Blur() {
	f.focused = false
	f.name.Blur()
	f.review.Blur()
}

func (f *ReviewFormModel) focusField(field formField) tea.Cmd {
	f.field = field
	f.name.Blur()
	f.review.Blur()

	switch field {
	case fieldName:
		return f.name.Focus()
	case fieldReview:
		return f.review.Focus()
	}
	return nil
}

func (f *ReviewFormModel) Update(msg tea.Msg) tea.Cmd {
	if !f.focused {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInputs(msg)
	}

	switch {
	case key.Matches(keyMsg, f.keys.Submit):
		f.Submit()
		return f.focusField(fieldName)
	case key.Matches(keyMsg, f.keys.NextField):
		return f.focusField((f.field + 1) % fieldCount)
	case key.Matches(keyMsg, f.keys.PrevField):
		return f.focusField((f.field + fieldCount - 1) % fieldCount)
	}

	switch f.field {
	case fieldRating:
		f.handleRatingKey(keyMsg.String())
		return nil
	case fieldRecommend:
		f.handleRecommendKey(keyMsg.String())
		return nil
	}

	return f.updateInputs(msg)
}

func (f *ReviewFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.field {
	case fieldName:
		before := f.name.Value()
		f.name, cmd = f.name.Update(msg)
		if after := f.name.Value(); after != before {
			f.nameText = after
		}
	case fieldReview:
		before := f.review.Value()
		f.review, cmd = f.review.Update(msg)
		if after := f.review.Value(); after != before {
			f.reviewText = after
		}
	}
	return cmd
}

func (f *ReviewFormModel) handleRatingKey(k string) {
	switch k {
	case "1", "2", "3", "4", "5":
		_ = f.SetRating(int(k[0] - '0'))
	case "left", "down":
		if f.rating > domain.MinRating {
			f.rating--
		}
	case "right", "up":
		if f.rating < domain.MaxRating {
			f.rating++
		}
	}
}

func (f *ReviewFormModel) handleRecommendKey(k string) {
	switch k {
	case "y", "Y":
		f.recommend = domain.RecommendYes
	case "n", "N":
		f.recommend = domain.RecommendNo
	case "left", "right", " ":
		if f.recommend == domain.RecommendYes {
			f.recommend = domain.RecommendNo
		} else {
			f.recommend = domain.RecommendYes
		}
	}
}

func (f *ReviewFormModel) View() string {
	var sb strings.Builder

	if len(f.errors) > 0 {
		sb.WriteString(f.styles.Error.Bold(true).Render("Please fill out the following section(s):"))
		sb.WriteString("\n")
		for _, e := range f.errors {
			sb.WriteString(f.styles.Error.Render("  • " + e))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(f.label(fieldName, "Name:"))
	sb.WriteString(" ")
	sb.WriteString(f.name.View())
	sb.WriteString("\n")

	sb.WriteString(f.label(fieldReview, "Review:"))
	sb.WriteString("\n")
	sb.WriteString(f.review.View())
	sb.WriteString("\n")

	sb.WriteString(f.label(fieldRating, "Rating:"))
	sb.WriteString(" ")
	sb.WriteString(f.ratingView())
	sb.WriteString("\n")

	sb.WriteString(f.label(fieldRecommend, "Would you recommend this product?"))
	sb.WriteString(" ")
	sb.WriteString(f.radio(domain.RecommendYes))
	sb.WriteString("  ")
	sb.WriteString(f.radio(domain.RecommendNo))
	sb.WriteString("\n")

	return sb.String()
}

func (f *ReviewFormModel) label(field formField, text string) string {
	if f.focused && f.field == field {
		return f.styles.FieldFocused.Render("› " + text)
	}
	return f.styles.Label.Render("  " + text)
}

func (f *ReviewFormModel) ratingView() string {
	if f.rating == 0 {
		return f.styles.Muted.Render("(press 1-5)")
	}
	return strings.Repeat("★", f.rating) + f.styles.Muted.Render(strings.Repeat("☆", domain.MaxRating-f.rating))
}

func (f *ReviewFormModel) radio(r domain.Recommendation) string {
	if f.recommend == r {
		return "(•) " + string(r)
	}
	return "( ) " + string(r)
}

// Package ui renders the product card as a Bubble Tea program: the product
// display, its review tabs and the review form.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Foreground  = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#f2f2f2"}
	Muted       = lipgloss.AdaptiveColor{Light: "#8a94a3", Dark: "#6b7a90"}
	Accent      = lipgloss.Color("#8BC34A")
	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#FFC107")
	Border      = lipgloss.AdaptiveColor{Light: "#dce0e5", Dark: "#2a3850"}
)

// Styles holds the styled components shared by every page.
type Styles struct {
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style

	Title   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Sale    lipgloss.Style

	Swatch         lipgloss.Style
	SwatchSelected lipgloss.Style

	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style

	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	FieldFocused lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2),

		Title: lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(Muted),

		Success: lipgloss.NewStyle().
			Foreground(Accent),

		Error: lipgloss.NewStyle().
			Foreground(Destructive),

		Sale: lipgloss.NewStyle().
			Foreground(Warning),

		Swatch: lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1),

		SwatchSelected: lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Underline(true),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(Accent).
			Padding(0, 1).
			MarginRight(1),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(Muted).
			Strikethrough(true).
			Padding(0, 1).
			MarginRight(1),

		Tab: lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		FieldFocused: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),
	}
}

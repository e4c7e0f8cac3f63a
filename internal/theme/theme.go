package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	TopBar                *lipgloss.Style
	TopBarTitle           *lipgloss.Style
	TopBarPanel           *lipgloss.Style
	MenuToggle            *lipgloss.Style
	Drawer                *lipgloss.Style
	DrawerHeader          *lipgloss.Style
	DrawerBorder          *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	FocusedItemIndicator  *lipgloss.Style
	SelectedItem          *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	Glyph                 *lipgloss.Style
	Content               *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Footer                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
}

var defaultStyles = Styles{
	TopBar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")),
	),
	TopBarTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")).Bold(true),
	),
	TopBarPanel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("153")).Background(lipgloss.Color("24")),
	),
	MenuToggle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Background(lipgloss.Color("24")).Bold(true),
	),
	Drawer: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("235")),
	),
	DrawerHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("235")).Bold(true),
	),
	DrawerBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("235")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Background(lipgloss.Color("235")),
	),
	FocusedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Background(lipgloss.Color("235")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")).Bold(true),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("24")),
	),
	Glyph: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
	Content: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a style set with every entry unstyled. Tests use it to
// assert on layout without escape sequences.
func Plain() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		TopBar:                ptr(plain),
		TopBarTitle:           ptr(plain),
		TopBarPanel:           ptr(plain),
		MenuToggle:            ptr(plain),
		Drawer:                ptr(plain),
		DrawerHeader:          ptr(plain),
		DrawerBorder:          ptr(plain),
		Item:                  ptr(plain),
		ItemIndicator:         ptr(plain),
		FocusedItemIndicator:  ptr(plain),
		SelectedItem:          ptr(plain),
		SelectedItemIndicator: ptr(plain),
		Glyph:                 ptr(plain),
		Content:               ptr(plain),
		Error:                 ptr(plain),
		Info:                  ptr(plain),
		Footer:                ptr(plain),
		FilterPrompt:          ptr(plain),
		FilterPlaceholder:     ptr(plain),
	}
}

// Render applies style to text, tolerating a nil style.
func Render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects the color scheme.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ParseMode parses a theme name. "system" is accepted as an alias for auto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "system":
		return ModeAuto, nil
	case "dark":
		return ModeDark, nil
	case "light":
		return ModeLight, nil
	}
	return "", fmt.Errorf("unknown theme %q (want auto, dark or light)", s)
}

// Default chroma styles per scheme.
const (
	DarkSyntaxStyle  = "monokai"
	LightSyntaxStyle = "github"
)

// Theme holds all the styled components for the application.
type Theme struct {
	// Terminal capabilities
	Mode         Mode
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// SyntaxStyle is the chroma style name for fenced code.
	SyntaxStyle string

	// CodeHighlight is the background token passed to the markdown parser
	// and carried by every inline code run.
	CodeHighlight lipgloss.TerminalColor

	// ==========================================================================
	// CHROME STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	StatusBar      lipgloss.Style
	ShortcutKey    lipgloss.Style
	ShortcutDesc   lipgloss.Style
	InputPrompt    lipgloss.Style
	Disclaimer     lipgloss.Style
	Muted          lipgloss.Style
	Spinner        lipgloss.Style
	ThinkingText   lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	SystemBubble    lipgloss.Style
	ErrorBubble     lipgloss.Style
	RoleLabel       lipgloss.Style
	Timestamp       lipgloss.Style

	// ==========================================================================
	// MARKDOWN STYLES
	// ==========================================================================

	// Header tiers: level 1, level 2, level 3 and deeper.
	H1 lipgloss.Style
	H2 lipgloss.Style
	H3 lipgloss.Style

	Body        lipgloss.Style
	Bold        lipgloss.Style
	Italic      lipgloss.Style
	InlineCode  lipgloss.Style
	Bullet      lipgloss.Style
	Quote       lipgloss.Style
	CodeBlock   lipgloss.Style
	CodeLang    lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style
	Divider     lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
}

// NewTheme creates a theme that follows the terminal background.
func NewTheme() *Theme {
	return NewThemeForMode(ModeAuto)
}

// NewThemeForMode creates a theme for an explicit scheme. ModeAuto asks
// the terminal whether its background is dark.
func NewThemeForMode(mode Mode) *Theme {
	colorProfile := termenv.ColorProfile()

	isDark := true
	switch mode {
	case ModeLight:
		isDark = false
	case ModeDark:
	default:
		mode = ModeAuto
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		Mode:         mode,
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
		SyntaxStyle:  DarkSyntaxStyle,
	}
	if !isDark {
		t.SyntaxStyle = LightSyntaxStyle
	}

	t.initStyles()
	return t
}

// Color resolves an adaptive pair to the side this theme uses.
func (t *Theme) Color(c lipgloss.AdaptiveColor) lipgloss.Color {
	if t.IsDark {
		return lipgloss.Color(c.Dark)
	}
	return lipgloss.Color(c.Light)
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	c := t.Color
	t.CodeHighlight = c(InlineCodeBg)

	// Chrome
	t.Header = lipgloss.NewStyle().
		Background(c(SurfaceDim)).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(Indigo))

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Italic(true)

	t.StatusBar = lipgloss.NewStyle().
		Background(c(SurfaceDim)).
		Foreground(c(TextSecondary)).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(c(Teal)).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(c(Teal)).
		Bold(true)

	t.Disclaimer = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Italic(true)

	t.Muted = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	t.Spinner = lipgloss.NewStyle().
		Foreground(c(Indigo))

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Italic(true)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(c(UserBubbleFg)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(UserBubbleBorder)).
		Padding(0, 1)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(c(AssistantBubbleFg)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(AssistantBubbleBorder)).
		Padding(0, 1)

	t.SystemBubble = lipgloss.NewStyle().
		Foreground(c(SystemBubbleFg)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(c(SystemBubbleBorder)).
		Padding(0, 1)

	t.ErrorBubble = lipgloss.NewStyle().
		Foreground(c(Rose)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(Rose)).
		Padding(0, 1)

	t.RoleLabel = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Bold(true)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	// Markdown
	t.H1 = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(c(Indigo))

	t.H2 = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(Saffron))

	t.H3 = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(Teal))

	t.Body = lipgloss.NewStyle().
		Foreground(c(TextPrimary))

	t.Bold = lipgloss.NewStyle().Bold(true)
	t.Italic = lipgloss.NewStyle().Italic(true)

	t.InlineCode = lipgloss.NewStyle().
		Foreground(c(InlineCodeFg))

	t.Bullet = lipgloss.NewStyle().
		Foreground(c(Indigo)).
		Bold(true)

	t.Quote = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Italic(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(c(QuoteBar)).
		PaddingLeft(1)

	t.CodeBlock = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(CodeBlockBorder)).
		Padding(0, 1)

	t.CodeLang = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Bold(true)

	t.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(Indigo)).
		Padding(0, 1)

	t.TableCell = lipgloss.NewStyle().
		Foreground(c(TextPrimary)).
		Padding(0, 1)

	t.TableBorder = lipgloss.NewStyle().
		Foreground(c(Overlay))

	t.Divider = lipgloss.NewStyle().
		Foreground(c(Overlay))

	// Status
	t.SuccessStyle = lipgloss.NewStyle().Foreground(c(Emerald)).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(c(Rose)).Bold(true)
	t.WarningStyle = lipgloss.NewStyle().Foreground(c(Amber)).Bold(true)
	t.InfoStyle = lipgloss.NewStyle().Foreground(c(Indigo)).Bold(true)
}

// HeaderStyle returns the style tier for a header level. Levels of 3 and
// above share the last tier; levels below 1 use the first.
func (t *Theme) HeaderStyle(level int) lipgloss.Style {
	switch {
	case level <= 1:
		return t.H1
	case level == 2:
		return t.H2
	default:
		return t.H3
	}
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	return layoutFor(t.Width)
}

func layoutFor(width int) LayoutMode {
	if width < 60 {
		return LayoutNarrow
	}
	if width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// BubbleWidth returns the message bubble width for the current width.
func (t *Theme) BubbleWidth() int {
	return BubbleWidthFor(t.Width)
}

// BubbleWidthFor returns the message bubble width in a terminal width
// columns wide. Narrow terminals use nearly all of it.
func BubbleWidthFor(width int) int {
	switch layoutFor(width) {
	case LayoutNarrow:
		return max(width-4, 10)
	case LayoutMedium:
		return width - 8
	default:
		return width * 3 / 4
	}
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // >= 100 columns
)

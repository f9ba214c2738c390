// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"System", ModeAuto, false},
		{"dark", ModeDark, false},
		{" LIGHT ", ModeLight, false},
		{"solarized", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewThemeForMode(t *testing.T) {
	dark := NewThemeForMode(ModeDark)
	if !dark.IsDark || dark.Mode != ModeDark {
		t.Errorf("dark theme: IsDark=%v Mode=%q", dark.IsDark, dark.Mode)
	}
	if dark.SyntaxStyle != DarkSyntaxStyle {
		t.Errorf("dark SyntaxStyle = %q", dark.SyntaxStyle)
	}
	if dark.CodeHighlight != lipgloss.Color(InlineCodeBg.Dark) {
		t.Errorf("dark CodeHighlight = %v, want %v", dark.CodeHighlight, InlineCodeBg.Dark)
	}

	light := NewThemeForMode(ModeLight)
	if light.IsDark || light.Mode != ModeLight {
		t.Errorf("light theme: IsDark=%v Mode=%q", light.IsDark, light.Mode)
	}
	if light.SyntaxStyle != LightSyntaxStyle {
		t.Errorf("light SyntaxStyle = %q", light.SyntaxStyle)
	}
	if light.CodeHighlight != lipgloss.Color(InlineCodeBg.Light) {
		t.Errorf("light CodeHighlight = %v, want %v", light.CodeHighlight, InlineCodeBg.Light)
	}

	if got := NewThemeForMode("bogus").Mode; got != ModeAuto {
		t.Errorf("unknown mode should fall back to auto, got %q", got)
	}
}

func TestThemeColor(t *testing.T) {
	pair := lipgloss.AdaptiveColor{Light: "#111111", Dark: "#EEEEEE"}
	if got := NewThemeForMode(ModeDark).Color(pair); got != "#EEEEEE" {
		t.Errorf("dark Color() = %q", got)
	}
	if got := NewThemeForMode(ModeLight).Color(pair); got != "#111111" {
		t.Errorf("light Color() = %q", got)
	}
}

func TestHeaderStyleTiers(t *testing.T) {
	theme := NewThemeForMode(ModeDark)

	tests := []struct {
		level int
		want  lipgloss.Style
	}{
		{0, theme.H1},
		{1, theme.H1},
		{2, theme.H2},
		{3, theme.H3},
		{6, theme.H3},
		{9, theme.H3},
	}
	for _, tt := range tests {
		got := theme.HeaderStyle(tt.level)
		if got.GetForeground() != tt.want.GetForeground() {
			t.Errorf("HeaderStyle(%d) foreground = %v, want %v", tt.level, got.GetForeground(), tt.want.GetForeground())
		}
	}
}

func TestQuoteStyleHasLeftBorder(t *testing.T) {
	theme := NewThemeForMode(ModeLight)
	if !theme.Quote.GetBorderLeft() {
		t.Error("Quote style should draw a left border")
	}
	if !theme.Quote.GetItalic() {
		t.Error("Quote style should be italic")
	}
}

// =============================================================================
// LAYOUT TESTS
// =============================================================================

func TestLayoutMode(t *testing.T) {
	theme := NewThemeForMode(ModeDark)

	tests := []struct {
		width int
		mode  LayoutMode
		min   int
	}{
		{40, LayoutNarrow, 10},
		{8, LayoutNarrow, 10},
		{80, LayoutMedium, 72},
		{120, LayoutWide, 90},
	}
	for _, tt := range tests {
		theme.SetSize(tt.width, 24)
		if got := theme.GetLayoutMode(); got != tt.mode {
			t.Errorf("width %d: layout = %v, want %v", tt.width, got, tt.mode)
		}
		if got := theme.BubbleWidth(); got < tt.min {
			t.Errorf("width %d: BubbleWidth = %d, want >= %d", tt.width, got, tt.min)
		}
	}
}

// =============================================================================
// ANIMATION AND RULE TESTS
// =============================================================================

func TestSpinnerConfig(t *testing.T) {
	if d := DotsSpinner.Duration(); d != time.Second/6 {
		t.Errorf("DotsSpinner.Duration() = %v", d)
	}
	if d := (SpinnerConfig{}).Duration(); d != time.Second {
		t.Errorf("zero FPS Duration() = %v, want 1s", d)
	}

	s := LineSpinner.Bubble()
	if len(s.Frames) != 4 || s.FPS != time.Second/10 {
		t.Errorf("Bubble() = %+v", s)
	}
}

func TestRule(t *testing.T) {
	if Rule(0) != "" || Rule(-3) != "" {
		t.Error("Rule should be empty for non-positive widths")
	}
	r := Rule(12)
	if r == "" || strings.Trim(r, RuleChar) != "" {
		t.Errorf("Rule(12) = %q", r)
	}
}

func TestRenderStatusHelpers(t *testing.T) {
	if !strings.Contains(RenderSuccess("saved"), "[OK] saved") {
		t.Error("RenderSuccess missing indicator")
	}
	if !strings.Contains(RenderError("failed"), "[X] failed") {
		t.Error("RenderError missing indicator")
	}
	if !strings.Contains(RenderWarning("slow"), "[!] slow") {
		t.Error("RenderWarning missing indicator")
	}
	if !strings.Contains(RenderInfo("note"), "[i] note") {
		t.Error("RenderInfo missing indicator")
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var translatedKeys = []string{
	KeyAppTitle, KeyAppSubtitle, KeyWelcomeMessage, KeyNewChat, KeyStartNewChat,
	KeyRecentChats, KeyTheme, KeyLanguage, KeyAskAnything, KeyShareConversation,
	KeyErrorMessage, KeyFindLawyer, KeyFindLocalLawyer, KeyEnterCity, KeyAreaOfLaw,
	KeySearch,
}

func TestEveryLanguageHasEveryTranslatedKey(t *testing.T) {
	for _, code := range Supported() {
		table, ok := tables[code]
		require.True(t, ok, "no table for %s", code)
		for _, key := range translatedKeys {
			assert.NotEmpty(t, table[key], "%s missing %s", code, key)
		}
		assert.Contains(t, table[KeyErrorMessage], "%s", "%s error_message needs a %%s verb", code)
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "New Chat", T("en", KeyNewChat))
	assert.Equal(t, "नई चैट", T("hi", KeyNewChat))
	assert.Equal(t, "மொழி", T("ta", KeyLanguage))
	assert.Equal(t, "Find a Local Lawyer", T("en", KeyFindLocalLawyer))
	assert.Equal(t, "स्थानीय वकील खोजें", T("hi", KeyFindLocalLawyer))

	// English-only keys fall back.
	assert.Equal(t, T("en", KeyThinking), T("bn", KeyThinking))
	// Unknown language falls back to English.
	assert.Equal(t, "Theme", T("fr", KeyTheme))
	// Unknown key is returned as-is.
	assert.Equal(t, "no_such_key", T("hi", "no_such_key"))
}

func TestTf(t *testing.T) {
	assert.Equal(t, "Sorry, an error occurred: timeout", Tf("en", KeyErrorMessage, "timeout"))
	assert.Equal(t, "क्षमा करें, एक त्रुटि हुई: timeout", Tf("hi", KeyErrorMessage, "timeout"))
}

func TestSupported(t *testing.T) {
	codes := Supported()
	require.Len(t, codes, 11)
	assert.Equal(t, "en", codes[0])
	assert.Equal(t, "te", codes[10])

	// Callers cannot mutate the package list.
	codes[0] = "xx"
	assert.Equal(t, "en", Supported()[0])

	assert.True(t, IsSupported("ur"))
	assert.False(t, IsSupported("fr"))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"hi", "hi"},
		{"hi-IN", "hi"},
		{"en-GB", "en"},
		{"ta_IN", "ta"},
		{"kn_IN.UTF-8", "kn"},
		{"  te  ", "te"},
		{"", "en"},
		{"not a tag!", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.in))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "English", DisplayName("en"))
	assert.Equal(t, "हिन्दी", DisplayName("hi"))
	assert.Equal(t, "اردو", DisplayName("ur"))
	assert.Equal(t, "!!", DisplayName("!!"))
	assert.NotEmpty(t, DisplayName("fr"))
}

func TestFormatLanguageList(t *testing.T) {
	out := FormatLanguageList("ml")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "  en"))
	assert.True(t, strings.HasPrefix(lines[6], "* ml"))
	assert.Contains(t, lines[6], "മലയാളം")
}

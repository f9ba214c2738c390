// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package i18n holds the interface strings for English and ten Indian
// languages, and maps locale tags onto them.
//
//	lang := i18n.Match(os.Getenv("LANG")) // "hi_IN.UTF-8" -> "hi"
//	fmt.Println(i18n.T(lang, i18n.KeyWelcomeMessage))
package i18n

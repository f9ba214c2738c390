// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lawyer builds "find a local lawyer" web search links.
//
// A query names a city and one of the supported areas of law. The result
// is a Google search URL the user can open in a browser; nothing is
// fetched from the network.
//
// # Usage
//
//	q, err := lawyer.ParseQuery(strings.Fields("New Delhi Family"))
//	link := q.URL() // https://www.google.com/search?q=Family+lawyer+in+New+Delhi
package lawyer

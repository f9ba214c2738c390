// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant provides the HTTP client for the legal-information
// text-generation endpoint.
//
// A question is prefixed with the configured base prompt, path-escaped, and
// fetched with a GET request as {endpoint}/{prompt}. The response body is
// the answer in Markdown.
//
// # Key Types
//
//   - Client: paced, retrying client; safe for concurrent use
//   - ClientConfig: endpoint, prompt, timeout, retry and pacing settings
//   - ClientError: typed error matched with errors.Is against the sentinels
//
// # Usage
//
//	client := assistant.NewClientWithConfig(assistant.ConfigFrom(cfg))
//	answer, err := client.Ask(ctx, question)
//	switch {
//	case assistant.IsCanceled(err):
//	    // user pressed Esc
//	case errors.Is(err, assistant.ErrEmptyResponse):
//	    // nothing to show
//	}
package assistant

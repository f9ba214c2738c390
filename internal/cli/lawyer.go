// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jeranaias/legalchat/internal/i18n"
	"github.com/jeranaias/legalchat/internal/lawyer"
	"github.com/jeranaias/legalchat/internal/ui/styles"
)

// =============================================================================
// LAWYER COMMAND
// =============================================================================

// LawyerResult is the --json payload of the lawyer command.
type LawyerResult struct {
	City  string `json:"city"`
	Area  string `json:"area"`
	Query string `json:"query"`
	URL   string `json:"url"`
}

// Lawyer prints a web search link for lawyers in a city.
func (a *App) Lawyer() error {
	q, err := a.lawyerQuery()
	if err != nil {
		return err
	}
	log.Printf("LAWYER_SEARCH | area=%s", q.Area)

	if a.Args.JSON {
		return NewJSONResponse("lawyer", LawyerResult{
			City:  q.City,
			Area:  q.Area,
			Query: q.Text(),
			URL:   q.URL(),
		}).Write(a.Stdout)
	}
	if a.Args.Quiet {
		fmt.Fprintln(a.Stdout, q.URL())
		return nil
	}

	lang := a.Language()
	ConfigureColor(a.Stdout)
	fmt.Fprintln(a.Stdout, styles.RenderInfo(i18n.T(lang, i18n.KeyFindLocalLawyer)))
	fmt.Fprintf(a.Stdout, "  %s: %s\n", i18n.T(lang, i18n.KeyEnterCity), q.City)
	fmt.Fprintf(a.Stdout, "  %s: %s\n", i18n.T(lang, i18n.KeyAreaOfLaw), q.Area)
	fmt.Fprintln(a.Stdout, q.URL())
	return nil
}

// lawyerQuery builds the query from the positional words and --area.
func (a *App) lawyerQuery() (lawyer.Query, error) {
	var (
		q   lawyer.Query
		err error
	)
	if a.Args.Area != "" {
		q, err = lawyer.NewQuery(a.Args.Query, a.Args.Area)
	} else {
		q, err = lawyer.ParseQuery(strings.Fields(a.Args.Query))
	}

	switch {
	case errors.Is(err, lawyer.ErrNoCity):
		return q, NewValidationErrorWithExample("city", "", "city is required",
			`legalchat lawyer "New Delhi" Family`)
	case errors.Is(err, lawyer.ErrUnknownArea):
		area := a.Args.Area
		if area == "" {
			area = strings.TrimSpace(a.Args.Query[strings.LastIndex(a.Args.Query, ",")+1:])
		}
		return q, NewValidationError("area", area, "must be one of "+lawyer.AreaList())
	}
	return q, err
}

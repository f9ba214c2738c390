// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lawyer

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// SearchEndpoint is the base of every generated link.
const SearchEndpoint = "https://www.google.com/search"

// DefaultArea is used when the query names no area.
const DefaultArea = "Civil"

// Areas lists the supported areas of law in display order.
var Areas = []string{"Civil", "Criminal", "Family", "Corporate", "Tax", "Intellectual Property"}

var (
	// ErrNoCity is returned when the city is blank.
	ErrNoCity = errors.New("city is required")
	// ErrUnknownArea is returned for an area outside Areas.
	ErrUnknownArea = errors.New("unknown area of law")
)

// Query is a validated lawyer search.
type Query struct {
	City string
	Area string
}

// ParseArea returns the canonical spelling of an area of law. Matching
// ignores case and collapses inner whitespace, dashes and underscores.
func ParseArea(s string) (string, error) {
	want := normalize(s)
	for _, a := range Areas {
		if strings.EqualFold(a, want) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w %q (choose %s)", ErrUnknownArea, strings.TrimSpace(s), AreaList())
}

// AreaList joins Areas for help and error text.
func AreaList() string {
	return strings.Join(Areas, ", ")
}

// NewQuery validates city and area. An empty area means DefaultArea.
func NewQuery(city, area string) (Query, error) {
	city = strings.Join(strings.Fields(city), " ")
	if city == "" {
		return Query{}, ErrNoCity
	}
	if strings.TrimSpace(area) == "" {
		return Query{City: city, Area: DefaultArea}, nil
	}
	canonical, err := ParseArea(area)
	if err != nil {
		return Query{}, err
	}
	return Query{City: city, Area: canonical}, nil
}

// ParseQuery reads "CITY [AREA]" from command arguments.
//
// With a comma, the text after the last comma is the area and must be
// valid ("Navi Mumbai, Tax"). Without one, a trailing one or two word
// area is split off when it matches; otherwise every word is the city.
func ParseQuery(args []string) (Query, error) {
	line := strings.Join(args, " ")
	if i := strings.LastIndex(line, ","); i >= 0 {
		return NewQuery(line[:i], line[i+1:])
	}

	words := strings.Fields(line)
	for n := 2; n >= 1; n-- {
		if len(words) <= n {
			continue
		}
		if area, err := ParseArea(strings.Join(words[len(words)-n:], " ")); err == nil {
			return NewQuery(strings.Join(words[:len(words)-n], " "), area)
		}
	}
	return NewQuery(line, "")
}

// Text is the search phrase, e.g. "Family lawyer in Pune".
func (q Query) Text() string {
	return q.Area + " lawyer in " + q.City
}

// URL returns the search link for q.
func (q Query) URL() string {
	return SearchEndpoint + "?q=" + url.QueryEscape(q.Text())
}

// SearchURL validates city and area and returns the search link.
func SearchURL(city, area string) (string, error) {
	q, err := NewQuery(city, area)
	if err != nil {
		return "", err
	}
	return q.URL(), nil
}

func normalize(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"unicode"
)

// snakeCase converts a configuration key to snake_case.
//
// Words are split on any non-alphanumeric rune, on lower-to-upper case
// transitions ("authEndpoint" -> "auth_endpoint"), at the end of an acronym
// ("HTTPAddress" -> "http_address") and between letters and digits
// ("oauth2Url" -> "oauth_2_url").
func snakeCase(key string) string {
	words := splitWords(key)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

func splitWords(s string) []string {
	runes := []rune(s)
	words := make([]string, 0, 4)
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if wordBoundary(runes, i) {
			flush(i)
			start = i
		}
	}
	flush(len(runes))

	return words
}

// wordBoundary reports whether a new word starts at runes[i]. runes[i-1] is
// known to be alphanumeric.
func wordBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]

	switch {
	case unicode.IsDigit(prev) != unicode.IsDigit(cur):
		return true
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur):
		// "HTTPAddress": the "A" opens a new word because a lower-case
		// letter follows it.
		return i+1 < len(runes) && unicode.IsLower(runes[i+1])
	default:
		return false
	}
}

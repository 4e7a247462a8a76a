// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

// Package slug generates URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are used as human-readable identifiers for blogs, categories,
// courses and lessons (e.g., "آموزش-گولنگ" or "intro-to-go"). Unlike a
// plain ASCII slugifier, Persian letters (U+0600..U+06FF) are preserved
// verbatim since they form the bulk of the platform's content titles.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// disallowed matches any sequence outside the slug alphabet:
	// lowercase Latin letters, digits, Persian letters, and hyphens.
	disallowed = regexp.MustCompile(`[^a-z0-9\x{0600}-\x{06FF}-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents and Arabic diacritics).
// 3. Converts to lowercase.
// 4. Replaces characters outside the slug alphabet with hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
func From(s string) string {
	// 1. Normalize and remove combining marks
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Replace whitespace and special chars with hyphens
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	// 4. Clean up hyphenation
	result = disallowed.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// WithTimestampSuffix appends the last four digits of the current Unix
// millisecond clock to a slug. Used to disambiguate on uniqueness
// collisions (e.g. two lessons titled "مقدمه" across courses).
func WithTimestampSuffix(s string) string {
	ms := fmt.Sprintf("%d", time.Now().UnixMilli())
	return s + "-" + ms[len(ms)-4:]
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

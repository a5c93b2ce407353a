// Package rename customizes the starter template's branding.
//
// It derives case forms from the chosen project name and applies an ordered
// list of literal string replacements to a fixed set of template files.
// Substitution is string-level, not structural: a rule silently no-ops when
// its anchor text is absent from a file.
package rename

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Rule pairs a literal source string with its replacement.
type Rule struct {
	From string
	To   string
}

// wordSplit matches the separators between words in a project name.
var wordSplit = regexp.MustCompile(`[-_\s]+`)

// nonKebab matches everything not allowed in a kebab-case name.
var nonKebab = regexp.MustCompile(`[^a-z0-9-]`)

// TitleCase converts a project name to Title Case.
// Words are split on hyphens, underscores, and whitespace.
func TitleCase(name string) string {
	words := wordSplit.Split(strings.TrimSpace(name), -1)
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// KebabCase converts a project name to kebab-case: lowercased, spaces
// become hyphens, and everything else outside [a-z0-9-] is stripped.
func KebabCase(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	return nonKebab.ReplaceAllString(s, "")
}

// Rules returns the ordered replacement rules for a project name.
// Longer literals come first so overlapping markers resolve correctly.
// The function is pure: the same name always yields the same rules.
func Rules(projectName string) []Rule {
	title := TitleCase(projectName)
	kebab := KebabCase(projectName)

	return []Rule{
		{
			From: "Welcome to Stencil Starter",
			To:   "Welcome to " + title,
		},
		{
			From: "Stencil Starter | Modern Next.js Template",
			To:   title,
		},
		{
			From: "A production-ready Next.js starter with sensible defaults",
			To:   fmt.Sprintf("%s - a Next.js application", title),
		},
		{
			From: "Stencil Starter",
			To:   title,
		},
		{
			From: "stencil-starter",
			To:   kebab,
		},
	}
}

// ValidName reports whether a project name contains only letters, numbers,
// spaces, hyphens, and underscores, and is non-empty.
func ValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == ' ', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

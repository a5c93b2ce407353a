package seo

import (
	"fmt"
	"strings"
)

// BusinessTypes enumerates the valid businessType values, in menu order.
var BusinessTypes = []string{"blog", "ecommerce", "portfolio", "saas", "corporate", "other"}

// businessTypeHints describe each type in the selection menu.
var businessTypeHints = map[string]string{
	"blog":      "Articles and editorial content",
	"ecommerce": "Online store",
	"portfolio": "Personal or agency showcase",
	"saas":      "Software product",
	"corporate": "Company site",
	"other":     "Anything else",
}

// Social holds optional social profile handles. Empty fields mean absent;
// empty strings are never persisted.
type Social struct {
	Twitter  string `json:"twitter,omitempty"`
	Facebook string `json:"facebook,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Config is a validated SEO configuration. It is built once per run, either
// from a template file or interactively, and consumed immediately by the
// generators.
type Config struct {
	SiteName     string
	SiteTagline  string
	SiteURL      string
	Author       string
	Locale       string
	BusinessType string
	Keywords     []string
	Social       Social
}

// IsBlog reports whether blog-only content (article schema, article guide
// section) should be generated.
func (c *Config) IsBlog() bool {
	return c.BusinessType == "blog"
}

// ChangeFrequency returns the sitemap change frequency for the site.
func (c *Config) ChangeFrequency() string {
	if c.IsBlog() {
		return "daily"
	}
	return "weekly"
}

// Normalize applies the canonical representation: trailing slash stripped
// from the site URL, locale defaulted to "en", whitespace trimmed, and
// empty-string socials collapsed to absent.
func (c *Config) Normalize() {
	c.SiteName = strings.TrimSpace(c.SiteName)
	c.SiteTagline = strings.TrimSpace(c.SiteTagline)
	c.Author = strings.TrimSpace(c.Author)
	c.SiteURL = strings.TrimSuffix(strings.TrimSpace(c.SiteURL), "/")

	if c.Locale == "" {
		c.Locale = "en"
	}

	kept := c.Keywords[:0]
	for _, k := range c.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			kept = append(kept, k)
		}
	}
	c.Keywords = kept

	c.Social.Twitter = strings.TrimSpace(c.Social.Twitter)
	c.Social.Facebook = strings.TrimSpace(c.Social.Facebook)
	c.Social.LinkedIn = strings.TrimSpace(c.Social.LinkedIn)
}

// validBusinessType reports whether t is one of the enumerated values.
func validBusinessType(t string) bool {
	for _, v := range BusinessTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Validate checks a decoded JSON document against the template schema and
// returns every violation, not just the first. An empty result means the
// candidate is acceptable.
func Validate(raw map[string]any) []string {
	var violations []string

	for _, field := range []string{"siteName", "siteTagline", "siteUrl", "author", "businessType"} {
		v, ok := raw[field]
		if !ok {
			violations = append(violations, field+" is required and must be a string")
			continue
		}
		if _, ok := v.(string); !ok {
			violations = append(violations, field+" is required and must be a string")
		}
	}

	if bt, ok := raw["businessType"].(string); ok && !validBusinessType(bt) {
		violations = append(violations,
			"businessType must be one of: "+strings.Join(BusinessTypes, ", "))
	}

	if v, ok := raw["keywords"]; !ok {
		violations = append(violations, "keywords is required and must be an array")
	} else if _, ok := v.([]any); !ok {
		violations = append(violations, "keywords is required and must be an array")
	}

	if v, ok := raw["locale"]; ok {
		if _, isString := v.(string); !isString {
			violations = append(violations, "locale must be a string")
		}
	}

	if v, ok := raw["social"]; ok {
		if _, isObject := v.(map[string]any); !isObject {
			violations = append(violations, "social must be an object")
		}
	}

	return violations
}

// Summary renders a human-readable recap shown before generation.
func (c *Config) Summary() string {
	var b strings.Builder

	line := func(label, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "  %-14s %s\n", label+":", value)
	}

	line("Site name", c.SiteName)
	line("Tagline", c.SiteTagline)
	line("URL", c.SiteURL)
	line("Author", c.Author)
	line("Locale", c.Locale)
	line("Type", c.BusinessType)
	line("Keywords", strings.Join(c.Keywords, ", "))
	line("Twitter", c.Social.Twitter)
	line("Facebook", c.Social.Facebook)
	line("LinkedIn", c.Social.LinkedIn)

	return b.String()
}

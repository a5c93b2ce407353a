package seo

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/stencil-kit/stencil/internal/errors"
	"github.com/stencil-kit/stencil/internal/output"
)

// ignoredFields are annotation fields tolerated in template files and
// stripped before validation.
var ignoredFields = []string{"_comments", "$schema"}

// LoadTemplate reads and validates a JSON template file. On validation
// failure every violation is printed and a coded error is returned; the
// caller falls back to the next input source and must not use any part of
// the failed candidate.
func LoadTemplate(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E110").
			WithDetail("Could not read " + path).
			Wrap(err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.New("E110").
			WithDetail(path + ": " + err.Error())
	}

	for _, field := range ignoredFields {
		delete(raw, field)
	}

	if violations := Validate(raw); len(violations) > 0 {
		for _, v := range violations {
			output.Warnf("%s", v)
		}
		return nil, errors.New("E102").
			WithDetail("Template " + path + " has " + strconv.Itoa(len(violations)) + " validation error(s)").
			WithSuggestion("Fix the template or answer the prompts interactively")
	}

	cfg := &Config{
		SiteName:     stringField(raw, "siteName"),
		SiteTagline:  stringField(raw, "siteTagline"),
		SiteURL:      stringField(raw, "siteUrl"),
		Author:       stringField(raw, "author"),
		Locale:       stringField(raw, "locale"),
		BusinessType: stringField(raw, "businessType"),
		Keywords:     stringSlice(raw, "keywords"),
	}

	if social, ok := raw["social"].(map[string]any); ok {
		cfg.Social = Social{
			Twitter:  stringField(social, "twitter"),
			Facebook: stringField(social, "facebook"),
			LinkedIn: stringField(social, "linkedin"),
		}
	}

	cfg.Normalize()
	return cfg, nil
}

// stringField returns raw[key] as a string, or "" when absent or mistyped.
func stringField(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

// stringSlice returns raw[key] as a string slice, skipping non-string
// elements.
func stringSlice(raw map[string]any, key string) []string {
	arr, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

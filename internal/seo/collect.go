package seo

import (
	"strings"

	"github.com/stencil-kit/stencil/internal/manifest"
	"github.com/stencil-kit/stencil/internal/prompt"
	"github.com/stencil-kit/stencil/internal/rename"
)

// Collect builds a Config by prompting for each field in turn. The site
// name default comes from the project's package.json (Title Cased), falling
// back to a generic default when the manifest is unreadable.
func Collect(p *prompt.Prompter, projectDir string) (*Config, error) {
	cfg := &Config{}

	defaultName := rename.TitleCase(manifest.Name(projectDir, "my-website"))

	var err error
	if cfg.SiteName, err = p.AskDefault("Site name", defaultName); err != nil {
		return nil, err
	}
	if cfg.SiteTagline, err = p.Ask("Site tagline"); err != nil {
		return nil, err
	}
	if cfg.SiteURL, err = p.Ask("Site URL (https://...)"); err != nil {
		return nil, err
	}
	if cfg.Author, err = p.Ask("Author or organization"); err != nil {
		return nil, err
	}
	if cfg.Locale, err = p.AskDefault("Locale", "en"); err != nil {
		return nil, err
	}

	options := make([]string, len(BusinessTypes))
	for i, bt := range BusinessTypes {
		options[i] = bt + " - " + businessTypeHints[bt]
	}
	choice, err := p.Select("Business type", options)
	if err != nil {
		return nil, err
	}
	cfg.BusinessType = BusinessTypes[choice]

	keywords, err := p.Ask("Keywords (comma-separated)")
	if err != nil {
		return nil, err
	}
	for _, k := range strings.Split(keywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			cfg.Keywords = append(cfg.Keywords, k)
		}
	}

	// Social fields are optional: blank answers never persist.
	if cfg.Social.Twitter, err = p.Ask("Twitter/X handle (optional)"); err != nil {
		return nil, err
	}
	if cfg.Social.Facebook, err = p.Ask("Facebook page (optional)"); err != nil {
		return nil, err
	}
	if cfg.Social.LinkedIn, err = p.Ask("LinkedIn page (optional)"); err != nil {
		return nil, err
	}

	cfg.Normalize()
	return cfg, nil
}

package seo

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stencil-kit/stencil/internal/prompt"
)

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	manifest := `{"name": "acme-shop"}`
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	// Answers in prompt order: site name (accept default), tagline, URL,
	// author, locale (accept default), business type, keywords, socials.
	input := strings.Join([]string{
		"",
		"Quality anvils",
		"https://acme.example/",
		"Acme Inc",
		"",
		"2",
		"anvils, acme, ",
		"@acme",
		"",
		"",
	}, "\n") + "\n"

	var out bytes.Buffer
	p := prompt.NewWith(strings.NewReader(input), &out)

	cfg, err := Collect(p, dir)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.SiteName != "Acme Shop" {
		t.Errorf("SiteName = %q, want Title Cased manifest name", cfg.SiteName)
	}
	if cfg.SiteURL != "https://acme.example" {
		t.Errorf("SiteURL = %q, must be normalized", cfg.SiteURL)
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q", cfg.Locale)
	}
	if cfg.BusinessType != "ecommerce" {
		t.Errorf("BusinessType = %q, want ecommerce", cfg.BusinessType)
	}
	if want := []string{"anvils", "acme"}; !reflect.DeepEqual(cfg.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", cfg.Keywords, want)
	}
	if cfg.Social.Twitter != "@acme" {
		t.Errorf("Twitter = %q", cfg.Social.Twitter)
	}
	if cfg.Social.Facebook != "" || cfg.Social.LinkedIn != "" {
		t.Error("blank socials must stay absent")
	}

	// The default site name is offered, Title Cased.
	if !strings.Contains(out.String(), "[Acme Shop]") {
		t.Errorf("site name default not offered:\n%s", out.String())
	}
}

func TestCollect_FallbackSiteName(t *testing.T) {
	// No package.json in the project directory.
	input := "\nt\nhttps://x.example\nme\n\n1\nk\n\n\n\n"
	p := prompt.NewWith(strings.NewReader(input), &bytes.Buffer{})

	cfg, err := Collect(p, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SiteName != "My Website" {
		t.Errorf("SiteName = %q, want fallback %q", cfg.SiteName, "My Website")
	}
	if cfg.BusinessType != "blog" {
		t.Errorf("BusinessType = %q, want blog", cfg.BusinessType)
	}
}

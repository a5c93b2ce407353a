package seo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testConfig(businessType string) *Config {
	return &Config{
		SiteName:     "Acme Shop",
		SiteTagline:  "Quality anvils",
		SiteURL:      "https://acme.example",
		Author:       "Acme Inc",
		Locale:       "en",
		BusinessType: businessType,
		Keywords:     []string{"anvils", "acme"},
		Social:       Social{Twitter: "@acme"},
	}
}

func TestFiles(t *testing.T) {
	files, err := Files(testConfig("ecommerce"))
	if err != nil {
		t.Fatal(err)
	}

	wantPaths := []string{
		"src/config/seo.ts",
		"src/lib/metadata.ts",
		"src/lib/structured-data.ts",
		"src/app/sitemap.ts",
		"src/app/robots.ts",
		"src/app/manifest.ts",
		"SEO-GUIDE.md",
	}
	if len(files) != len(wantPaths) {
		t.Fatalf("got %d files, want %d", len(files), len(wantPaths))
	}
	for i, want := range wantPaths {
		if files[i].Path != want {
			t.Errorf("files[%d].Path = %q, want %q", i, files[i].Path, want)
		}
		if files[i].Content == "" {
			t.Errorf("files[%d] (%s) is empty", i, want)
		}
	}
}

func TestGenerateSeoConfig(t *testing.T) {
	f, err := GenerateSeoConfig(testConfig("ecommerce"))
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		`siteName: "Acme Shop"`,
		`siteUrl: "https://acme.example"`,
		`keywords: ["anvils", "acme"]`,
		`twitter: "@acme"`,
	} {
		if !strings.Contains(f.Content, want) {
			t.Errorf("seo.ts missing %q:\n%s", want, f.Content)
		}
	}
	if strings.Contains(f.Content, "facebook:") {
		t.Error("absent socials must not be emitted")
	}
}

func TestGenerateMetadataHelper(t *testing.T) {
	f, err := GenerateMetadataHelper(testConfig("saas"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"export function buildMetadata()", "export function pageMetadata("} {
		if !strings.Contains(f.Content, want) {
			t.Errorf("metadata.ts missing %q", want)
		}
	}
}

func TestGenerateStructuredData_Blog(t *testing.T) {
	f, err := GenerateStructuredData(testConfig("blog"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(f.Content, "export function articleSchema(") {
		t.Error("blog structured data must include articleSchema")
	}
}

func TestGenerateStructuredData_NonBlog(t *testing.T) {
	f, err := GenerateStructuredData(testConfig("corporate"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(f.Content, "articleSchema") {
		t.Error("non-blog structured data must not include articleSchema")
	}
	for _, want := range []string{"organizationSchema", "websiteSchema", "breadcrumbSchema", "faqSchema", "jsonLd"} {
		if !strings.Contains(f.Content, want) {
			t.Errorf("structured-data.ts missing %q", want)
		}
	}
}

func TestGenerateSitemap_ChangeFrequency(t *testing.T) {
	blog, err := GenerateSitemap(testConfig("blog"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(blog.Content, `changeFrequency: "daily"`) {
		t.Error("blog sitemap must use daily change frequency")
	}

	shop, err := GenerateSitemap(testConfig("ecommerce"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(shop.Content, `changeFrequency: "weekly"`) {
		t.Error("non-blog sitemap must use weekly change frequency")
	}
}

func TestGenerateGuide_BlogSection(t *testing.T) {
	blog, err := GenerateGuide(testConfig("blog"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(blog.Content, "## Article SEO") {
		t.Error("blog guide must include the article section")
	}

	shop, err := GenerateGuide(testConfig("saas"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(shop.Content, "## Article SEO") {
		t.Error("non-blog guide must not include the article section")
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	files, err := Files(testConfig("portfolio"))
	if err != nil {
		t.Fatal(err)
	}

	if err := WriteFiles(dir, files); err != nil {
		t.Fatal(err)
	}

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.Path))
		if err != nil {
			t.Errorf("%s not written: %v", f.Path, err)
			continue
		}
		if string(data) != f.Content {
			t.Errorf("%s content mismatch", f.Path)
		}
	}
}

func TestWriteFiles_Overwrites(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "src/config/seo.ts")
	if err := os.MkdirAll(filepath.Dir(stale), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := Files(testConfig("other"))
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteFiles(dir, files); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(stale)
	if string(data) == "stale" {
		t.Error("existing file must be overwritten")
	}
}

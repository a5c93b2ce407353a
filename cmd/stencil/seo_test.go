package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testLayout = `import type { Metadata } from "next";
import "./globals.css";

export const metadata: Metadata = {
  title: "Stencil Starter | Modern Next.js Template",
};

export default function RootLayout({ children }: { children: React.ReactNode }) {
  return <html><body>{children}</body></html>;
}
`

const testSeoTemplate = `{
	"siteName": "Acme Store",
	"siteTagline": "Quality anvils",
	"siteUrl": "https://acme.example/",
	"author": "Acme Inc",
	"businessType": "ecommerce",
	"keywords": ["anvils"]
}`

func TestRunSeo_Template(t *testing.T) {
	dir := t.TempDir()
	layout := writeProjectFile(t, dir, "src/app/layout.tsx", testLayout)
	tmpl := writeProjectFile(t, dir, "seo.template.json", testSeoTemplate)

	// Single scripted answer: accept the generation confirm.
	p := scriptedPrompter("\n")

	if err := runSeo(p, dir, tmpl); err != nil {
		t.Fatal(err)
	}

	for _, rel := range []string{
		"src/config/seo.ts",
		"src/lib/metadata.ts",
		"src/lib/structured-data.ts",
		"src/app/sitemap.ts",
		"src/app/robots.ts",
		"src/app/manifest.ts",
		"SEO-GUIDE.md",
	} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("%s not generated: %v", rel, err)
		}
	}

	data, _ := os.ReadFile(filepath.Join(dir, "src/config/seo.ts"))
	if !strings.Contains(string(data), `siteUrl: "https://acme.example"`) {
		t.Errorf("seo.ts missing normalized site URL:\n%s", data)
	}

	data, _ = os.ReadFile(layout)
	if !strings.Contains(string(data), "export const metadata: Metadata = buildMetadata();") {
		t.Errorf("layout not patched:\n%s", data)
	}
}

func TestRunSeo_Declined(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "src/app/layout.tsx", testLayout)
	tmpl := writeProjectFile(t, dir, "seo.template.json", testSeoTemplate)

	// Explicit "n" at the confirm: nothing is written, the run still
	// succeeds.
	p := scriptedPrompter("n\n")

	if err := runSeo(p, dir, tmpl); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "src/config/seo.ts")); !os.IsNotExist(err) {
		t.Error("declined run must not generate files")
	}
}

func TestRunSeo_BadTemplateFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "src/app/layout.tsx", testLayout)
	bad := writeProjectFile(t, dir, "bad.json", `{"siteName": "x"}`)
	good := writeProjectFile(t, dir, "good.json", testSeoTemplate)

	// The flag template is rejected; the prompted path supplies a valid
	// one, then the confirm is accepted.
	p := scriptedPrompter(good + "\n\n")

	if err := runSeo(p, dir, bad); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "src/config/seo.ts"))
	if !strings.Contains(string(data), `siteName: "Acme Store"`) {
		t.Errorf("fallback template not applied:\n%s", data)
	}
}

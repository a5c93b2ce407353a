package seo

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/stencil-kit/stencil/internal/errors"
	"github.com/stencil-kit/stencil/internal/output"
)

// GeneratedFile is a rendered file ready to be written, with its path
// relative to the project directory.
type GeneratedFile struct {
	Path    string
	Content string
}

// templateData is the render context shared by all generators.
type templateData struct {
	*Config

	// KeywordsTS is the keywords slice as a TypeScript array literal.
	KeywordsTS string

	// ChangeFreq is the sitemap change frequency for the business type.
	ChangeFreq string
}

func newTemplateData(c *Config) templateData {
	var b strings.Builder
	b.WriteString("[")
	for i, k := range c.Keywords {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(k))
	}
	b.WriteString("]")

	return templateData{
		Config:     c,
		KeywordsTS: b.String(),
		ChangeFreq: c.ChangeFrequency(),
	}
}

// render executes a generator template against the config.
func render(name, text string, c *Config) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", errors.Newf(errors.CategoryCLI, "invalid template %s: %v", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newTemplateData(c)); err != nil {
		return "", errors.Newf(errors.CategoryCLI, "template execute error %s: %v", name, err)
	}

	return buf.String(), nil
}

// Files renders every generated file for the config, in write order.
func Files(c *Config) ([]GeneratedFile, error) {
	generators := []func(*Config) (GeneratedFile, error){
		GenerateSeoConfig,
		GenerateMetadataHelper,
		GenerateStructuredData,
		GenerateSitemap,
		GenerateRobots,
		GenerateManifest,
		GenerateGuide,
	}

	files := make([]GeneratedFile, 0, len(generators))
	for _, gen := range generators {
		f, err := gen(c)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// WriteFiles writes each generated file under dir, overwriting anything
// already there.
func WriteFiles(dir string, files []GeneratedFile) error {
	for _, f := range files {
		fullPath := filepath.Join(dir, f.Path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(fullPath, []byte(f.Content), 0644); err != nil {
			return err
		}
		output.Successf("Generated %s", output.StyleNoun.Render(f.Path))
	}
	return nil
}

// GenerateSeoConfig renders the site-wide SEO configuration module.
func GenerateSeoConfig(c *Config) (GeneratedFile, error) {
	content, err := render("seo-config", seoConfigTemplate, c)
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Path: "src/config/seo.ts", Content: content}, nil
}

// GenerateMetadataHelper renders the metadata helper module.
func GenerateMetadataHelper(c *Config) (GeneratedFile, error) {
	content, err := render("metadata", metadataTemplate, c)
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Path: "src/lib/metadata.ts", Content: content}, nil
}

// GenerateStructuredData renders the JSON-LD helper module. The article
// schema helper is included only for blogs.
func GenerateStructuredData(c *Config) (GeneratedFile, error) {
	content, err := render("structured-data", structuredDataTemplate, c)
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Path: "src/lib/structured-data.ts", Content: content}, nil
}

// GenerateSitemap renders the sitemap route module.
func GenerateSitemap(c *Config) (GeneratedFile, error) {
	content, err := render("sitemap", sitemapTemplate, c)
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Path: "src/app/sitemap.ts", Content: content}, nil
}

// GenerateRobots renders the robots route module.
func GenerateRobots(c *Config) (GeneratedFile, error) {
	content, err := render("robots", robotsTemplate, c)
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Path: "src/app/robots.ts", Content: content}, nil
}

// GenerateManifest renders the web app manifest route module.
func GenerateManifest(c *Config) (GeneratedFile, error) {
	content, err := render("manifest", manifestTemplate, c)
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Path: "src/app/manifest.ts", Content: content}, nil
}

// GenerateGuide renders the markdown usage guide. Blogs get an extra
// article-SEO walkthrough section.
func GenerateGuide(c *Config) (GeneratedFile, error) {
	content, err := render("guide", guideTemplate, c)
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Path: "SEO-GUIDE.md", Content: content}, nil
}

const seoConfigTemplate = `// Generated by stencil seo. Re-running the command overwrites this file.
export const seoConfig = {
  siteName: "{{.SiteName}}",
  siteTagline: "{{.SiteTagline}}",
  siteUrl: "{{.SiteURL}}",
  author: "{{.Author}}",
  locale: "{{.Locale}}",
  businessType: "{{.BusinessType}}",
  keywords: {{.KeywordsTS}},
  social: {
{{- if .Social.Twitter}}
    twitter: "{{.Social.Twitter}}",
{{- end}}
{{- if .Social.Facebook}}
    facebook: "{{.Social.Facebook}}",
{{- end}}
{{- if .Social.LinkedIn}}
    linkedin: "{{.Social.LinkedIn}}",
{{- end}}
  },
} as const;

export type SeoConfig = typeof seoConfig;
`

const metadataTemplate = `// Generated by stencil seo. Re-running the command overwrites this file.
import type { Metadata } from "next";
import { seoConfig } from "@/config/seo";

/**
 * buildMetadata returns the site-wide default metadata for the root layout.
 */
export function buildMetadata(): Metadata {
  return {
    metadataBase: new URL(seoConfig.siteUrl),
    title: {
      default: ` + "`${seoConfig.siteName} | ${seoConfig.siteTagline}`" + `,
      template: ` + "`%s | ${seoConfig.siteName}`" + `,
    },
    description: seoConfig.siteTagline,
    keywords: [...seoConfig.keywords],
    authors: [{ name: seoConfig.author }],
    openGraph: {
      type: "website",
      siteName: seoConfig.siteName,
      url: seoConfig.siteUrl,
      locale: "{{.Locale}}",
    },
{{- if .Social.Twitter}}
    twitter: {
      card: "summary_large_image",
      site: "{{.Social.Twitter}}",
    },
{{- end}}
  };
}

/**
 * pageMetadata merges a page title and description over the defaults.
 */
export function pageMetadata(title: string, description?: string): Metadata {
  const resolved = description ?? seoConfig.siteTagline;
  return {
    title,
    description: resolved,
    openGraph: {
      title,
      description: resolved,
      url: seoConfig.siteUrl,
    },
  };
}
`

const structuredDataTemplate = `// Generated by stencil seo. Re-running the command overwrites this file.
import { seoConfig } from "@/config/seo";

/**
 * organizationSchema describes the site owner for rich results.
 */
export function organizationSchema() {
  return {
    "@context": "https://schema.org",
    "@type": "Organization",
    name: seoConfig.siteName,
    url: seoConfig.siteUrl,
{{- if .Social.Twitter}}
    sameAs: ["https://twitter.com/{{.Social.Twitter}}"],
{{- end}}
  };
}

/**
 * websiteSchema describes the site itself.
 */
export function websiteSchema() {
  return {
    "@context": "https://schema.org",
    "@type": "WebSite",
    name: seoConfig.siteName,
    description: seoConfig.siteTagline,
    url: seoConfig.siteUrl,
    inLanguage: "{{.Locale}}",
  };
}

/**
 * breadcrumbSchema renders a breadcrumb trail from (name, path) pairs.
 */
export function breadcrumbSchema(items: { name: string; path: string }[]) {
  return {
    "@context": "https://schema.org",
    "@type": "BreadcrumbList",
    itemListElement: items.map((item, index) => ({
      "@type": "ListItem",
      position: index + 1,
      name: item.name,
      item: ` + "`${seoConfig.siteUrl}${item.path}`" + `,
    })),
  };
}

/**
 * faqSchema renders an FAQ page from question/answer pairs.
 */
export function faqSchema(entries: { question: string; answer: string }[]) {
  return {
    "@context": "https://schema.org",
    "@type": "FAQPage",
    mainEntity: entries.map((entry) => ({
      "@type": "Question",
      name: entry.question,
      acceptedAnswer: { "@type": "Answer", text: entry.answer },
    })),
  };
}
{{if .IsBlog}}
/**
 * articleSchema describes a blog article for rich results.
 */
export function articleSchema(args: {
  title: string;
  description: string;
  path: string;
  publishedAt: string;
  modifiedAt?: string;
}) {
  return {
    "@context": "https://schema.org",
    "@type": "Article",
    headline: args.title,
    description: args.description,
    url: ` + "`${seoConfig.siteUrl}${args.path}`" + `,
    datePublished: args.publishedAt,
    dateModified: args.modifiedAt ?? args.publishedAt,
    author: { "@type": "Person", name: seoConfig.author },
    publisher: { "@type": "Organization", name: seoConfig.siteName },
  };
}
{{end}}
/**
 * jsonLd serializes a schema object for a <script type="application/ld+json"> tag.
 */
export function jsonLd(schema: object) {
  return { __html: JSON.stringify(schema) };
}
`

const sitemapTemplate = `// Generated by stencil seo. Re-running the command overwrites this file.
import type { MetadataRoute } from "next";
import { seoConfig } from "@/config/seo";

export default function sitemap(): MetadataRoute.Sitemap {
  return [
    {
      url: seoConfig.siteUrl,
      lastModified: new Date(),
      changeFrequency: "{{.ChangeFreq}}",
      priority: 1,
    },
    {
      url: ` + "`${seoConfig.siteUrl}/about`" + `,
      lastModified: new Date(),
      changeFrequency: "{{.ChangeFreq}}",
      priority: 0.8,
    },
  ];
}
`

const robotsTemplate = `// Generated by stencil seo. Re-running the command overwrites this file.
import type { MetadataRoute } from "next";
import { seoConfig } from "@/config/seo";

export default function robots(): MetadataRoute.Robots {
  return {
    rules: {
      userAgent: "*",
      allow: "/",
      disallow: ["/api/"],
    },
    sitemap: ` + "`${seoConfig.siteUrl}/sitemap.xml`" + `,
  };
}
`

const manifestTemplate = `// Generated by stencil seo. Re-running the command overwrites this file.
import type { MetadataRoute } from "next";
import { seoConfig } from "@/config/seo";

export default function manifest(): MetadataRoute.Manifest {
  return {
    name: seoConfig.siteName,
    short_name: seoConfig.siteName,
    description: seoConfig.siteTagline,
    start_url: "/",
    display: "standalone",
    background_color: "#ffffff",
    theme_color: "#0f172a",
  };
}
`

const guideTemplate = `# SEO Guide for {{.SiteName}}

This project was configured with ` + "`stencil seo`" + `. Generated files:

- ` + "`src/config/seo.ts`" + ` - the single source of truth for site metadata
- ` + "`src/lib/metadata.ts`" + ` - Next.js Metadata helpers
- ` + "`src/lib/structured-data.ts`" + ` - JSON-LD schema helpers
- ` + "`src/app/sitemap.ts`" + `, ` + "`src/app/robots.ts`" + `, ` + "`src/app/manifest.ts`" + ` - route handlers

## Page metadata

Use ` + "`pageMetadata`" + ` in any route segment:

` + "```tsx" + `
import { pageMetadata } from "@/lib/metadata";

export const metadata = pageMetadata("About", "About {{.SiteName}}");
` + "```" + `

## Structured data

Render a schema in a server component:

` + "```tsx" + `
import { jsonLd, websiteSchema } from "@/lib/structured-data";

<script type="application/ld+json" dangerouslySetInnerHTML={jsonLd(websiteSchema())} />
` + "```" + `
{{if .IsBlog}}
## Article SEO

For each post, emit an article schema and per-page metadata:

` + "```tsx" + `
import { jsonLd, articleSchema } from "@/lib/structured-data";
import { pageMetadata } from "@/lib/metadata";

export const metadata = pageMetadata(post.title, post.excerpt);

<script
  type="application/ld+json"
  dangerouslySetInnerHTML={jsonLd(
    articleSchema({
      title: post.title,
      description: post.excerpt,
      path: ` + "`/blog/${post.slug}`" + `,
      publishedAt: post.publishedAt,
    })
  )}
/>
` + "```" + `

Keep your sitemap fresh: the generated sitemap uses a "daily" change
frequency for blogs, so search engines revisit often.
{{end}}
## Checklist

- [ ] Verify {{.SiteURL}}/sitemap.xml renders
- [ ] Verify {{.SiteURL}}/robots.txt renders
- [ ] Submit the sitemap in Google Search Console
- [ ] Add Open Graph images under ` + "`src/app/opengraph-image`" + `
`

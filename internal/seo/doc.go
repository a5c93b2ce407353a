// Package seo builds and applies the SEO scaffold for a starter project.
//
// A Config is produced from exactly one of two sources per run, a JSON
// template file or interactive collection, validated by the same rules
// either way, then consumed immediately by a fixed set of pure generators
// that render TypeScript modules (config, metadata helpers, structured
// data, sitemap, robots, manifest) and a markdown guide. Generated files
// always overwrite; the root layout is instead patched in place.
//
// # Template files
//
// A template is a JSON object:
//
//	{
//	  "siteName": "Acme",
//	  "siteTagline": "Ship faster",
//	  "siteUrl": "https://acme.dev",
//	  "author": "Acme Inc",
//	  "businessType": "saas",
//	  "keywords": ["acme", "tools"],
//	  "locale": "en",
//	  "social": { "twitter": "@acme" }
//	}
//
// The _comments and $schema fields are tolerated and ignored. locale
// defaults to "en"; social fields are optional and empty values are never
// persisted.
package seo

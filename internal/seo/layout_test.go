package seo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleLayout = `import type { Metadata } from "next";
import { Inter } from "next/font/google";
import "./globals.css";

const inter = Inter({ subsets: ["latin"] });

export const metadata: Metadata = {
  title: "Stencil Starter | Modern Next.js Template",
  description: "A production-ready Next.js starter with sensible defaults",
  other: { note: "braces { inside } strings" },
};

export default function RootLayout({ children }: { children: React.ReactNode }) {
  return (
    <html lang="en">
      <body className={inter.className}>{children}</body>
    </html>
  );
}
`

func writeLayout(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.tsx")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUpdateLayout(t *testing.T) {
	path := writeLayout(t, sampleLayout)

	if err := UpdateLayout(path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	got := string(data)

	if !strings.Contains(got, `import { buildMetadata } from "@/lib/metadata";`) {
		t.Errorf("missing helper import:\n%s", got)
	}
	if !strings.Contains(got, "export const metadata: Metadata = buildMetadata();") {
		t.Errorf("metadata export not replaced:\n%s", got)
	}
	if strings.Contains(got, `title: "Stencil Starter`) {
		t.Errorf("old metadata object still present:\n%s", got)
	}
	// The import goes right after the stylesheet import.
	if !strings.Contains(got, "import \"./globals.css\";\nimport { buildMetadata }") {
		t.Errorf("import not anchored after globals.css:\n%s", got)
	}
	// Everything after the metadata export is untouched.
	if !strings.Contains(got, "export default function RootLayout") {
		t.Errorf("layout body lost:\n%s", got)
	}
}

func TestUpdateLayout_Idempotent(t *testing.T) {
	path := writeLayout(t, sampleLayout)

	if err := UpdateLayout(path); err != nil {
		t.Fatal(err)
	}
	first, _ := os.ReadFile(path)

	if err := UpdateLayout(path); err != nil {
		t.Fatal(err)
	}
	second, _ := os.ReadFile(path)

	if string(first) != string(second) {
		t.Errorf("second run must leave the file byte-identical:\n--- first\n%s\n--- second\n%s", first, second)
	}
}

func TestUpdateLayout_MissingAnchor(t *testing.T) {
	path := writeLayout(t, `export const metadata: Metadata = { title: "x" };
`)

	if err := UpdateLayout(path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	got := string(data)
	if !strings.HasPrefix(got, `import { buildMetadata } from "@/lib/metadata";`) {
		t.Errorf("import must fall back to the top of the file:\n%s", got)
	}
	if !strings.Contains(got, "metadata: Metadata = buildMetadata();") {
		t.Errorf("metadata not replaced:\n%s", got)
	}
}

func TestUpdateLayout_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.tsx")
	if err := UpdateLayout(path); err != nil {
		t.Errorf("missing layout must be a warning, not an error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("missing layout must not be created")
	}
}

func TestUpdateLayout_NoMetadataExport(t *testing.T) {
	content := `import "./globals.css";

export default function RootLayout() { return null; }
`
	path := writeLayout(t, content)

	if err := UpdateLayout(path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "export default function RootLayout") {
		t.Error("layout body lost")
	}
}

func TestReplaceMetadataBlock_NestedBraces(t *testing.T) {
	content := metadataMarker + `{
  openGraph: { images: [{ url: "/og.png" }] },
};
rest`

	got, ok := replaceMetadataBlock(content)
	if !ok {
		t.Fatal("expected a replacement")
	}
	if !strings.HasSuffix(got, "buildMetadata();\nrest") {
		t.Errorf("nested object not fully consumed:\n%s", got)
	}
}

func TestReplaceMetadataBlock_BracesInStrings(t *testing.T) {
	content := metadataMarker + `{
  description: "closing } brace and };",
  template: ` + "`${weird} } text`" + `,
};
rest`

	got, ok := replaceMetadataBlock(content)
	if !ok {
		t.Fatal("expected a replacement")
	}
	if !strings.HasSuffix(got, "buildMetadata();\nrest") {
		t.Errorf("string braces miscounted:\n%s", got)
	}
}

func TestMatchBrace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"flat", `{a}`, 2},
		{"nested", `{a{b}c}`, 6},
		{"quoted brace", `{"}"}`, 4},
		{"escaped quote", `{"\"}"}`, 6},
		{"unbalanced", `{a{b}`, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchBrace(tt.in); got != tt.want {
				t.Errorf("matchBrace(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

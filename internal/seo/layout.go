package seo

import (
	"os"
	"strings"

	"github.com/stencil-kit/stencil/internal/errors"
	"github.com/stencil-kit/stencil/internal/output"
)

// metadataMarker opens the metadata export the patcher replaces.
const metadataMarker = "export const metadata: Metadata = "

// layout imports added by the patcher. Each is guarded individually so a
// partially patched file converges on re-run.
var layoutImports = []string{
	`import { buildMetadata } from "@/lib/metadata";`,
}

// layoutAnchor is the import the new ones are inserted after.
const layoutAnchor = `import "./globals.css";`

// UpdateLayout patches the root layout to reference the generated metadata
// helper: imports are spliced in once, and the existing metadata object
// literal is replaced with a buildMetadata() call. The replacement finds
// the object's closing brace by brace counting, not by searching for the
// first "};" in the file.
func UpdateLayout(layoutPath string) error {
	data, err := os.ReadFile(layoutPath)
	if err != nil {
		if os.IsNotExist(err) {
			output.Warnf("Layout %s not found, skipping layout update", layoutPath)
			return nil
		}
		return errors.New("E131").Wrap(err)
	}

	content := string(data)
	modified := false

	for _, imp := range layoutImports {
		if strings.Contains(content, imp) {
			continue
		}
		if strings.Contains(content, layoutAnchor) {
			content = strings.Replace(content, layoutAnchor, layoutAnchor+"\n"+imp, 1)
		} else {
			output.Warnf("Anchor import %q not found in %s, inserting at top", layoutAnchor, layoutPath)
			content = imp + "\n" + content
		}
		modified = true
	}

	replaced, ok := replaceMetadataBlock(content)
	if !ok {
		output.Warnf("No metadata export found in %s, leaving metadata untouched", layoutPath)
	} else if replaced != content {
		content = replaced
		modified = true
	}

	if !modified {
		output.Infof("%s already up to date", layoutPath)
		return nil
	}

	if err := os.WriteFile(layoutPath, []byte(content), 0644); err != nil {
		return errors.New("E131").Wrap(err)
	}

	output.Successf("Updated %s", output.StyleNoun.Render(layoutPath))
	return nil
}

// replaceMetadataBlock swaps the metadata export's value for a
// buildMetadata() call. Returns ok=false when no metadata export exists.
func replaceMetadataBlock(content string) (string, bool) {
	start := strings.Index(content, metadataMarker)
	if start < 0 {
		return content, false
	}

	valueStart := start + len(metadataMarker)
	rest := content[valueStart:]

	// Already patched.
	if strings.HasPrefix(rest, "buildMetadata()") {
		return content, true
	}

	if !strings.HasPrefix(rest, "{") {
		return content, false
	}

	end := matchBrace(rest)
	if end < 0 {
		return content, false
	}

	// Swallow a trailing semicolon after the object literal.
	tail := rest[end+1:]
	if strings.HasPrefix(tail, ";") {
		tail = tail[1:]
	}

	return content[:valueStart] + "buildMetadata();" + tail, true
}

// matchBrace returns the index of the brace closing the object literal that
// opens at s[0], or -1 when unbalanced. String literals and template
// literals are skipped so braces inside them don't miscount.
func matchBrace(s string) int {
	depth := 0
	var quote byte

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if quote != 0 {
			if ch == '\\' {
				i++
				continue
			}
			if ch == quote {
				quote = 0
			}
			continue
		}

		switch ch {
		case '"', '\'', '`':
			quote = ch
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

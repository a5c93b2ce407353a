package libraries

import (
	"os"
	"strings"

	"github.com/stencil-kit/stencil/internal/errors"
	"github.com/stencil-kit/stencil/internal/output"
)

// clientDirective marks a file as a client component.
const clientDirective = `"use client";`

// childrenToken is the placeholder the provider wraps in the root layout.
const childrenToken = "{children}"

// Provider describes a root-level provider to splice into the layout.
type Provider struct {
	// Name is the JSX component name (e.g., "HeroUIProvider").
	Name string

	// ImportLine is the full import statement to add.
	ImportLine string

	// AnchorImport is the existing import the new one is inserted after.
	AnchorImport string
}

// InjectProvider rewrites the layout file to import the provider and wrap
// the children placeholder with it. The operation is idempotent: when the
// provider name already appears in the file, nothing is touched. A missing
// layout file is a warning, not an error.
func InjectProvider(layoutPath string, p Provider) error {
	data, err := os.ReadFile(layoutPath)
	if err != nil {
		if os.IsNotExist(err) {
			output.Warnf("Layout %s not found, skipping provider setup", layoutPath)
			return nil
		}
		return errors.New("E131").Wrap(err)
	}

	content := string(data)

	if strings.Contains(content, p.Name) {
		output.Infof("%s already configured in %s", p.Name, layoutPath)
		return nil
	}

	// Client-side rendering directive goes first.
	if !strings.Contains(content, `"use client"`) && !strings.Contains(content, "'use client'") {
		content = clientDirective + "\n\n" + content
	}

	// Splice the import after its anchor. When the anchor is missing,
	// insert after the client directive and say so, rather than silently
	// dropping the import.
	if strings.Contains(content, p.AnchorImport) {
		content = strings.Replace(content, p.AnchorImport, p.AnchorImport+"\n"+p.ImportLine, 1)
	} else {
		output.Warnf("Anchor import %q not found in %s, inserting at top", p.AnchorImport, layoutPath)
		content = insertAfterDirective(content, p.ImportLine)
	}

	if !strings.Contains(content, childrenToken) {
		output.Warnf("No %s placeholder in %s, provider not wrapped", childrenToken, layoutPath)
		return nil
	}

	wrapped := "<" + p.Name + ">" + childrenToken + "</" + p.Name + ">"
	content = strings.Replace(content, childrenToken, wrapped, 1)

	if err := os.WriteFile(layoutPath, []byte(content), 0644); err != nil {
		return errors.New("E131").Wrap(err)
	}

	output.Successf("Wrapped layout children with %s", p.Name)
	return nil
}

// insertAfterDirective inserts line after the "use client" directive, or at
// the very top when no directive is present.
func insertAfterDirective(content, line string) string {
	for _, directive := range []string{clientDirective, `'use client';`, `"use client"`, `'use client'`} {
		if idx := strings.Index(content, directive); idx >= 0 {
			end := idx + len(directive)
			if nl := strings.IndexByte(content[end:], '\n'); nl >= 0 {
				end += nl + 1
			}
			return content[:end] + line + "\n" + content[end:]
		}
	}
	return line + "\n" + content
}

// patchTailwind adds a content glob and a plugin to the Tailwind config.
// Both splices are idempotent and anchored on the array openers; a missing
// config file is a warning and the run continues.
func patchTailwind(path, contentGlob, plugin string) {
	data, err := os.ReadFile(path)
	if err != nil {
		output.Warnf("Tailwind config %s not found, skipping", path)
		return
	}

	content := string(data)
	modified := false

	if contentGlob != "" && !strings.Contains(content, contentGlob) {
		if idx := strings.Index(content, "content: ["); idx >= 0 {
			insert := "content: [\n    \"" + contentGlob + "\","
			content = strings.Replace(content, "content: [", insert, 1)
			modified = true
		} else {
			output.Warnf("No content array in %s, glob not added", path)
		}
	}

	if plugin != "" && !strings.Contains(content, plugin) {
		if idx := strings.Index(content, "plugins: ["); idx >= 0 {
			insert := "plugins: [" + plugin + ", "
			content = strings.Replace(content, "plugins: [", insert, 1)
			modified = true
		} else {
			output.Warnf("No plugins array in %s, plugin not added", path)
		}
	}

	if !modified {
		output.Infof("%s already configured", path)
		return
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		output.Warnf("Could not write %s: %v", path, err)
		return
	}

	output.Successf("Updated %s", path)
}

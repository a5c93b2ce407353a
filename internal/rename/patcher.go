package rename

import (
	"os"
	"strings"

	"github.com/stencil-kit/stencil/internal/output"
)

// DefaultFiles is the fixed list of template files carrying branding text,
// relative to the project directory.
var DefaultFiles = []string{
	"package.json",
	"README.md",
	"src/app/layout.tsx",
	"src/app/page.tsx",
	"src/app/about/page.tsx",
	"public/site.webmanifest",
}

// UpdateFile applies the rules to a single file, replacing every
// occurrence of each matched literal. The return value strictly reflects
// whether the file was written. A missing file is reported as a warning
// and never an error.
func UpdateFile(path string, rules []Rule) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			output.Warnf("%s %s", output.StyleNoun.Render(path), output.StatusStyle(output.StatusNotFound).Render(output.StatusNotFound))
		} else {
			output.Warnf("%s: %v", path, err)
		}
		return false
	}

	content := string(data)
	modified := false

	for _, rule := range rules {
		if strings.Contains(content, rule.From) {
			content = strings.ReplaceAll(content, rule.From, rule.To)
			modified = true
		}
	}

	if !modified {
		output.Infof("%s %s", output.StyleNoun.Render(path), output.StatusStyle(output.StatusUnchanged).Render(output.StatusUnchanged))
		return false
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		output.Warnf("%s: %v", path, err)
		return false
	}

	output.Infof("%s %s", output.StyleNoun.Render(path), output.StatusStyle(output.StatusUpdated).Render(output.StatusUpdated))
	return true
}

// UpdateFiles applies the rules to each file in order and returns the
// number of files written.
func UpdateFiles(paths []string, rules []Rule) int {
	updated := 0
	for _, path := range paths {
		if UpdateFile(path, rules) {
			updated++
		}
	}
	return updated
}

// Package manifest reads the starter project's package.json.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/stencil-kit/stencil/internal/errors"
)

// PackageJSON holds the manifest fields the CLI cares about.
type PackageJSON struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// Load reads package.json from the given project directory.
func Load(dir string) (*PackageJSON, error) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return nil, errors.New("E112").Wrap(err)
	}

	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errors.New("E112").
			WithDetail("package.json is not valid JSON: " + err.Error())
	}

	return &pkg, nil
}

// Name returns the package name from dir's manifest, or fallback when the
// manifest is unreadable or the name is empty.
func Name(dir, fallback string) string {
	pkg, err := Load(dir)
	if err != nil || pkg.Name == "" {
		return fallback
	}
	return pkg.Name
}

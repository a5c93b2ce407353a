// Package settings loads tool-level configuration for the Stencil CLI.
//
// Settings come from an optional .stencilrc.json in the project directory,
// overridden by STENCIL_* environment variables. Everything has a working
// default; the file is never required.
package settings

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/stencil-kit/stencil/internal/errors"
)

const (
	// FileName is the optional settings file looked up in the project directory.
	FileName = ".stencilrc.json"

	// envPrefix is the environment variable prefix (STENCIL_PACKAGE_MANAGER etc.).
	envPrefix = "STENCIL"
)

// Settings holds tool-level configuration for a run.
type Settings struct {
	// PackageManager is the JavaScript package manager to shell out to
	// (npm, pnpm, yarn, or bun).
	PackageManager string `mapstructure:"packageManager"`

	// LayoutPath is the root layout file, relative to the project directory.
	LayoutPath string `mapstructure:"layoutPath"`

	// TailwindConfig is the Tailwind configuration file, relative to the
	// project directory.
	TailwindConfig string `mapstructure:"tailwindConfig"`

	// PatchFiles overrides the fixed list of files the renamer patches.
	PatchFiles []string `mapstructure:"patchFiles"`
}

// Defaults returns a Settings with every field populated.
func Defaults() *Settings {
	return &Settings{
		PackageManager: "npm",
		LayoutPath:     filepath.Join("src", "app", "layout.tsx"),
		TailwindConfig: "tailwind.config.ts",
	}
}

// Load reads settings for the given project directory. A missing settings
// file is not an error; a malformed one is.
func Load(dir string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("packageManager", "STENCIL_PACKAGE_MANAGER")
	_ = v.BindEnv("layoutPath", "STENCIL_LAYOUT_PATH")
	_ = v.BindEnv("tailwindConfig", "STENCIL_TAILWIND_CONFIG")

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.New("E111").Wrap(err)
		}
	}
	// Missing settings file: defaults plus env vars apply.

	cfg := Defaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.New("E111").Wrap(err)
	}

	return cfg.withDefaults(), nil
}

// withDefaults fills in defaults for any empty field.
func (s *Settings) withDefaults() *Settings {
	def := Defaults()
	if s.PackageManager == "" {
		s.PackageManager = def.PackageManager
	}
	if s.LayoutPath == "" {
		s.LayoutPath = def.LayoutPath
	}
	if s.TailwindConfig == "" {
		s.TailwindConfig = def.TailwindConfig
	}
	return s
}

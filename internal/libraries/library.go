package libraries

import (
	"context"

	"github.com/stencil-kit/stencil/internal/errors"
	"github.com/stencil-kit/stencil/internal/pm"
	"github.com/stencil-kit/stencil/internal/settings"
)

// Env carries everything a library setup step needs.
type Env struct {
	// Dir is the project directory.
	Dir string

	// Settings holds tool-level configuration (layout path, tailwind config).
	Settings *settings.Settings

	// PM runs package-manager commands.
	PM *pm.Manager
}

// Library is one installable component-library variant.
type Library interface {
	// Key is the stable registry key (heroui, shadcn, chakra, none).
	Key() string

	// Name is the human-readable library name.
	Name() string

	// Description is a one-line summary shown in the selection menu.
	Description() string

	// Packages returns the runtime packages to install.
	Packages() []string

	// DevPackages returns the development packages to install.
	DevPackages() []string

	// Setup performs library-specific configuration after installation.
	// Implementations report recoverable step failures as warnings and
	// return an error only for fatal conditions.
	Setup(ctx context.Context, env *Env) error

	// Instructions returns static post-install notes, empty when none.
	Instructions() string
}

// order fixes the menu and listing order.
var order = []string{"none", "heroui", "shadcn", "chakra"}

// registry maps library keys to their implementations.
var registry = map[string]Library{
	"none":   &noneLibrary{},
	"heroui": &herouiLibrary{},
	"shadcn": &shadcnLibrary{},
	"chakra": &chakraLibrary{},
}

// Get returns a library by key.
func Get(key string) (Library, error) {
	lib, ok := registry[key]
	if !ok {
		return nil, errors.New("E103").
			WithDetail("Library '" + key + "' is not in the registry").
			WithSuggestion("Available libraries: none, heroui, shadcn, chakra")
	}
	return lib, nil
}

// All returns every registered library in menu order.
func All() []Library {
	libs := make([]Library, 0, len(order))
	for _, key := range order {
		libs = append(libs, registry[key])
	}
	return libs
}

// noneLibrary is the "skip" variant: no packages, no setup.
type noneLibrary struct{}

func (l *noneLibrary) Key() string          { return "none" }
func (l *noneLibrary) Name() string         { return "None" }
func (l *noneLibrary) Description() string  { return "Skip component library installation" }
func (l *noneLibrary) Packages() []string   { return nil }
func (l *noneLibrary) DevPackages() []string { return nil }
func (l *noneLibrary) Instructions() string { return "" }

func (l *noneLibrary) Setup(ctx context.Context, env *Env) error {
	return nil
}

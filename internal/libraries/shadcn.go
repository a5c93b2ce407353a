package libraries

import (
	"context"

	"github.com/stencil-kit/stencil/internal/output"
)

// shadcnCommonComponents are scaffolded one by one after init. Each add is
// independent: a failure is a warning, not a fatal error, so a partial
// install still leaves a working project.
var shadcnCommonComponents = []string{"button", "card", "input", "label", "dialog"}

// shadcnLibrary scaffolds shadcn/ui through its own CLI instead of
// installing a runtime package.
type shadcnLibrary struct{}

func (l *shadcnLibrary) Key() string         { return "shadcn" }
func (l *shadcnLibrary) Name() string        { return "shadcn/ui" }
func (l *shadcnLibrary) Description() string { return "Copy-paste components built on Radix UI and Tailwind" }

func (l *shadcnLibrary) Packages() []string    { return nil }
func (l *shadcnLibrary) DevPackages() []string { return nil }

func (l *shadcnLibrary) Setup(ctx context.Context, env *Env) error {
	if err := env.PM.Scaffold(ctx, "Initializing shadcn/ui...", "shadcn@latest", "init", "-d"); err != nil {
		return err
	}
	output.Successf("Initialized shadcn/ui")

	for _, comp := range shadcnCommonComponents {
		if err := env.PM.Scaffold(ctx, "Adding "+comp+"...", "shadcn@latest", "add", comp, "-y"); err != nil {
			output.Warnf("Could not add %s: %v", comp, err)
			continue
		}
		output.Successf("Added %s", comp)
	}

	return nil
}

func (l *shadcnLibrary) Instructions() string {
	return `shadcn/ui is ready. Next steps:

  1. Components live in src/components/ui and are yours to edit.
  2. Add more with: npx shadcn@latest add <component>
  3. Docs: https://ui.shadcn.com/docs`
}

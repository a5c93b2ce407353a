package libraries

import (
	"context"
	"fmt"
	"strings"

	"github.com/stencil-kit/stencil/internal/output"
)

// Setup installs a library's packages and runs its custom configuration.
// The "none" variant is a no-op. Package installation failures are fatal;
// setup steps decide for themselves what is recoverable.
func Setup(ctx context.Context, lib Library, env *Env) error {
	if lib.Key() == "none" {
		output.Infof("Skipping component library installation")
		return nil
	}

	fmt.Println()
	output.Infof("Setting up %s...", output.StyleNoun.Render(lib.Name()))
	fmt.Println()

	if pkgs := lib.Packages(); len(pkgs) > 0 {
		if err := env.PM.Install(ctx, pkgs, false); err != nil {
			return err
		}
	}

	if devPkgs := lib.DevPackages(); len(devPkgs) > 0 {
		if err := env.PM.Install(ctx, devPkgs, true); err != nil {
			return err
		}
	}

	if err := lib.Setup(ctx, env); err != nil {
		return err
	}

	if instructions := lib.Instructions(); instructions != "" {
		fmt.Println()
		fmt.Println(output.StyleHeading.Render("  " + lib.Name() + " setup notes"))
		fmt.Println()
		fmt.Println(indent(instructions, "  "))
	}

	return nil
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

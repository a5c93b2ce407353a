package libraries

import (
	"context"
	"path/filepath"
)

// herouiLibrary installs Hero UI and wires its provider and Tailwind plugin.
type herouiLibrary struct{}

func (l *herouiLibrary) Key() string         { return "heroui" }
func (l *herouiLibrary) Name() string        { return "Hero UI" }
func (l *herouiLibrary) Description() string { return "Beautiful, modern React UI library (formerly NextUI)" }

func (l *herouiLibrary) Packages() []string {
	return []string{"@heroui/react", "framer-motion"}
}

func (l *herouiLibrary) DevPackages() []string { return nil }

func (l *herouiLibrary) Setup(ctx context.Context, env *Env) error {
	layout := filepath.Join(env.Dir, env.Settings.LayoutPath)
	if err := InjectProvider(layout, Provider{
		Name:         "HeroUIProvider",
		ImportLine:   `import { HeroUIProvider } from "@heroui/react";`,
		AnchorImport: `import "./globals.css";`,
	}); err != nil {
		return err
	}

	patchTailwind(
		filepath.Join(env.Dir, env.Settings.TailwindConfig),
		"./node_modules/@heroui/theme/dist/**/*.{js,ts,jsx,tsx}",
		"heroui()",
	)

	return nil
}

func (l *herouiLibrary) Instructions() string {
	return `Hero UI is ready. Next steps:

  1. Import components from @heroui/react:
       import { Button } from "@heroui/react";
  2. Add the heroui plugin import to tailwind.config.ts:
       import { heroui } from "@heroui/theme";
  3. Docs: https://www.heroui.com/docs/guide/introduction`
}

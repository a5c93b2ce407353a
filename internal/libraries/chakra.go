package libraries

import (
	"context"
	"path/filepath"
)

// chakraLibrary installs Chakra UI and wires its root provider.
type chakraLibrary struct{}

func (l *chakraLibrary) Key() string         { return "chakra" }
func (l *chakraLibrary) Name() string        { return "Chakra UI" }
func (l *chakraLibrary) Description() string { return "Accessible component library with a prop-based styling system" }

func (l *chakraLibrary) Packages() []string {
	return []string{"@chakra-ui/react", "@emotion/react", "@emotion/styled", "framer-motion"}
}

func (l *chakraLibrary) DevPackages() []string { return nil }

func (l *chakraLibrary) Setup(ctx context.Context, env *Env) error {
	layout := filepath.Join(env.Dir, env.Settings.LayoutPath)
	return InjectProvider(layout, Provider{
		Name:         "ChakraProvider",
		ImportLine:   `import { ChakraProvider } from "@chakra-ui/react";`,
		AnchorImport: `import "./globals.css";`,
	})
}

func (l *chakraLibrary) Instructions() string {
	return `Chakra UI is ready. Next steps:

  1. Import components from @chakra-ui/react:
       import { Button } from "@chakra-ui/react";
  2. Customize the theme by passing one to ChakraProvider.
  3. Docs: https://chakra-ui.com/docs/get-started`
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stencil-kit/stencil/internal/errors"
	"github.com/stencil-kit/stencil/internal/output"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌┬┐┌─┐┌┐┌┌─┐┬┬
  └─┐ │ ├┤ ││││  ││
  └─┘ ┴ └─┘┘└┘└─┘┴┴─┘
`

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "stencil",
		Short: "Setup tooling for the Stencil starter template",
		Long: `Stencil customizes a freshly cloned starter template.

It replaces the template's placeholder branding with your project name,
installs an optional component library, and generates a complete SEO
scaffold (metadata helpers, structured data, sitemap, robots, manifest).

  stencil init my-app      rename the template and pick a component library
  stencil seo              generate the SEO scaffold
  stencil libraries        list supported component libraries`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		initCmd(),
		seoCmd(),
		librariesCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the Stencil ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

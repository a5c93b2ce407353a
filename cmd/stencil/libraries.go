package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-kit/stencil/internal/libraries"
	"github.com/stencil-kit/stencil/internal/output"
)

func librariesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "libraries",
		Short: "List supported component libraries",
		Long:  `List the component libraries stencil init can install.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("  Supported component libraries:")
			fmt.Println()

			for _, lib := range libraries.All() {
				fmt.Printf("    %-8s %s\n",
					output.StyleNoun.Render(lib.Key()),
					lib.Description())
			}

			fmt.Println()
			fmt.Println("  Install one with: stencil init --library=<key>")
			fmt.Println()
		},
	}
}

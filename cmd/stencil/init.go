package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stencil-kit/stencil/internal/errors"
	"github.com/stencil-kit/stencil/internal/libraries"
	"github.com/stencil-kit/stencil/internal/output"
	"github.com/stencil-kit/stencil/internal/pm"
	"github.com/stencil-kit/stencil/internal/prompt"
	"github.com/stencil-kit/stencil/internal/rename"
	"github.com/stencil-kit/stencil/internal/settings"
)

func initCmd() *cobra.Command {
	var (
		dir     string
		library string
	)

	cmd := &cobra.Command{
		Use:   "init [project-name]",
		Short: "Customize the starter template",
		Long: `Customize the starter template with your project name.

Replaces the template's placeholder branding across a fixed set of files,
then optionally installs a component library.

Component libraries:
  none      Skip component library installation
  heroui    Hero UI (formerly NextUI)
  shadcn    shadcn/ui
  chakra    Chakra UI

Examples:
  stencil init my-app
  stencil init "Acme Store" --library=none
  stencil init --dir=../my-app`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runInit(prompt.New(), name, dir, library)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Project directory")
	cmd.Flags().StringVarP(&library, "library", "l", "", "Component library (none, heroui, shadcn, chakra)")

	return cmd
}

func runInit(p *prompt.Prompter, name, dir, libraryKey string) error {
	printBanner()
	fmt.Println("  Customizing your starter template...")
	fmt.Println()

	if name == "" {
		var err error
		name, err = p.Ask("Project name")
		if err != nil {
			return err
		}
	}

	if !rename.ValidName(name) {
		return errors.New("E101").
			WithDetail("Project name '" + name + "' contains unsupported characters").
			WithSuggestion("Use letters, numbers, spaces, hyphens, and underscores")
	}

	cfg, err := settings.Load(dir)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	// Branding substitution over the fixed file list.
	output.Infof("Renaming template to %s...", output.StyleNoun.Render(name))
	fmt.Println()

	files := cfg.PatchFiles
	if len(files) == 0 {
		files = rename.DefaultFiles
	}
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = filepath.Join(dir, f)
	}

	updated := rename.UpdateFiles(paths, rename.Rules(name))
	fmt.Println()
	output.Successf("Updated %d of %d files", updated, len(paths))
	fmt.Println()

	// Component library selection.
	lib, err := chooseLibrary(p, libraryKey)
	if err != nil {
		return err
	}

	manager := pm.New(cfg.PackageManager, dir)

	// Optional full dependency reinstall before library setup.
	reinstall, err := p.Confirm("Reinstall dependencies first", false)
	if err != nil {
		return err
	}
	if reinstall {
		if err := manager.InstallAll(ctx); err != nil {
			return err
		}
	}

	env := &libraries.Env{Dir: dir, Settings: cfg, PM: manager}
	if err := libraries.Setup(ctx, lib, env); err != nil {
		return err
	}

	fmt.Println()
	output.Successf("%s is ready", name)
	fmt.Println()
	fmt.Println("  To get started:")
	fmt.Println()
	fmt.Printf("    %s run dev\n", cfg.PackageManager)
	fmt.Println()
	fmt.Println("  Then configure SEO with: stencil seo")
	fmt.Println()

	return nil
}

// chooseLibrary resolves the library from the flag, or asks with a
// numbered menu that retries on invalid input.
func chooseLibrary(p *prompt.Prompter, key string) (libraries.Library, error) {
	if key != "" {
		return libraries.Get(key)
	}

	all := libraries.All()
	options := make([]string, len(all))
	for i, lib := range all {
		options[i] = fmt.Sprintf("%s - %s", lib.Name(), lib.Description())
	}

	choice, err := p.Select("Component library", options)
	if err != nil {
		return nil, err
	}
	return all[choice], nil
}

// signalContext returns a context cancelled by SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	return ctx, cancel
}

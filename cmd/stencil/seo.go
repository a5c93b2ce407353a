package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stencil-kit/stencil/internal/errors"
	"github.com/stencil-kit/stencil/internal/output"
	"github.com/stencil-kit/stencil/internal/prompt"
	"github.com/stencil-kit/stencil/internal/seo"
	"github.com/stencil-kit/stencil/internal/settings"
)

func seoCmd() *cobra.Command {
	var (
		dir          string
		templatePath string
	)

	cmd := &cobra.Command{
		Use:   "seo",
		Short: "Generate the SEO scaffold",
		Long: `Generate the SEO scaffold for your project.

Configuration is gathered from the first source that works:
  1. a template file passed with --template
  2. a template file path entered at the prompt
  3. interactive questions for every field

Generated files overwrite previous runs; the root layout is patched in
place to reference them.

Examples:
  stencil seo
  stencil seo --template=seo.template.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeo(prompt.New(), dir, templatePath)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Project directory")
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Path to a JSON template file")

	return cmd
}

func runSeo(p *prompt.Prompter, dir, templatePath string) error {
	printBanner()
	fmt.Println("  Configuring SEO...")
	fmt.Println()

	cfg, err := settings.Load(dir)
	if err != nil {
		return err
	}

	seoCfg, err := gatherSeoConfig(p, dir, templatePath)
	if err != nil {
		return err
	}

	// Recap, then confirm before touching the tree. Declining writes
	// nothing and still exits zero.
	fmt.Println()
	fmt.Println(output.StyleHeading.Render("  SEO configuration"))
	fmt.Println()
	fmt.Print(seoCfg.Summary())
	fmt.Println()

	proceed, err := p.Confirm("Generate SEO files", true)
	if err != nil {
		return err
	}
	if !proceed {
		output.Infof("Cancelled, nothing written")
		return nil
	}

	fmt.Println()

	files, err := seo.Files(seoCfg)
	if err != nil {
		return err
	}
	if err := seo.WriteFiles(dir, files); err != nil {
		return errors.FromError(err, "E132")
	}

	if err := seo.UpdateLayout(filepath.Join(dir, cfg.LayoutPath)); err != nil {
		return err
	}

	fmt.Println()
	output.Successf("SEO scaffold complete (%d files)", len(files))
	fmt.Println()
	fmt.Println("  Next steps are in " + output.StyleNoun.Render("SEO-GUIDE.md"))
	fmt.Println()

	return nil
}

// gatherSeoConfig walks the three configuration sources in order: the
// --template flag, a prompted template path, then full interactive
// collection. A validation failure in one source falls through to the
// next; a failed candidate is never partially trusted.
func gatherSeoConfig(p *prompt.Prompter, dir, templatePath string) (*seo.Config, error) {
	if templatePath != "" {
		cfg, err := seo.LoadTemplate(templatePath)
		if err == nil {
			output.Successf("Loaded template %s", output.StyleNoun.Render(templatePath))
			return cfg, nil
		}
		output.Warnf("Template %s rejected, falling back", templatePath)
		output.Debug("template error", "err", err)
	}

	path, err := p.Ask("Template file path (blank to answer interactively)")
	if err != nil {
		return nil, err
	}
	if path != "" {
		cfg, err := seo.LoadTemplate(path)
		if err == nil {
			output.Successf("Loaded template %s", output.StyleNoun.Render(path))
			return cfg, nil
		}
		output.Warnf("Template %s rejected, falling back to interactive setup", path)
		output.Debug("template error", "err", err)
	}

	fmt.Println()
	return seo.Collect(p, dir)
}

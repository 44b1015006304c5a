package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/pipeline"
	"github.com/matzehuels/jifkit/pkg/preset"
)

// presetsCommand creates the presets command. Without a subcommand it lists
// the catalog.
func (c *CLI) presetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Browse the built-in pattern catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(renderPresetList(preset.Grouped()))
			return nil
		},
	}

	cmd.AddCommand(c.presetsShowCommand())

	return cmd
}

// presetsShowCommand creates the "presets show" subcommand.
func (c *CLI) presetsShowCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Analyze a preset",
		Long: `Show analyzes a preset pattern with its own manipulators. Manipulators
given with --manip are inserted after them.`,
		Example: `  jifkit presets show ivy
  jifkit presets show 3-count-roundabout --svg roundabout.svg`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return presetSlugs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]
			if err := jiferr.ValidateSlug(slug); err != nil {
				return err
			}
			p, err := preset.Find(slug)
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render(p.Name))
			if p.WarningNote != "" {
				printWarning("%s", p.WarningNote)
			}
			return c.runAnalyze(cmd.Context(), pipeline.Options{Preset: slug}, &opts)
		},
	}

	opts.register(cmd.Flags())

	return cmd
}

// renderPresetList renders the catalog grouped by category, one preset per
// line as "slug  name".
func renderPresetList(groups []preset.Group) string {
	width := 0
	for _, g := range groups {
		for _, p := range g.Presets {
			width = max(width, len(p.Slug))
		}
	}

	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		category := g.Category
		if category == "" {
			category = "Other"
		}
		b.WriteString(StyleTitle.Render(category) + "\n")
		for _, p := range g.Presets {
			fmt.Fprintf(&b, "  %-*s  %s\n", width, p.Slug, StyleDim.Render(p.Name))
		}
	}
	return b.String()
}

func presetSlugs() []string {
	all := preset.All()
	slugs := make([]string, len(all))
	for i, p := range all {
		slugs[i] = p.Slug
	}
	return slugs
}

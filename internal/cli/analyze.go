package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/jifkit/pkg/causal"
	"github.com/matzehuels/jifkit/pkg/cycles"
	"github.com/matzehuels/jifkit/pkg/jif"
	"github.com/matzehuels/jifkit/pkg/notation"
	"github.com/matzehuels/jifkit/pkg/orbits"
	"github.com/matzehuels/jifkit/pkg/pipeline"
)

// analyzeOpts holds the flags shared by "analyze" and "presets show".
type analyzeOpts struct {
	format   string
	jugglers int
	manips   []string
	refresh  bool
	noCache  bool

	dot  string
	svg  string
	json string
}

func (o *analyzeOpts) register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&o.manips, "manip", "m", nil, "manipulator line to insert (repeatable)")
	fs.BoolVar(&o.refresh, "refresh", false, "ignore cached results")
	fs.BoolVar(&o.noCache, "no-cache", false, "disable the analysis cache")
	fs.StringVar(&o.dot, "dot", "", "write the orbit graph as Graphviz DOT to this file")
	fs.StringVar(&o.svg, "svg", "", "write the orbit graph as SVG to this file")
	fs.StringVar(&o.json, "json", "", "write the resolved pattern as JIF JSON to this file")
}

// artifacts returns the requested (format, path) pairs in render order.
func (o *analyzeOpts) artifacts() [][2]string {
	var out [][2]string
	for _, a := range [][2]string{
		{pipeline.ArtifactJSON, o.json},
		{pipeline.ArtifactDOT, o.dot},
		{pipeline.ArtifactSVG, o.svg},
	} {
		if a[1] != "" {
			out = append(out, a)
		}
	}
	return out
}

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze [notation|-]",
		Short: "Analyze a juggling pattern",
		Long: `Analyze parses a pattern, inserts manipulators and reports its throws,
orbits, object count and juggler cycle.

Prechac patterns have one line per juggler; pass "-" to read them from
stdin. A single token without whitespace is read as a siteswap shared by
--jugglers jugglers, and input starting with "{" as JIF JSON.`,
		Example: `  jifkit analyze 975 --jugglers 2
  printf '3B 3 3\n3A 3 3\n' | jifkit analyze - --manip '- - - sa - i1b'
  jifkit analyze - --svg orbits.svg < pattern.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("notation required (or - for stdin)")
			}
			input, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			return c.runAnalyze(cmd.Context(), pipeline.Options{Input: input, Format: opts.format}, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", string(notation.FormatAuto), "input format: auto, prechac, siteswap, json")
	cmd.Flags().IntVarP(&opts.jugglers, "jugglers", "n", 0, "jugglers sharing a siteswap (default from config)")
	opts.register(cmd.Flags())

	return cmd
}

// readInput returns arg, or all of r when arg is "-".
func readInput(r io.Reader, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// runAnalyze executes the pipeline, prints the result and writes any
// requested artifacts.
func (c *CLI) runAnalyze(ctx context.Context, base pipeline.Options, opts *analyzeOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	base.Jugglers = opts.jugglers
	if base.Jugglers == 0 {
		base.Jugglers = c.cfg.SiteswapJugglers
	}
	base.Manipulators = opts.manips
	base.Refresh = opts.refresh

	prog := newProgress(loggerFromContext(ctx))
	res, err := runner.Execute(ctx, base)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Analyzed %s pattern", res.Stats.Format))

	printResult(res)
	for _, line := range manipLines(opts.manips, res.Stats.Period) {
		printDetail("Inserted %s", line)
	}
	return writeArtifacts(ctx, runner, res, opts.artifacts())
}

func printResult(res *pipeline.Result) {
	p := res.Pattern
	fmt.Println()
	fmt.Println(statsLine(len(p.Jugglers), len(p.Throws), p.Period(), res.CacheHit))
	fmt.Println(renderThrowTable(p))

	printKeyValue("Objects", StyleNumber.Render(fmt.Sprint(res.Objects)))
	printKeyValue("Synchronous", fmt.Sprint(res.Synchronous))
	if len(res.JugglerCycle) > 0 {
		printKeyValue("Juggler cycle", cycles.Format(res.JugglerCycle))
	}
	if len(res.LimbCycle) > 0 {
		printKeyValue("Limb cycle", cycles.Format(res.LimbCycle))
	}
	for i, line := range interfaceLines(p, res.Interfaces) {
		key := ""
		if i == 0 {
			key = "Interfaces"
		}
		printKeyValue(key, line)
	}

	fmt.Println()
	fmt.Println(StyleTitle.Render(plural(len(res.Orbits), "orbit")))
	for i, line := range orbitLines(p, res.Orbits) {
		printDetail("%d. %s", i+1, line)
	}
}

// manipLines normalizes manipulator lines to one token per beat of the
// pattern. Lines that fail to parse are skipped; the pipeline reports them.
func manipLines(lines []string, period int) []string {
	var out []string
	for _, line := range lines {
		instrs, err := notation.ParseManipulator(line)
		if err != nil {
			continue
		}
		out = append(out, notation.FormatManipulator(instrs, period))
	}
	return out
}

// interfaceLines renders one glyph row per juggler, e.g. "A  v v -".
func interfaceLines(p *jif.Pattern, shapes [][]causal.Shape) []string {
	lines := make([]string, len(shapes))
	for j, row := range shapes {
		glyphs := make([]string, len(row))
		for i, s := range row {
			glyphs[i] = s.Glyph()
		}
		lines[j] = fmt.Sprintf("%-2s %s", p.JugglerLabel(jif.JugglerID(j)), strings.Join(glyphs, " "))
	}
	return lines
}

// orbitLines describes each orbit as its object count and throw labels.
func orbitLines(p *jif.Pattern, list []orbits.Orbit) []string {
	useLetters := notation.UseLetters(p)
	lines := make([]string, len(list))
	for i, o := range list {
		labels := make([]string, len(o))
		for j, t := range o {
			labels[j] = notation.ThrowLabel(p, t, useLetters)
		}
		lines[i] = fmt.Sprintf("%s: %s", plural(o.Objects(p.Period()), "object"), strings.Join(labels, " "))
	}
	return lines
}

func writeArtifacts(ctx context.Context, runner *pipeline.Runner, res *pipeline.Result, artifacts [][2]string) error {
	for _, a := range artifacts {
		format, path := a[0], a[1]

		var spinner *Spinner
		if format == pipeline.ArtifactSVG {
			spinner = newSpinnerWithContext(ctx, "Rendering SVG...")
			spinner.Start()
		}
		data, err := runner.Render(ctx, res, format)
		if spinner != nil {
			if err != nil {
				spinner.StopWithError("Rendering SVG failed")
			} else {
				spinner.Stop()
			}
		}
		if err != nil {
			return err
		}

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
		printFile(path)
	}
	return nil
}

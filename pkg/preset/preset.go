// Package preset provides the built-in catalog of named patterns.
//
// The catalog is embedded from presets.toml. Each preset holds notation
// text, either prechac lines or a single siteswap shared by two jugglers,
// and optional manipulator lines applied in order by [Preset.Load].
//
// Presets are addressed by slug, a lowercase dash-separated form of the
// name unless the catalog sets one explicitly:
//
//	p, err := preset.Load("ivy")
package preset

import (
	_ "embed"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/jif"
	"github.com/matzehuels/jifkit/pkg/manip"
	"github.com/matzehuels/jifkit/pkg/notation"
)

// SiteswapJugglers is how many jugglers share a siteswap preset.
const SiteswapJugglers = 2

//go:embed presets.toml
var catalogTOML string

// Preset is one named pattern of the catalog.
type Preset struct {
	Name         string   `toml:"name" json:"name"`
	Slug         string   `toml:"slug" json:"slug"`
	Category     string   `toml:"category" json:"category,omitempty"`
	Instructions []string `toml:"instructions" json:"instructions"`
	Manipulators []string `toml:"manipulators" json:"manipulators,omitempty"`
	// WarningNote flags presets whose instructions are known to be
	// incomplete or to trip the orbit calculation.
	WarningNote string `toml:"warning_note" json:"warningNote,omitempty"`
}

// Group is the presets of one category.
type Group struct {
	Category string   `json:"category"`
	Presets  []Preset `json:"presets"`
}

var (
	loadOnce sync.Once
	catalog  []Preset
	loadErr  error
)

func load() ([]Preset, error) {
	loadOnce.Do(func() {
		var f struct {
			Preset []Preset `toml:"preset"`
		}
		if _, err := toml.Decode(catalogTOML, &f); err != nil {
			loadErr = fmt.Errorf("decode preset catalog: %w", err)
			return
		}
		for i := range f.Preset {
			if f.Preset[i].Slug == "" {
				f.Preset[i].Slug = Slug(f.Preset[i].Name)
			}
		}
		catalog = f.Preset
	})
	return catalog, loadErr
}

// All returns every preset in catalog order. It panics if the embedded
// catalog is malformed.
func All() []Preset {
	presets, err := load()
	if err != nil {
		panic(err)
	}
	return slices.Clone(presets)
}

// Find returns the preset with the given slug.
func Find(slug string) (Preset, error) {
	for _, p := range All() {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Preset{}, jiferr.New(jiferr.ErrCodeNotFound, "preset not found: %s", slug)
}

// Load finds a preset by slug and builds its pattern.
func Load(slug string) (*jif.Pattern, error) {
	p, err := Find(slug)
	if err != nil {
		return nil, err
	}
	return p.Load()
}

// Load parses the preset's notation, resolves it and applies its
// manipulators.
func (p Preset) Load() (*jif.Pattern, error) {
	text := strings.Join(p.Instructions, "\n")

	var (
		input jif.PartialPattern
		err   error
	)
	if notation.Detect(text) == notation.FormatSiteswap {
		input, err = notation.ParseSiteswap(strings.TrimSpace(text), SiteswapJugglers)
	} else {
		input, err = notation.ParsePrechac(notation.Lines(text))
	}
	if err != nil {
		return nil, jiferr.Wrap(jiferr.GetCode(err), err, "preset %s", p.Slug)
	}

	manipulators, err := notation.ParseManipulators(p.Manipulators)
	if err != nil {
		return nil, jiferr.Wrap(jiferr.GetCode(err), err, "preset %s", p.Slug)
	}
	pattern, err := manip.AddAll(jif.Resolve(input), manipulators)
	if err != nil {
		return nil, jiferr.Wrap(jiferr.GetCode(err), err, "preset %s", p.Slug)
	}
	return pattern, nil
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Slug derives a slug from a preset name: runs of anything other than
// ASCII letters and digits become a single dash, the result is lowercased
// and leading or trailing dashes are dropped.
func Slug(name string) string {
	return strings.Trim(strings.ToLower(nonAlnum.ReplaceAllString(name, "-")), "-")
}

// Grouped returns the presets grouped by category. Categories are sorted
// alphabetically with the uncategorized group first, and presets within a
// group by case-insensitive name.
func Grouped() []Group {
	byCategory := make(map[string][]Preset)
	for _, p := range All() {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	groups := make([]Group, 0, len(byCategory))
	for category, presets := range byCategory {
		slices.SortStableFunc(presets, func(a, b Preset) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
		groups = append(groups, Group{Category: category, Presets: presets})
	}
	slices.SortFunc(groups, func(a, b Group) int {
		return strings.Compare(a.Category, b.Category)
	})
	return groups
}

package pipeline

import (
	"slices"
	"strings"

	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	jifio "github.com/matzehuels/jifkit/pkg/io"
	"github.com/matzehuels/jifkit/pkg/jif"
	"github.com/matzehuels/jifkit/pkg/notation"
	"github.com/matzehuels/jifkit/pkg/preset"
)

// Source is the notation a run starts from once presets are expanded.
type Source struct {
	Text         string
	Format       notation.Format
	Jugglers     int
	Manipulators []string
}

// ResolveSource expands opts into the notation to parse. A preset supplies
// its instructions and manipulator lines; any manipulators in opts are
// applied after the preset's own.
func ResolveSource(opts Options) (Source, error) {
	if opts.Preset == "" {
		format, err := notation.ParseFormat(opts.Format)
		if err != nil {
			return Source{}, err
		}
		return Source{
			Text:         opts.Input,
			Format:       format,
			Jugglers:     opts.Jugglers,
			Manipulators: opts.Manipulators,
		}, nil
	}

	p, err := preset.Find(opts.Preset)
	if err != nil {
		return Source{}, err
	}
	return Source{
		Text:         strings.Join(p.Instructions, "\n"),
		Format:       notation.FormatAuto,
		Jugglers:     preset.SiteswapJugglers,
		Manipulators: append(slices.Clone(p.Manipulators), opts.Manipulators...),
	}, nil
}

// Parse reads src into a resolved pattern. It returns the format actually
// parsed, which differs from src.Format only when that is auto.
func Parse(src Source) (*jif.Pattern, notation.Format, error) {
	format := src.Format
	if format == "" || format == notation.FormatAuto {
		format = notation.Detect(src.Text)
	}

	var (
		pp  jif.PartialPattern
		err error
	)
	switch format {
	case notation.FormatPrechac:
		pp, err = notation.ParsePrechac(notation.Lines(src.Text))
	case notation.FormatSiteswap:
		pp, err = notation.ParseSiteswap(strings.TrimSpace(src.Text), src.Jugglers)
	case notation.FormatJSON:
		pp, err = jifio.ReadJSON(strings.NewReader(src.Text))
	default:
		return nil, format, jiferr.New(jiferr.ErrCodeInvalidFormat, "unsupported notation format: %s", format)
	}
	if err != nil {
		return nil, format, err
	}
	p := jif.Resolve(pp)
	if err := checkBounds(p); err != nil {
		return nil, format, err
	}
	return p, format, nil
}

// checkBounds rejects patterns whose period or throw durations would make
// wrapping and throw tables arbitrarily expensive.
func checkBounds(p *jif.Pattern) error {
	period := p.Period()
	if err := jiferr.ValidatePeriod(period); err != nil {
		return err
	}
	for i, t := range p.Throws {
		if err := jiferr.ValidateDuration(t.Duration, period); err != nil {
			return jiferr.Wrap(jiferr.ErrCodeInvalidInput, err, "throw %d", i)
		}
	}
	return nil
}

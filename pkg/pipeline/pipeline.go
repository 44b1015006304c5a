// Package pipeline provides the core analysis pipeline for jifkit.
//
// This package implements the complete parse → manipulate → analyze pipeline
// shared by the CLI and the HTTP server, so both report identical results for
// the same input.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read prechac, siteswap or JSON notation (or a catalog preset)
//     and resolve it into a full pattern
//  2. Manipulate: Insert each manipulator line in order
//  3. Analyze: Compute orbits and the juggler and limb cycles
//
// Results are cached as JSON under a key derived from every option, and
// rendered artifacts (DOT, SVG, JSON) are cached per result.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(0), nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Input:        "3B 3 3\n3A 3 3",
//	    Manipulators: []string{"- - sA"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg, err := runner.Render(ctx, res, pipeline.ArtifactSVG)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/jifkit/pkg/cache"
	"github.com/matzehuels/jifkit/pkg/causal"
	jiferr "github.com/matzehuels/jifkit/pkg/errors"
	"github.com/matzehuels/jifkit/pkg/jif"
	"github.com/matzehuels/jifkit/pkg/notation"
	"github.com/matzehuels/jifkit/pkg/orbits"
	"github.com/matzehuels/jifkit/pkg/preset"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultJugglers is how many jugglers share a siteswap when the caller does
// not say.
const DefaultJugglers = preset.SiteswapJugglers

// Artifact formats accepted by [Runner.Render].
const (
	ArtifactDOT  = "dot"
	ArtifactSVG  = "svg"
	ArtifactJSON = "json"
)

// ValidArtifacts is the set of supported artifact formats.
var ValidArtifacts = map[string]bool{
	ArtifactDOT:  true,
	ArtifactSVG:  true,
	ArtifactJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input is the pattern notation. Exactly one of Input and Preset is set.
	Input string `json:"input,omitempty"`
	// Format is the notation of Input: auto, prechac, siteswap or json.
	Format string `json:"format,omitempty"`
	// Jugglers is the juggler count for siteswap input.
	Jugglers int `json:"jugglers,omitempty"`
	// Manipulators are manipulator lines applied in order, after any the
	// preset carries.
	Manipulators []string `json:"manipulators,omitempty"`
	// Preset is a catalog slug used instead of Input.
	Preset string `json:"preset,omitempty"`

	// Refresh skips the result cache lookup.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs. It is regenerated on cache hits.
	RunID string `json:"runId"`

	// Key is the result cache key; artifact keys derive from it.
	Key string `json:"key"`

	// Pattern is the resolved pattern with all manipulators inserted.
	Pattern *jif.Pattern `json:"pattern"`

	// Orbits are the pattern's orbits in discovery order.
	Orbits []orbits.Orbit `json:"orbits"`

	// Objects is the number of objects juggled.
	Objects int `json:"objects"`

	// JugglerCycle and LimbCycle are the closed role cycles, nil when the
	// permutation is not a single cycle.
	JugglerCycle []string `json:"jugglerCycle"`
	LimbCycle    []string `json:"limbCycle"`

	Synchronous bool `json:"synchronous"`

	// Interfaces holds each juggler's causal interface shape per beat.
	Interfaces [][]causal.Shape `json:"interfaces"`

	// Stats contains timing and size information.
	Stats Stats `json:"stats"`

	// CacheHit reports whether the result came from the cache.
	CacheHit bool `json:"cacheHit"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Format         string        `json:"format"`
	JugglerCount   int           `json:"jugglerCount"`
	ThrowCount     int           `json:"throwCount"`
	Period         int           `json:"period"`
	ParseTime      time.Duration `json:"parseTime"`
	ManipulateTime time.Duration `json:"manipulateTime"`
	AnalyzeTime    time.Duration `json:"analyzeTime"`
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateArtifact checks that an artifact format is valid.
func ValidateArtifact(format string) error {
	if !ValidArtifacts[format] {
		return jiferr.New(jiferr.ErrCodeInvalidFormat, "invalid artifact format: %q (must be one of: dot, svg, json)", format)
	}
	return nil
}

// ValidateManipulators checks that no manipulator line is blank. Grammar
// errors are reported by the parse stage.
func ValidateManipulators(lines []string) error {
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			return jiferr.New(jiferr.ErrCodeInvalidInput, "manipulator %d is empty", i+1)
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	switch {
	case o.Input == "" && o.Preset == "":
		return jiferr.New(jiferr.ErrCodeInvalidInput, "input or preset is required")
	case o.Input != "" && o.Preset != "":
		return jiferr.New(jiferr.ErrCodeInvalidInput, "input and preset are mutually exclusive")
	case o.Preset != "":
		if err := jiferr.ValidateSlug(o.Preset); err != nil {
			return err
		}
	default:
		if err := jiferr.ValidateNotation(o.Input); err != nil {
			return err
		}
	}

	format, err := notation.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	o.Format = string(format)

	if o.Jugglers == 0 {
		o.Jugglers = DefaultJugglers
	}
	if err := jiferr.ValidateJugglerCount(o.Jugglers); err != nil {
		return err
	}
	if err := ValidateManipulators(o.Manipulators); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ResultKeyOpts returns cache key options for the analysis result.
func (o *Options) ResultKeyOpts() cache.ResultKeyOpts {
	return cache.ResultKeyOpts{
		Input:        o.Input,
		Format:       o.Format,
		Jugglers:     o.Jugglers,
		Manipulators: o.Manipulators,
		Preset:       o.Preset,
	}
}

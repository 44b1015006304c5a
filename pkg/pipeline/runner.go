package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/jifkit/pkg/cache"
	"github.com/matzehuels/jifkit/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the cache lifetime of results and artifacts when
	// positive.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → manipulate → analyze pipeline with
// caching. Stage errors are wrapped but keep their error code.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	runID := uuid.NewString()
	logger := opts.Logger.With("run", runID[:8])
	key := r.Keyer.ResultKey(opts.ResultKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached Result
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.RunID = runID
				cached.CacheHit = true
				logger.Debug("result from cache", "key", key)
				return &cached, nil
			}
			// If deserialization fails, fall through to recompute
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 1: Parse
	src, err := ResolveSource(opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	observability.Pipeline().OnParseStart(ctx, string(src.Format))
	parseStart := time.Now()
	p, format, err := Parse(src)
	parseTime := time.Since(parseStart)
	throwCount := 0
	if p != nil {
		throwCount = len(p.Throws)
	}
	observability.Pipeline().OnParseComplete(ctx, string(format), throwCount, parseTime, err)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	logger.Info("parsed pattern",
		"format", format,
		"jugglers", len(p.Jugglers),
		"throws", len(p.Throws),
		"period", p.Period(),
		"duration", parseTime)

	// Stage 2: Manipulate
	observability.Pipeline().OnManipulateStart(ctx, len(src.Manipulators))
	manipStart := time.Now()
	p, err = Manipulate(p, src.Manipulators)
	manipTime := time.Since(manipStart)
	observability.Pipeline().OnManipulateComplete(ctx, len(src.Manipulators), manipTime, err)
	if err != nil {
		return nil, fmt.Errorf("manipulate: %w", err)
	}

	if len(src.Manipulators) > 0 {
		logger.Info("inserted manipulators",
			"count", len(src.Manipulators),
			"jugglers", p.JugglerLabels(),
			"duration", manipTime)
	}

	// Stage 3: Analyze
	analyzeStart := time.Now()
	result, err := Analyze(p)
	analyzeTime := time.Since(analyzeStart)
	orbitCount := 0
	if result != nil {
		orbitCount = len(result.Orbits)
	}
	observability.Pipeline().OnAnalyzeComplete(ctx, orbitCount, analyzeTime, err)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	logger.Info("analyzed pattern",
		"orbits", orbitCount,
		"objects", result.Objects,
		"duration", analyzeTime)

	result.RunID = runID
	result.Key = key
	result.Stats = Stats{
		Format:         string(format),
		JugglerCount:   len(p.Jugglers),
		ThrowCount:     len(p.Throws),
		Period:         p.Period(),
		ParseTime:      parseTime,
		ManipulateTime: manipTime,
		AnalyzeTime:    analyzeTime,
	}

	if data, err := json.Marshal(result); err == nil {
		_ = r.Cache.Set(ctx, key, data, r.ttl(cache.TTLResult))
	}
	return result, nil
}

// Render returns res rendered as format, caching the artifact under the
// result's key.
func (r *Runner) Render(ctx context.Context, res *Result, format string) ([]byte, error) {
	if err := ValidateArtifact(format); err != nil {
		return nil, err
	}

	cacheKey := r.Keyer.ArtifactKey(res.Key, format)
	if res.Key != "" {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			return data, nil
		}
	}

	start := time.Now()
	data, err := RenderArtifact(ctx, res, format)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("rendered artifact", "format", format, "bytes", len(data), "duration", time.Since(start))

	if res.Key != "" {
		_ = r.Cache.Set(ctx, cacheKey, data, r.ttl(cache.TTLArtifact))
	}
	return data, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

package cache

// Keyer builds cache keys.
type Keyer interface {
	// ResultKey identifies an analysis result.
	ResultKey(opts ResultKeyOpts) string
	// ArtifactKey identifies a rendering of a cached result.
	ArtifactKey(resultKey string, format string) string
}

// ResultKeyOpts holds every input that affects an analysis result.
type ResultKeyOpts struct {
	Input        string   `json:"input"`
	Format       string   `json:"format"`
	Jugglers     int      `json:"jugglers"`
	Manipulators []string `json:"manipulators"`
	Preset       string   `json:"preset"`
}

// DefaultKeyer hashes key options into "result:<sha256>" style keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey implements [Keyer]. Input and manipulator lines are compared
// after normalizing line endings and trailing whitespace.
func (DefaultKeyer) ResultKey(opts ResultKeyOpts) string {
	opts.Input = normalizeNotation(opts.Input)
	if opts.Manipulators != nil {
		lines := make([]string, len(opts.Manipulators))
		for i, line := range opts.Manipulators {
			lines[i] = normalizeNotation(line)
		}
		opts.Manipulators = lines
	}
	return hashKey("result", opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(resultKey, format string) string {
	return hashKey("artifact", resultKey, format)
}

package analysis

// Options holds the tuning values of the learn-from-edits loop. The defaults
// are the production values; none of them is derived from anything.
type Options struct {
	// PatternWindow is how many of the newest records are aggregated.
	PatternWindow int
	// ChangeWindow is how many subject, greeting and sign-off changes are kept.
	ChangeWindow int
	// ExampleWindow is how many (original, edited) pairs are kept.
	ExampleWindow int
	// RenderedExamples is how many of the kept pairs the style guide shows.
	RenderedExamples int
	// LengthThresholdPct must be exceeded for a length change to be recorded.
	// Zero records any change; only negative values fall back to the default.
	LengthThresholdPct int
	// SignerName is the name expected right after the sign-off phrase.
	SignerName string
}

func DefaultOptions() Options {
	return Options{
		PatternWindow:      20,
		ChangeWindow:       3,
		ExampleWindow:      5,
		RenderedExamples:   2,
		LengthThresholdPct: 20,
		SignerName:         "James",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.PatternWindow <= 0 {
		o.PatternWindow = def.PatternWindow
	}
	if o.ChangeWindow <= 0 {
		o.ChangeWindow = def.ChangeWindow
	}
	if o.ExampleWindow <= 0 {
		o.ExampleWindow = def.ExampleWindow
	}
	if o.RenderedExamples <= 0 {
		o.RenderedExamples = def.RenderedExamples
	}
	// Zero is a real threshold: every length change is recorded.
	if o.LengthThresholdPct < 0 {
		o.LengthThresholdPct = def.LengthThresholdPct
	}
	if o.SignerName == "" {
		o.SignerName = def.SignerName
	}
	return o
}

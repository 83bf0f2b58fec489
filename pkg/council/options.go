package council

import "github.com/plenumhq/plenum/pkg/council/rank"

// OutputMode selects what the caller gets back: the individual
// perspectives, a chairman synthesis, or both.
type OutputMode string

const (
	OutputModePerspectives OutputMode = "perspectives"
	OutputModeSynthesis    OutputMode = "synthesis"
	OutputModeBoth         OutputMode = "both"
)

// Valid reports whether m is a recognized output mode.
func (m OutputMode) Valid() bool {
	switch m {
	case OutputModePerspectives, OutputModeSynthesis, OutputModeBoth:
		return true
	}
	return false
}

// WantsSynthesis reports whether the mode includes a chairman synthesis.
func (m OutputMode) WantsSynthesis() bool {
	return m == OutputModeSynthesis || m == OutputModeBoth
}

// Options configures one deliberation. Use DefaultOptions as the base;
// the zero value disables review and anonymization, which is almost never
// what a caller wants.
type Options struct {
	// OutputMode defaults to "both".
	OutputMode OutputMode `json:"output_mode,omitempty"`

	// Anonymize controls whether judges and the chairman see neutral
	// labels (A1, A2, ...) instead of role names. Default true.
	Anonymize bool `json:"anonymize"`

	// Review controls the peer-review stage; when false the stage and all
	// aggregators are skipped. Default true.
	Review bool `json:"review"`

	// Reviewers optionally restricts the judge set to a subset of role
	// names. Empty means every successful role judges.
	Reviewers []string `json:"reviewers,omitempty"`

	// Aggregation names the primary method echoed in metadata. All three
	// methods are always computed regardless. Default "borda".
	Aggregation string `json:"aggregation,omitempty"`

	// ChairmanModel is the model that writes the synthesis. Required when
	// OutputMode requests one.
	ChairmanModel string `json:"chairman_model,omitempty"`
}

// DefaultOptions returns the documented defaults: both output modes,
// anonymized review by all successful roles, Borda as the primary method.
func DefaultOptions() Options {
	return Options{
		OutputMode:  OutputModeBoth,
		Anonymize:   true,
		Review:      true,
		Aggregation: rank.MethodBorda,
	}
}

// normalized fills unset fields with their defaults.
func (o Options) normalized() Options {
	if o.OutputMode == "" {
		o.OutputMode = OutputModeBoth
	}
	if o.Aggregation == "" {
		o.Aggregation = rank.MethodBorda
	}
	return o
}

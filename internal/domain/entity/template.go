package entity

// BuildSpec is the human-readable description of a template's key parts.
// These strings are matched against the finder price tables by keyword;
// they are not catalog ids.
type BuildSpec struct {
	CPU     string `json:"cpu" yaml:"cpu"`
	GPU     string `json:"gpu" yaml:"gpu"`
	RAM     string `json:"ram" yaml:"ram"`
	Storage string `json:"storage" yaml:"storage"`
	Cooling string `json:"cooling" yaml:"cooling"`
}

// BuildTemplate is one hand-authored candidate build evaluated by the
// finder. Templates are loaded from configuration data, not derived from
// the live catalog. Sub-scores are on a 0-100 scale.
type BuildTemplate struct {
	Name             string    `json:"name" yaml:"name"`
	BasePrice        float64   `json:"base_price" yaml:"basePrice"`
	Category         string    `json:"category" yaml:"category"`
	Spec             BuildSpec `json:"spec" yaml:"spec"`
	Features         []string  `json:"features" yaml:"features"`
	TargetUseCases   []string  `json:"target_use_cases" yaml:"targetUseCases"`
	PerformanceScore int       `json:"performance_score" yaml:"performanceScore"`
	ValueScore       int       `json:"value_score" yaml:"valueScore"`
	FutureProofScore int       `json:"future_proof_score" yaml:"futureProofScore"`
	PowerEfficiency  int       `json:"power_efficiency" yaml:"powerEfficiency"`
}

// TargetsUseCase reports whether the template lists the given intent tag.
func (t BuildTemplate) TargetsUseCase(tag string) bool {
	for _, candidate := range t.TargetUseCases {
		if candidate == tag {
			return true
		}
	}

	return false
}

// ScoredBuild is a template after one finder pass: the template itself,
// the price resolved against the finder price tables and the composite
// score used for ranking. Discarded after each pass.
type ScoredBuild struct {
	BuildTemplate

	AccuratePrice float64 `json:"accurate_price"`
	Score         int     `json:"score"`

	// Label is the presentation tag for the build's rank ("Best Match",
	// "Great Value", "Alternative Option"); it plays no part in scoring.
	Label string `json:"label"`
}

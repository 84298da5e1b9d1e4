package entity

// Purpose is the buyer's primary stated intent in the build finder.
const (
	PurposeGaming    = "gaming"
	PurposeCreative  = "creative"
	PurposeStreaming = "streaming"
	PurposeOffice    = "office"
	PurposeEveryday  = "everyday"
)

// Performance ambition tags.
const (
	PerformanceMaximum  = "maximum"
	PerformanceBalanced = "balanced"
	PerformanceQuiet    = "quiet"
)

// Rendering-heavy creative detail that shifts scoring weight towards raw
// performance.
const CreativeWork3DRendering = "3d-rendering"

// UserProfile captures the finder questionnaire answers: a budget in GBP,
// a primary purpose, optional sub-intent refinements and an optional
// performance ambition.
type UserProfile struct {
	Budget       float64 `json:"budget"`
	Purpose      string  `json:"purpose"`
	GamingType   string  `json:"gaming_type,omitempty"`
	CreativeWork string  `json:"creative_work,omitempty"`
	Performance  string  `json:"performance,omitempty"`
}

// Details returns every stated intent field, primary purpose first,
// skipping unanswered refinements. These are the tags matched against a
// template's target use cases.
func (p UserProfile) Details() []string {
	details := make([]string, 0, 3)
	for _, detail := range []string{p.Purpose, p.GamingType, p.CreativeWork} {
		if detail != "" {
			details = append(details, detail)
		}
	}

	return details
}

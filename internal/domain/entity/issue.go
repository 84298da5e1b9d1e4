package entity

// Severity classifies a compatibility issue. Critical issues describe a
// build that physically or electrically cannot work; warnings describe a
// build that will run but is mis-sized.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// CompatibilityIssue is one finding of the compatibility validator. Issue
// lists are derived data: recomputed from scratch on every selection
// change and never mutated in place.
type CompatibilityIssue struct {
	Severity           Severity `json:"severity"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Recommendation     string   `json:"recommendation"`
	AffectedComponents []string `json:"affected_components"`
}

package models

// Crisis severity levels. Any other value coming back from the language
// model is coerced to SeverityLow.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// CrisisAssessment is the result of screening one entry's text for signs of
// self-harm or suicidal ideation. It is transient: produced fresh on every
// evaluation, never persisted, so the judgment always reflects the exact
// current text.
type CrisisAssessment struct {
	// IsCrisis reports whether the text was flagged.
	IsCrisis bool `json:"is_crisis"`

	// Confidence is the model's confidence in the flag, clamped to [0,100].
	Confidence int `json:"confidence"`

	// DetectedIndicators lists the concrete indicator phrases found.
	// Defaults to an empty list when missing or malformed.
	DetectedIndicators []string `json:"detected_indicators"`

	// Severity is one of "low", "medium", "high". Defaults to "low".
	Severity string `json:"severity"`
}

// SafeCrisisAssessment returns the fail-safe default assessment used when the
// body is empty or the gateway call fails: never presume crisis on error.
func SafeCrisisAssessment() CrisisAssessment {
	return CrisisAssessment{
		IsCrisis:           false,
		Confidence:         0,
		DetectedIndicators: []string{},
		Severity:           SeverityLow,
	}
}

package models

const (
	// ProcessingText is shown in the output while a validation is in flight.
	ProcessingText = "Processing..."
	// ErrorPrefix prefixes every error placeholder in the output.
	ErrorPrefix = "Error: "

	CopyLabel   = "Copy"
	CopiedLabel = "Copied!"

	ValidateLabel   = "Validate Text"
	ValidatingLabel = "Validating..."
)

// QualityReport is the service's feedback on the normalized text.
type QualityReport struct {
	Reasoning         string  `json:"reasoning" yaml:"reasoning"`
	HumanQualityScore float64 `json:"human_quality_score" yaml:"human_quality_score"`
}

// Usage is the caller's daily quota as reported by the service.
type Usage struct {
	Count int `json:"count" yaml:"count"`
	Limit int `json:"limit" yaml:"limit"`
}

// Result is a successful validation response.
type Result struct {
	NormalizedText string         `json:"normalized_text" yaml:"normalized_text"`
	QualityReport  *QualityReport `json:"quality_report,omitempty" yaml:"quality_report,omitempty"`
	Usage          *Usage         `json:"usage,omitempty" yaml:"usage,omitempty"`
}

// ViewState is everything the form renders besides the input itself.
type ViewState struct {
	Output    string
	Report    *QualityReport
	Usage     *Usage
	Loading   bool
	Failed    bool // Output holds an error placeholder
	CopyLabel string
}

// CanCopy reports whether a copy would touch the clipboard.
func (s ViewState) CanCopy() bool {
	return s.Output != "" && !s.Loading && s.Output != ProcessingText
}

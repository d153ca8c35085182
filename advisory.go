package canvasmcp

// Advisory levels.
const (
	AdvisoryInfo  = "info"
	AdvisoryError = "error"
)

// Advisory reports an expected but empty-handed outcome (no results, a
// disabled section, a missing resource) as data rather than as an error.
// Suggestions name other tools worth trying next. Result wrappers carry a nil
// Advisory on the happy path.
type Advisory struct {
	Level       string   `json:"level"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// InfoAdvisory builds an informational advisory.
func InfoAdvisory(message string, suggestions ...string) *Advisory {
	return &Advisory{Level: AdvisoryInfo, Message: message, Suggestions: suggestions}
}

// ErrorAdvisory builds an advisory for a denied or missing resource.
func ErrorAdvisory(message string, suggestions ...string) *Advisory {
	return &Advisory{Level: AdvisoryError, Message: message, Suggestions: suggestions}
}

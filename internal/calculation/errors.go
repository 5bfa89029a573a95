package calculation

// AnalysisError represents errors from the sensitivity analyzer boundary.
// Numeric degeneracies inside the engine never raise; they produce sentinel
// values so the report stays structurally complete.
type AnalysisError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

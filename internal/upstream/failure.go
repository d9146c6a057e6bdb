package upstream

import (
	"fmt"

	"casedesk.app/voicelink/internal/model"
)

type FailureKind string

const (
	FailureNetwork           FailureKind = "network"
	FailureAuth              FailureKind = "auth"
	FailureUpstream5xx       FailureKind = "upstream-5xx"
	FailureMalformedResponse FailureKind = "malformed-response"
)

// Failure is the typed result of a failed upstream call. It carries a
// classification, a human-readable message, and an optional fallback list
// (possibly empty) for callers that degrade instead of erroring.
type Failure struct {
	Kind     FailureKind
	Message  string
	Fallback []model.Report
}

func (f *Failure) Error() string {
	return fmt.Sprintf("upstream %s: %s", f.Kind, f.Message)
}

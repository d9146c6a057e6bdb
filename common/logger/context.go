package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Fields flow through context enrichment, so handlers set the
// correlation keys once and every log statement below picks them up.
type LogFields struct {
	ReportID  *string // Stored report ID
	CaseID    *string // Case record ID
	SessionID *string // Voice session correlation key
	CallID    *string // Upstream call ID
	EventType *string // Webhook event type (e.g. "call.ended")
	Component string  // Component name (e.g. "voicelink.service.listing")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking
// precedence. Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, updated LogFields) LogFields {
	result := existing

	if updated.ReportID != nil {
		result.ReportID = updated.ReportID
	}
	if updated.CaseID != nil {
		result.CaseID = updated.CaseID
	}
	if updated.SessionID != nil {
		result.SessionID = updated.SessionID
	}
	if updated.CallID != nil {
		result.CallID = updated.CallID
	}
	if updated.EventType != nil {
		result.EventType = updated.EventType
	}
	if updated.Component != "" {
		result.Component = updated.Component
	}

	return result
}

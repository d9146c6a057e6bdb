package store

import (
	"context"

	"casedesk.app/voicelink/internal/model"
)

// ReportStore defines the contract for report data access. Reports are
// append-only; there is deliberately no update or delete.
type ReportStore interface {
	// CreateIfAbsent inserts the report unless one with the same ID already
	// exists. The check-and-insert is a single atomic statement, so concurrent
	// deliveries of the same upstream event record it exactly once. Returns
	// whether a new row was created.
	CreateIfAbsent(ctx context.Context, report *model.Report) (bool, error)
	GetByID(ctx context.Context, id string) (*model.Report, error)
	// GetBySessionID resolves the case↔report join at read time. Returns the
	// most recently received report for the session.
	GetBySessionID(ctx context.Context, sessionID string) (*model.Report, error)
}

// CaseStore defines the contract for the voice-correlation fields on cases.
// All other case fields belong to the case-management application.
type CaseStore interface {
	GetByID(ctx context.Context, id string) (*model.Case, error)
	// AttachSession overwrites the case's session id and report summary
	// unconditionally. Last writer wins; concurrent updates resolve by the
	// store's natural write ordering.
	AttachSession(ctx context.Context, caseID, sessionID, summary string) error
}

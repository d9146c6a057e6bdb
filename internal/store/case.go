package store

import (
	"context"

	"casedesk.app/voicelink/core/db"
	"casedesk.app/voicelink/internal/model"
)

type caseStore struct {
	q db.Querier
}

func newCaseStore(q db.Querier) CaseStore {
	return &caseStore{q: q}
}

func (s *caseStore) GetByID(ctx context.Context, id string) (*model.Case, error) {
	var c model.Case
	row := s.q.QueryRow(ctx, `
		SELECT id, vapi_session_id, vapi_report_summary, created_at, updated_at
		FROM cases
		WHERE id = $1`,
		id,
	)
	if err := row.Scan(&c.ID, &c.VapiSessionID, &c.VapiReportSummary, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, classify("fetching case", err)
	}
	return &c, nil
}

func (s *caseStore) AttachSession(ctx context.Context, caseID, sessionID, summary string) error {
	// Single-statement overwrite: either both fields change or neither does.
	// No version check — the human finalizing the case is authoritative over
	// whatever the webhook recorded.
	tag, err := s.q.Exec(ctx, `
		UPDATE cases
		SET vapi_session_id = $2, vapi_report_summary = $3, updated_at = now()
		WHERE id = $1`,
		caseID, sessionID, summary,
	)
	if err != nil {
		return classify("attaching session to case", err)
	}
	if tag.RowsAffected() == 0 {
		return &StorageError{Kind: KindNotFound, Op: "attaching session to case", Err: ErrNotFound}
	}
	return nil
}

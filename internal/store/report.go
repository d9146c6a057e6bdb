package store

import (
	"context"

	"casedesk.app/voicelink/core/db"
	"casedesk.app/voicelink/internal/model"
)

type reportStore struct {
	q db.Querier
}

func newReportStore(q db.Querier) ReportStore {
	return &reportStore{q: q}
}

func (s *reportStore) CreateIfAbsent(ctx context.Context, report *model.Report) (bool, error) {
	// ON CONFLICT DO NOTHING makes the check-then-insert atomic; two
	// concurrent deliveries of the same event can't both insert.
	tag, err := s.q.Exec(ctx, `
		INSERT INTO reports (id, session_id, transcript_summary, received_at, source)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`,
		report.ID, report.SessionID, report.TranscriptSummary, report.ReceivedAt, string(report.Source),
	)
	if err != nil {
		return false, classify("creating report", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (s *reportStore) GetByID(ctx context.Context, id string) (*model.Report, error) {
	row := s.q.QueryRow(ctx, `
		SELECT id, session_id, transcript_summary, received_at, source
		FROM reports
		WHERE id = $1`,
		id,
	)
	return scanReport(row)
}

func (s *reportStore) GetBySessionID(ctx context.Context, sessionID string) (*model.Report, error) {
	row := s.q.QueryRow(ctx, `
		SELECT id, session_id, transcript_summary, received_at, source
		FROM reports
		WHERE session_id = $1
		ORDER BY received_at DESC
		LIMIT 1`,
		sessionID,
	)
	return scanReport(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*model.Report, error) {
	var (
		report model.Report
		source string
	)
	if err := row.Scan(&report.ID, &report.SessionID, &report.TranscriptSummary, &report.ReceivedAt, &source); err != nil {
		return nil, classify("fetching report", err)
	}
	report.Source = model.ReportSource(source)
	return &report, nil
}

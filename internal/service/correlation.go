package service

import (
	"context"
	"fmt"
	"log/slog"

	"casedesk.app/voicelink/common/logger"
	"casedesk.app/voicelink/internal/store"
)

// CorrelationService is the synchronous path invoked when a human finishes a
// case review and supplies the voice session to attach. The write is last
// writer wins and never consults the reports table — the join is computed
// lazily by readers, so attaching cannot fail on a not-yet-arrived report.
type CorrelationService interface {
	Attach(ctx context.Context, caseID, summary, sessionID string) error
}

type correlationService struct {
	cases store.CaseStore
}

func NewCorrelationService(cases store.CaseStore) CorrelationService {
	return &correlationService{cases: cases}
}

func (s *correlationService) Attach(ctx context.Context, caseID, summary, sessionID string) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CaseID:    &caseID,
		SessionID: &sessionID,
		Component: "voicelink.service.correlation",
	})

	if err := s.cases.AttachSession(ctx, caseID, sessionID, summary); err != nil {
		return fmt.Errorf("attaching session to case: %w", err)
	}

	slog.InfoContext(ctx, "case correlated with voice session")
	return nil
}

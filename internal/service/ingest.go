package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"casedesk.app/voicelink/common/id"
	"casedesk.app/voicelink/common/logger"
	"casedesk.app/voicelink/internal/model"
	"casedesk.app/voicelink/internal/store"
)

// ErrInvalidEvent marks a webhook payload that failed boundary validation.
// Handlers map it to a client error; nothing is written to the store.
var ErrInvalidEvent = errors.New("invalid webhook event")

type IngestParams struct {
	Event     string
	CallID    string
	SessionID string
	Summary   string
}

type IngestResult struct {
	ReportID   string
	Duplicated bool
}

// IngestService turns one upstream webhook delivery into a durable report.
// Deliveries are at-least-once; re-deliveries of the same event converge on
// a single stored row.
type IngestService interface {
	Ingest(ctx context.Context, params IngestParams) (*IngestResult, error)
}

type ingestService struct {
	reports store.ReportStore
}

func NewIngestService(reports store.ReportStore) IngestService {
	return &ingestService{reports: reports}
}

func (s *ingestService) Ingest(ctx context.Context, params IngestParams) (*IngestResult, error) {
	if params.Event == "" {
		return nil, fmt.Errorf("%w: missing event type", ErrInvalidEvent)
	}
	if params.CallID == "" && params.SessionID == "" {
		return nil, fmt.Errorf("%w: missing call/session reference", ErrInvalidEvent)
	}

	// The upstream call id doubles as the idempotency key. Events without one
	// get a locally generated id — they can never dedupe against each other,
	// which matches the upstream contract: an event with no call id has no
	// identity to retry under.
	reportID := params.CallID
	if reportID == "" {
		reportID = id.NewString()
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ReportID:  &reportID,
		EventType: &params.Event,
		Component: "voicelink.service.ingest",
	})

	report := &model.Report{
		ID:                reportID,
		SessionID:         params.SessionID,
		TranscriptSummary: params.Summary,
		ReceivedAt:        time.Now().UTC(),
		Source:            model.SourceWebhook,
	}

	created, err := s.reports.CreateIfAbsent(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("storing report: %w", err)
	}

	if !created {
		slog.InfoContext(ctx, "duplicate webhook delivery ignored")
	} else {
		slog.InfoContext(ctx, "report stored", "session_id", params.SessionID)
	}

	return &IngestResult{
		ReportID:   reportID,
		Duplicated: !created,
	}, nil
}

package service

import (
	"context"
	"log/slog"
	"time"

	"casedesk.app/voicelink/common/logger"
	"casedesk.app/voicelink/internal/model"
	"casedesk.app/voicelink/internal/upstream"
)

// ListingResult distinguishes live data from fallback data. Live is false
// exactly when the upstream fetch failed and the fallback list was served;
// ErrorKind/ErrorDetail then describe the failure for observability.
type ListingResult struct {
	Reports     []model.Report
	Count       int
	Source      model.ReportSource
	Timestamp   time.Time
	Live        bool
	ErrorKind   string
	ErrorDetail string
}

// ListingService produces a best-effort report list for display. It never
// returns an error: a degraded upstream yields a fallback result, not a
// failure of the listing itself.
type ListingService interface {
	List(ctx context.Context) *ListingResult
}

// SnapshotWriter persists successful listings for later use as fallback data.
type SnapshotWriter interface {
	Put(ctx context.Context, reports []model.Report) error
}

type listingService struct {
	client    upstream.Client
	snapshots SnapshotWriter
}

func NewListingService(client upstream.Client, snapshots SnapshotWriter) ListingService {
	return &listingService{client: client, snapshots: snapshots}
}

func (s *listingService) List(ctx context.Context) *ListingResult {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "voicelink.service.listing"})

	// Advisory probe: logged, never gates the fetch.
	if err := s.client.ProbeConnection(ctx); err != nil {
		slog.WarnContext(ctx, "upstream probe failed, fetching anyway", "error", err)
	}

	reports, failure := s.client.ListReports(ctx)
	if failure != nil {
		slog.WarnContext(ctx, "upstream fetch failed, serving fallback",
			"kind", string(failure.Kind),
			"detail", failure.Message,
			"fallback_count", len(failure.Fallback),
		)
		fallback := failure.Fallback
		if fallback == nil {
			fallback = []model.Report{}
		}
		return &ListingResult{
			Reports:     fallback,
			Count:       len(fallback),
			Source:      model.SourceFallback,
			Timestamp:   time.Now().UTC(),
			Live:        false,
			ErrorKind:   string(failure.Kind),
			ErrorDetail: failure.Message,
		}
	}

	if s.snapshots != nil {
		if err := s.snapshots.Put(ctx, reports); err != nil {
			slog.WarnContext(ctx, "failed to cache report snapshot", "error", err)
		}
	}

	return &ListingResult{
		Reports:   reports,
		Count:     len(reports),
		Source:    model.SourceUpstreamFetch,
		Timestamp: time.Now().UTC(),
		Live:      true,
	}
}

package handler_test

import (
	"context"

	"casedesk.app/voicelink/internal/service"
)

type mockListingService struct {
	listFn func(ctx context.Context) *service.ListingResult
}

func (m *mockListingService) List(ctx context.Context) *service.ListingResult {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return &service.ListingResult{}
}

type mockCorrelationService struct {
	attachFn func(ctx context.Context, caseID, summary, sessionID string) error
	called   bool
}

func (m *mockCorrelationService) Attach(ctx context.Context, caseID, summary, sessionID string) error {
	m.called = true
	if m.attachFn != nil {
		return m.attachFn(ctx, caseID, summary, sessionID)
	}
	return nil
}

package service

import (
	"casedesk.app/voicelink/internal/store"
	"casedesk.app/voicelink/internal/upstream"
)

type Services struct {
	stores    *store.Stores
	client    upstream.Client
	snapshots SnapshotWriter
}

type ServicesConfig struct {
	Stores    *store.Stores
	Upstream  upstream.Client
	Snapshots SnapshotWriter
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		stores:    cfg.Stores,
		client:    cfg.Upstream,
		snapshots: cfg.Snapshots,
	}
}

func (s *Services) Ingest() IngestService {
	return NewIngestService(s.stores.Reports())
}

func (s *Services) Listing() ListingService {
	return NewListingService(s.client, s.snapshots)
}

func (s *Services) Correlation() CorrelationService {
	return NewCorrelationService(s.stores.Cases())
}

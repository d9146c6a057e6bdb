package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"casedesk.app/voicelink/internal/model"
	"casedesk.app/voicelink/internal/service"
	"casedesk.app/voicelink/internal/upstream"
)

var _ = Describe("ListingService", func() {
	var (
		client    *mockUpstreamClient
		snapshots *mockSnapshotWriter
		svc       service.ListingService
	)

	BeforeEach(func() {
		client = &mockUpstreamClient{}
		snapshots = &mockSnapshotWriter{}
		svc = service.NewListingService(client, snapshots)
	})

	It("returns live data and caches the snapshot on success", func() {
		live := []model.Report{
			{ID: "call-1", SessionID: "sess-1", Source: model.SourceUpstreamFetch},
			{ID: "call-2", Source: model.SourceUpstreamFetch},
		}
		client.listFn = func(_ context.Context) ([]model.Report, *upstream.Failure) {
			return live, nil
		}

		result := svc.List(context.Background())

		Expect(result.Live).To(BeTrue())
		Expect(result.Source).To(Equal(model.SourceUpstreamFetch))
		Expect(result.Count).To(Equal(2))
		Expect(result.Reports).To(Equal(live))
		Expect(result.Timestamp).NotTo(BeZero())
		Expect(result.ErrorKind).To(BeEmpty())
		Expect(snapshots.putCalls).To(Equal(1))
		Expect(snapshots.captured).To(Equal(live))
	})

	It("does not let a failed probe block the fetch", func() {
		client.probeFn = func(_ context.Context) error {
			return errors.New("probe timeout")
		}
		client.listFn = func(_ context.Context) ([]model.Report, *upstream.Failure) {
			return []model.Report{{ID: "call-1"}}, nil
		}

		result := svc.List(context.Background())

		Expect(client.probed).To(BeTrue())
		Expect(result.Live).To(BeTrue())
		Expect(result.Count).To(Equal(1))
	})

	It("serves the failure's fallback list when the fetch fails", func() {
		fallback := []model.Report{{ID: "cached-1", Source: model.SourceFallback}}
		client.listFn = func(_ context.Context) ([]model.Report, *upstream.Failure) {
			return nil, &upstream.Failure{
				Kind:     upstream.FailureNetwork,
				Message:  "dial tcp: connection refused",
				Fallback: fallback,
			}
		}

		result := svc.List(context.Background())

		Expect(result.Live).To(BeFalse())
		Expect(result.Source).To(Equal(model.SourceFallback))
		Expect(result.Reports).To(Equal(fallback))
		Expect(result.Count).To(Equal(1))
		Expect(result.ErrorKind).To(Equal("network"))
		Expect(result.ErrorDetail).To(ContainSubstring("connection refused"))
		Expect(snapshots.putCalls).To(BeZero())
	})

	It("serves an empty list when the failure carries no fallback", func() {
		client.listFn = func(_ context.Context) ([]model.Report, *upstream.Failure) {
			return nil, &upstream.Failure{Kind: upstream.FailureAuth, Message: "status 401"}
		}

		result := svc.List(context.Background())

		Expect(result.Live).To(BeFalse())
		Expect(result.Reports).NotTo(BeNil())
		Expect(result.Reports).To(BeEmpty())
		Expect(result.ErrorKind).To(Equal("auth"))
	})

	It("still returns live data when caching the snapshot fails", func() {
		client.listFn = func(_ context.Context) ([]model.Report, *upstream.Failure) {
			return []model.Report{{ID: "call-1"}}, nil
		}
		snapshots.putFn = func(_ context.Context, _ []model.Report) error {
			return errors.New("redis down")
		}

		result := svc.List(context.Background())

		Expect(result.Live).To(BeTrue())
		Expect(result.Count).To(Equal(1))
	})
})

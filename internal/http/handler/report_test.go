package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"casedesk.app/voicelink/internal/http/handler"
	"casedesk.app/voicelink/internal/model"
	"casedesk.app/voicelink/internal/service"
)

var _ = Describe("ReportHandler", func() {
	var (
		router *gin.Engine
		svc    *mockListingService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockListingService{}
		h := handler.NewReportHandler(svc)

		router.GET("/reports", h.List)
	})

	It("returns live reports with source upstream-fetch", func() {
		svc.listFn = func(_ context.Context) *service.ListingResult {
			return &service.ListingResult{
				Reports:   []model.Report{{ID: "call-1", SessionID: "sess-1", Source: model.SourceUpstreamFetch}},
				Count:     1,
				Source:    model.SourceUpstreamFetch,
				Timestamp: time.Now().UTC(),
				Live:      true,
			}
		}

		req := httptest.NewRequest(http.MethodGet, "/reports", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["success"]).To(BeTrue())
		Expect(resp["source"]).To(Equal("upstream-fetch"))
		Expect(resp["count"]).To(Equal(float64(1)))
		Expect(resp["error"]).To(BeNil())
	})

	It("answers 200 with success=false when the upstream is degraded", func() {
		svc.listFn = func(_ context.Context) *service.ListingResult {
			return &service.ListingResult{
				Reports:     []model.Report{},
				Count:       0,
				Source:      model.SourceFallback,
				Timestamp:   time.Now().UTC(),
				Live:        false,
				ErrorKind:   "network",
				ErrorDetail: "dial tcp: connection refused",
			}
		}

		req := httptest.NewRequest(http.MethodGet, "/reports", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["success"]).To(BeFalse())
		Expect(resp["source"]).To(Equal("fallback"))
		Expect(resp["error"]).To(ContainSubstring("network"))
		Expect(resp["reports"]).To(BeEmpty())
	})
})

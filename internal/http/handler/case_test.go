package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"casedesk.app/voicelink/internal/http/handler"
)

var _ = Describe("CaseHandler", func() {
	var (
		router *gin.Engine
		svc    *mockCorrelationService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockCorrelationService{}
		h := handler.NewCaseHandler(svc)

		router.POST("/cases/attach-session", h.AttachSession)
	})

	post := func(payload map[string]any) *httptest.ResponseRecorder {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/cases/attach-session", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("attaches a session to a case", func() {
		var gotCase, gotSummary, gotSession string
		svc.attachFn = func(_ context.Context, caseID, summary, sessionID string) error {
			gotCase, gotSummary, gotSession = caseID, summary, sessionID
			return nil
		}

		w := post(map[string]any{
			"caseId":    "case-42",
			"summary":   "Reviewed, escalated",
			"sessionId": "sess-1",
		})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotCase).To(Equal("case-42"))
		Expect(gotSummary).To(Equal("Reviewed, escalated"))
		Expect(gotSession).To(Equal("sess-1"))

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["success"]).To(BeTrue())
	})

	It("rejects a request missing a required field without calling the service", func() {
		w := post(map[string]any{
			"caseId":  "case-42",
			"summary": "Reviewed",
		})

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(svc.called).To(BeFalse())
	})

	It("returns 500 when the store write fails so the operator knows the case was not updated", func() {
		svc.attachFn = func(_ context.Context, _, _, _ string) error {
			return errors.New("unavailable")
		}

		w := post(map[string]any{
			"caseId":    "case-42",
			"summary":   "Reviewed",
			"sessionId": "sess-1",
		})

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["success"]).To(BeFalse())
		Expect(resp["error"]).NotTo(BeEmpty())
	})
})

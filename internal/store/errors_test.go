package store_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"casedesk.app/voicelink/internal/store"
)

var _ = Describe("StorageError", func() {
	It("unwraps to the sentinel for not-found", func() {
		err := &store.StorageError{Kind: store.KindNotFound, Op: "fetching case", Err: store.ErrNotFound}

		Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("not-found"))
		Expect(err.Error()).To(ContainSubstring("fetching case"))
	})

	It("keeps the classification reachable through wrapping", func() {
		inner := &store.StorageError{Kind: store.KindConstraintViolation, Op: "creating report", Err: errors.New("duplicate key")}
		wrapped := errors.Join(errors.New("storing report"), inner)

		var sErr *store.StorageError
		Expect(errors.As(wrapped, &sErr)).To(BeTrue())
		Expect(sErr.Kind).To(Equal(store.KindConstraintViolation))
	})
})

package keyset_test

import (
	"encoding/base64"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/keyset-go"
)

var _ = Describe("Cursor", func() {
	It("encodes ids as opaque base64", func() {
		Expect(keyset.EncodeCursor(42)).To(Equal(base64.URLEncoding.EncodeToString([]byte("cursor:id:42"))))
	})

	It("decodes what it encodes", func() {
		for _, v := range []int64{0, 1, 9007199254740993} {
			got, err := keyset.DecodeCursor(keyset.EncodeCursor(v))
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(v))
		}
	})

	DescribeTable("rejects malformed cursors",
		func(in string) {
			_, err := keyset.DecodeCursor(in)
			Expect(err).To(MatchError(keyset.ErrInvalidCursor))
		},
		Entry("not base64", "%%%"),
		Entry("offset cursor", base64.URLEncoding.EncodeToString([]byte("cursor:offset:10"))),
		Entry("non numeric id", base64.URLEncoding.EncodeToString([]byte("cursor:id:ten"))),
	)

	It("maps optional cursors", func() {
		Expect(keyset.EncodeCursorPtr(nil)).To(BeNil())

		got, err := keyset.DecodeCursorPtr(keyset.EncodeCursorPtr(id(7)))
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(id(7)))

		empty := ""
		got, err = keyset.DecodeCursorPtr(&empty)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeNil())
	})
})

package keyset_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/keyset-go"
	"github.com/nrfta/keyset-go/predicate"
)

var _ = Describe("BuildFetchParams", func() {
	It("over-fetches by one and orders ascending for forward requests", func() {
		fp := keyset.BuildFetchParams(predicate.True{}, keyset.FirstPage(10))

		Expect(fp.Limit).To(Equal(11))
		Expect(fp.Order).To(Equal(keyset.Ascending))
		Expect(fp.Bound).To(BeNil())
	})

	It("bounds forward requests with id > cursor", func() {
		fp := keyset.BuildFetchParams(predicate.True{}, keyset.After(7, 3))

		Expect(fp.Bound).To(Equal(&keyset.Bound{Op: keyset.GreaterThan, ID: 7}))
	})

	It("bounds backward requests with id < cursor and orders descending", func() {
		fp := keyset.BuildFetchParams(predicate.True{}, keyset.Before(7, 3))

		Expect(fp.Order).To(Equal(keyset.Descending))
		Expect(fp.Bound).To(Equal(&keyset.Bound{Op: keyset.LessThan, ID: 7}))
		Expect(fp.Limit).To(Equal(4))
	})

	It("leaves backward requests without cursor unbounded", func() {
		fp := keyset.BuildFetchParams(nil, keyset.Params{Limit: 2, Direction: keyset.Backward})

		Expect(fp.Bound).To(BeNil())
		Expect(fp.Predicate).To(Equal(predicate.True{}))
	})
})

var _ = Describe("Bound", func() {
	It("is exclusive on both sides", func() {
		Expect((&keyset.Bound{Op: keyset.GreaterThan, ID: 3}).Includes(3)).To(BeFalse())
		Expect((&keyset.Bound{Op: keyset.GreaterThan, ID: 3}).Includes(4)).To(BeTrue())
		Expect((&keyset.Bound{Op: keyset.LessThan, ID: 3}).Includes(3)).To(BeFalse())
		Expect((&keyset.Bound{Op: keyset.LessThan, ID: 3}).Includes(2)).To(BeTrue())
	})

	It("includes everything when nil", func() {
		var b *keyset.Bound
		Expect(b.Includes(-5)).To(BeTrue())
	})
})

var _ = Describe("Resolve", func() {
	Describe("window trimming", func() {
		It("drops the over-fetched row and sets a next cursor", func() {
			page := keyset.Resolve(keyset.FirstPage(2), seq(1, 3))

			Expect(ids(page.Items)).To(Equal([]int64{1, 2}))
			Expect(page.NextCursor).To(Equal(id(2)))
			Expect(page.Metadata.HasMore).To(BeTrue())
			Expect(page.Metadata.ItemsExamined).To(Equal(3))
		})

		It("returns exactly limit rows without a next cursor when nothing is left", func() {
			page := keyset.Resolve(keyset.FirstPage(2), seq(1, 2))

			Expect(ids(page.Items)).To(Equal([]int64{1, 2}))
			Expect(page.NextCursor).To(BeNil())
			Expect(page.Metadata.HasMore).To(BeFalse())
		})

		It("handles an empty window", func() {
			page := keyset.Resolve(keyset.After(9, 2), []item{})

			Expect(page.Items).To(BeEmpty())
			Expect(page.NextCursor).To(BeNil())
			Expect(page.PrevCursor).To(BeNil())
		})
	})

	Describe("forward cursors", func() {
		It("never sets a previous cursor on the first page", func() {
			page := keyset.Resolve(keyset.FirstPage(2), seq(1, 3))
			Expect(page.PrevCursor).To(BeNil())
		})

		It("sets the previous cursor to the first id when a cursor was supplied", func() {
			page := keyset.Resolve(keyset.After(2, 2), seq(3, 5))

			Expect(ids(page.Items)).To(Equal([]int64{3, 4}))
			Expect(page.PrevCursor).To(Equal(id(3)))
			Expect(page.NextCursor).To(Equal(id(4)))
		})
	})

	Describe("backward cursors", func() {
		It("reverses the window into ascending order", func() {
			rows := []item{{ID: 3}, {ID: 2}, {ID: 1}}
			page := keyset.Resolve(keyset.Before(4, 2), rows)

			Expect(ids(page.Items)).To(Equal([]int64{2, 3}))
			Expect(page.NextCursor).To(Equal(id(3)))
			Expect(page.PrevCursor).To(Equal(id(2)))
		})

		It("clears the previous cursor when the start is reached", func() {
			rows := []item{{ID: 2}, {ID: 1}}
			page := keyset.Resolve(keyset.Before(3, 2), rows)

			Expect(ids(page.Items)).To(Equal([]int64{1, 2}))
			Expect(page.PrevCursor).To(BeNil())
			Expect(page.NextCursor).To(Equal(id(2)))
		})

		It("does not modify the caller's slice", func() {
			rows := []item{{ID: 3}, {ID: 2}, {ID: 1}}
			keyset.Resolve(keyset.Before(4, 2), rows)

			Expect(ids(rows)).To(Equal([]int64{3, 2, 1}))
		})
	})

	It("keeps items ascending for every direction", func() {
		for _, p := range []keyset.Params{keyset.FirstPage(3), keyset.Before(9, 3)} {
			fetcher := &sliceFetcher{items: seq(1, 10)}
			rows, err := fetcher.Fetch(ctx, keyset.BuildFetchParams(predicate.True{}, p))
			Expect(err).NotTo(HaveOccurred())

			got := ids(keyset.Resolve(p, rows).Items)
			for i := 1; i < len(got); i++ {
				Expect(got[i]).To(BeNumerically(">", got[i-1]))
			}
		}
	})
})

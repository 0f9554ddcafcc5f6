package tests_test

import (
	"context"
	"time"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/keyset-go"
	"github.com/nrfta/keyset-go/fitness"
	"github.com/nrfta/keyset-go/sqlboiler"
	"github.com/nrfta/keyset-go/tests/models"
)

var _ = Describe("Workout log groups through generated models", func() {
	var (
		logGroups *keyset.Paginator[*fitness.LogGroup, fitness.LogGroupFilter]
		first     = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		day       = func(n int) *time.Time {
			d := first.AddDate(0, 0, n-1)
			return &d
		}
	)

	BeforeEach(func() {
		Expect(CleanupTables(ctx, container.DB)).To(Succeed())
		_, err := SeedLogGroups(ctx, container.DB, first, 10)
		Expect(err).NotTo(HaveOccurred())

		logGroups = fitness.LogGroups(sqlboiler.NewFetcher(
			func(ctx context.Context, mods ...qm.QueryMod) ([]*fitness.LogGroup, error) {
				return models.LogGroups(mods...).All(ctx, container.DB)
			},
			sqlboiler.WithTable(fitness.TableLogGroups),
		))
	})

	It("pages all groups", func() {
		page, err := logGroups.Paginate(ctx, fitness.LogGroupFilter{}, keyset.FirstPage(4))
		Expect(err).NotTo(HaveOccurred())

		Expect(IDs(page.Items)).To(Equal([]int64{1, 2, 3, 4}))
		Expect(page.Items[0].Date.Equal(first)).To(BeTrue())
		Expect(page.NextCursor).To(Equal(ptr[int64](4)))
	})

	It("keeps an inclusive date range", func() {
		page, err := logGroups.Paginate(ctx, fitness.LogGroupFilter{DateFrom: day(3), DateTo: day(6)}, keyset.FirstPage(10))
		Expect(err).NotTo(HaveOccurred())

		Expect(IDs(page.Items)).To(Equal([]int64{3, 4, 5, 6}))
	})

	It("matches nothing for a reversed range", func() {
		page, err := logGroups.Paginate(ctx, fitness.LogGroupFilter{DateFrom: day(6), DateTo: day(3)}, keyset.FirstPage(10))
		Expect(err).NotTo(HaveOccurred())

		Expect(page.Items).To(BeEmpty())
	})

	It("combines a date bound with a notes substring", func() {
		page, err := logGroups.Paginate(ctx, fitness.LogGroupFilter{
			DateFrom: day(5),
			Notes:    ptr("deload"),
		}, keyset.FirstPage(2))
		Expect(err).NotTo(HaveOccurred())

		Expect(IDs(page.Items)).To(Equal([]int64{6, 8}))
		Expect(page.NextCursor).To(Equal(ptr[int64](8)))

		next, err := logGroups.Paginate(ctx, fitness.LogGroupFilter{DateFrom: day(5), Notes: ptr("deload")}, keyset.After(8, 2))
		Expect(err).NotTo(HaveOccurred())
		Expect(IDs(next.Items)).To(Equal([]int64{10}))
		Expect(next.NextCursor).To(BeNil())
	})

	It("counts through the same generated query", func() {
		count, err := models.LogGroups(qm.Where("notes LIKE ?", "%deload%")).Count(ctx, container.DB)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeEquivalentTo(5))
	})
})

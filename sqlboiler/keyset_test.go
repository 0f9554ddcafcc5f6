package sqlboiler_test

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/keyset-go"
	"github.com/nrfta/keyset-go/predicate"
	"github.com/nrfta/keyset-go/sqlboiler"
)

func buildSQL(params keyset.FetchParams, opts ...sqlboiler.Option) (string, []any) {
	fetcher := sqlboiler.NewTableFetcher[*widget](nil, sqlboiler.PostgresDialect, "widgets", opts...)
	q, err := fetcher.Query(params)
	Expect(err).NotTo(HaveOccurred())
	return queries.BuildQuery(q)
}

var _ = Describe("KeysetToQueryMods", func() {
	Describe("Basic Functionality", func() {
		It("orders by id and limits for an unfiltered first page", func() {
			mods, err := sqlboiler.KeysetToQueryMods(keyset.FetchParams{
				Predicate: predicate.True{},
				Limit:     11,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(mods).To(HaveLen(2))
			Expect(modTypeName(mods[0])).To(Equal("qm.orderByQueryMod"))
			Expect(modTypeName(mods[1])).To(Equal("qm.limitQueryMod"))
		})

		It("adds the bound before the order", func() {
			mods, err := sqlboiler.KeysetToQueryMods(keyset.FetchParams{
				Predicate: predicate.True{},
				Bound:     &keyset.Bound{Op: keyset.GreaterThan, ID: 4},
				Limit:     3,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(mods).To(HaveLen(3))
			Expect(modTypeName(mods[0])).To(whereModMatcher())
		})

		It("emits one where mod per conjunct", func() {
			mods, err := sqlboiler.KeysetToQueryMods(keyset.FetchParams{
				Predicate: predicate.And{Terms: []predicate.Predicate{
					predicate.Contains{Field: "name", Value: "bolt"},
					predicate.In{Field: "size", Values: []any{"s", "m"}},
					predicate.Equal{Field: "active", Value: true},
				}},
				Limit: 3,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(mods).To(HaveLen(5))
			for _, mod := range mods[:3] {
				Expect(modTypeName(mod)).To(whereModMatcher())
			}
		})
	})

	Describe("Rendered SQL", func() {
		It("selects forward pages with id > cursor ascending", func() {
			sql, args := buildSQL(keyset.BuildFetchParams(predicate.True{}, keyset.After(4, 2)))

			Expect(sql).To(ContainSubstring(`FROM "widgets"`))
			Expect(sql).To(ContainSubstring(`"id" > $1`))
			Expect(sql).To(ContainSubstring(`ORDER BY "id" ASC`))
			Expect(sql).To(ContainSubstring(`LIMIT 3`))
			Expect(args).To(Equal([]any{int64(4)}))
		})

		It("selects backward pages with id < cursor descending", func() {
			sql, args := buildSQL(keyset.BuildFetchParams(predicate.True{}, keyset.Before(4, 2)))

			Expect(sql).To(ContainSubstring(`"id" < $1`))
			Expect(sql).To(ContainSubstring(`ORDER BY "id" DESC`))
			Expect(args).To(Equal([]any{int64(4)}))
		})

		It("omits the bound when there is no cursor", func() {
			sql, args := buildSQL(keyset.BuildFetchParams(predicate.True{}, keyset.FirstPage(2)))

			Expect(sql).NotTo(ContainSubstring("WHERE"))
			Expect(args).To(BeEmpty())
		})

		It("binds escaped substring patterns", func() {
			sql, args := buildSQL(keyset.FetchParams{
				Predicate: predicate.Contains{Field: "name", Value: "50%_off"},
				Limit:     3,
			})

			Expect(sql).To(ContainSubstring(`"name" LIKE $1 ESCAPE '\'`))
			Expect(args).To(Equal([]any{`%50\%\_off%`}))
		})

		It("expands membership into placeholders", func() {
			sql, args := buildSQL(keyset.FetchParams{
				Predicate: predicate.In{Field: "size", Values: []any{"s", "m"}},
				Limit:     3,
			})

			Expect(sql).To(MatchRegexp(`"size" IN \(\$1, ?\$2\)`))
			Expect(args).To(Equal([]any{"s", "m"}))
		})

		It("renders comparisons and equality", func() {
			sql, args := buildSQL(keyset.FetchParams{
				Predicate: predicate.And{Terms: []predicate.Predicate{
					predicate.Compare{Field: "size", Op: predicate.GreaterOrEqual, Value: "m"},
					predicate.Equal{Field: "name", Value: "bolt"},
				}},
				Limit: 3,
			})

			Expect(sql).To(ContainSubstring(`"size" >= $1`))
			Expect(sql).To(ContainSubstring(`"name" = $2`))
			Expect(args).To(Equal([]any{"m", "bolt"}))
		})

		It("qualifies columns with the table and a custom id column", func() {
			sql, _ := buildSQL(
				keyset.BuildFetchParams(predicate.True{}, keyset.After(1, 2)),
				sqlboiler.WithTable("widgets"),
				sqlboiler.WithIDColumn("widget_id"),
			)

			Expect(sql).To(ContainSubstring(`"widgets"."widget_id" > $1`))
		})

		It("quotes identifiers with the dialect's quote characters", func() {
			mysql := drivers.Dialect{LQ: '`', RQ: '`'}
			fetcher := sqlboiler.NewTableFetcher[*widget](nil, mysql, "widgets")

			q, err := fetcher.Query(keyset.BuildFetchParams(
				predicate.Equal{Field: "name", Value: "x"}, keyset.Before(9, 2),
			))
			Expect(err).NotTo(HaveOccurred())

			sql, _ := queries.BuildQuery(q)
			Expect(sql).To(ContainSubstring("FROM `widgets`"))
			Expect(sql).To(ContainSubstring("`name` = ?"))
			Expect(sql).To(ContainSubstring("`id` < ?"))
		})

		It("accepts explicit quote runes", func() {
			mods, err := sqlboiler.KeysetToQueryMods(
				keyset.BuildFetchParams(predicate.True{}, keyset.After(1, 2)),
				sqlboiler.WithQuotes('[', ']'),
			)
			Expect(err).NotTo(HaveOccurred())

			q := &queries.Query{}
			queries.SetDialect(q, &sqlboiler.SQLiteDialect)
			qm.Apply(q, append([]qm.QueryMod{qm.From("widgets")}, mods...)...)
			sql, _ := queries.BuildQuery(q)
			Expect(sql).To(ContainSubstring("[id] > ?"))
		})
	})

	Describe("Column mapping", func() {
		It("renames mapped fields", func() {
			sql, _ := buildSQL(
				keyset.FetchParams{Predicate: predicate.Equal{Field: "label", Value: "x"}, Limit: 2},
				sqlboiler.WithColumns(map[string]string{"label": "name"}),
			)

			Expect(sql).To(ContainSubstring(`"name" = $1`))
		})

		It("rejects unmapped fields", func() {
			_, err := sqlboiler.KeysetToQueryMods(
				keyset.FetchParams{Predicate: predicate.Equal{Field: "password", Value: "x"}},
				sqlboiler.WithColumns(map[string]string{"label": "name"}),
			)

			var unknown *predicate.UnknownFieldError
			Expect(err).To(BeAssignableToTypeOf(unknown))
		})
	})
})

var _ = Describe("Fetcher", func() {
	It("passes rendered mods to the query function", func() {
		var got []qm.QueryMod
		fetcher := sqlboiler.NewFetcher(func(ctx context.Context, mods ...qm.QueryMod) ([]*widget, error) {
			got = mods
			return []*widget{{ID: 1}}, nil
		})

		rows, err := fetcher.Fetch(context.Background(), keyset.BuildFetchParams(predicate.True{}, keyset.After(3, 5)))
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(1))
		Expect(got).To(HaveLen(3))
	})

	It("does not query when the predicate cannot be rendered", func() {
		called := false
		fetcher := sqlboiler.NewFetcher(func(ctx context.Context, mods ...qm.QueryMod) ([]*widget, error) {
			called = true
			return nil, nil
		}, sqlboiler.WithColumns(map[string]string{}))

		_, err := fetcher.Fetch(context.Background(), keyset.FetchParams{
			Predicate: predicate.Contains{Field: "name", Value: "x"},
			Limit:     2,
		})
		Expect(err).To(HaveOccurred())
		Expect(called).To(BeFalse())
	})
})

package keyset

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nrfta/keyset-go/predicate"
)

// Paginator runs bidirectional keyset pagination over one record type.
//
// A single generic Paginator replaces per-entity copies of the same logic:
// the record type T and filter type F keep each call site type safe, while
// the store is injected as a Fetcher capability.
//
// Example:
//
//	exercises := keyset.New[*fitness.Exercise, fitness.ExerciseFilter](
//	    sqlboiler.NewTableFetcher[*fitness.Exercise](db, sqlboiler.SQLiteDialect, fitness.TableExercises),
//	    keyset.WithLogger(log),
//	)
//	page, err := exercises.Paginate(ctx, filter, state.Params())
type Paginator[T Record, F predicate.Filter] struct {
	fetcher  Fetcher[T]
	config   *PageConfig
	logger   logrus.FieldLogger
	observer Observer
}

// Option configures a Paginator.
type Option func(*options)

type options struct {
	config   *PageConfig
	logger   logrus.FieldLogger
	observer Observer
}

// WithMaxSize sets the maximum page size accepted by Paginate.
func WithMaxSize(size int) Option {
	return func(o *options) {
		o.config.WithMaxSize(size)
	}
}

// WithDefaultSize sets the page size used by states created through the paginator.
func WithDefaultSize(size int) Option {
	return func(o *options) {
		o.config.WithDefaultSize(size)
	}
}

// WithPageConfig replaces the whole page configuration.
func WithPageConfig(config *PageConfig) Option {
	return func(o *options) {
		if config != nil {
			o.config = config
		}
	}
}

// WithLogger sets the logger used for per-request debug entries.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver registers an Observer notified about every request.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

// New creates a Paginator over fetcher.
func New[T Record, F predicate.Filter](fetcher Fetcher[T], opts ...Option) *Paginator[T, F] {
	o := &options{
		config:   NewPageConfig(),
		logger:   logrus.StandardLogger(),
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Paginator[T, F]{
		fetcher:  fetcher,
		config:   o.config,
		logger:   o.logger,
		observer: o.observer,
	}
}

// NewState returns a State using the paginator's default page size.
func (p *Paginator[T, F]) NewState() State {
	return NewState().WithLimit(p.config.defaultSize())
}

// Paginate fetches one page.
//
// Params are validated before the store is touched and the filter is compiled
// into a predicate. The store is then called exactly once with a limit+1 window.
// Store errors are returned unchanged; there is no retry and no partial result.
func (p *Paginator[T, F]) Paginate(ctx context.Context, filter F, params Params) (*Page[T], error) {
	if err := p.config.Validate(params); err != nil {
		return nil, err
	}

	pred, err := predicate.Compile(filter)
	if err != nil {
		return nil, err
	}

	ctx, traceID := EnsureTraceID(ctx)
	log := p.logger.WithFields(logrus.Fields{
		"trace_id":  traceID,
		"direction": params.Direction.String(),
		"limit":     params.Limit,
		"cursor":    cursorField(params.Cursor),
	})

	start := time.Now()
	rows, err := p.fetcher.Fetch(ctx, BuildFetchParams(pred, params))
	took := time.Since(start)
	elapsed := took.Milliseconds()
	if err != nil {
		log.WithError(err).Debug("keyset page fetch failed")
		p.observer.FetchFailed(params.Direction, err)
		return nil, err
	}

	page := Resolve(params, rows)
	page.Metadata.TraceID = traceID
	page.Metadata.QueryTimeMs = elapsed
	page.Metadata.QueryDuration = took

	log.WithFields(logrus.Fields{
		"items":    len(page.Items),
		"has_more": page.Metadata.HasMore,
		"query_ms": elapsed,
	}).Debug("keyset page fetched")
	p.observer.PageFetched(page.Metadata)

	return page, nil
}

func cursorField(cursor *int64) any {
	if cursor == nil {
		return "none"
	}
	return *cursor
}

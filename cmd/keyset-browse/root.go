package main

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/friendsofgo/errors"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nrfta/keyset-go"
	"github.com/nrfta/keyset-go/config"
	"github.com/nrfta/keyset-go/metrics"
	"github.com/nrfta/keyset-go/sqlboiler"
)

type globalOptions struct {
	configPath  string
	limit       int
	metricsAddr string
}

// env is what every list command needs once flags and config are resolved.
type env struct {
	db      *sql.DB
	dialect drivers.Dialect
	logger  *logrus.Logger
	opts    []keyset.Option
	limit   int
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "keyset-browse",
		Short:         "Page through training data with keyset pagination",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "config file (default keyset.yaml)")
	rootCmd.PersistentFlags().IntVarP(&g.limit, "limit", "l", 0, "page size (default paging.default_size)")
	rootCmd.PersistentFlags().StringVar(&g.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	rootCmd.AddCommand(
		newExercisesCmd(g),
		newWorkoutsCmd(g),
		newLogGroupsCmd(g),
	)

	return rootCmd
}

// setup loads config, opens the database and wires logging and metrics.
// The returned cleanup closes everything setup opened.
func (g *globalOptions) setup(ctx context.Context) (*env, func(), error) {
	cfg, err := config.LoadConfig(g.configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := cfg.Logger.NewLogger(logrus.StandardLogger().Out)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open database")
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, errors.Wrapf(err, "connect to %s", cfg.Database.Driver)
	}

	dialect := sqlboiler.SQLiteDialect
	if cfg.Database.Driver == config.DriverPostgres {
		dialect = sqlboiler.PostgresDialect
	}

	e := &env{
		db:      db,
		dialect: dialect,
		logger:  logger,
		opts: []keyset.Option{
			keyset.WithPageConfig(cfg.PageConfig()),
			keyset.WithLogger(logger),
		},
		limit: cfg.Paging.DefaultSize,
	}
	if g.limit > 0 {
		e.limit = g.limit
	}

	cleanup := func() { db.Close() }

	if g.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		observer, err := metrics.NewObserver(reg, "keyset_browse")
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		e.opts = append(e.opts, keyset.WithObserver(observer))

		srv := &http.Server{
			Addr:    g.metricsAddr,
			Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.WithError(err).Warn("metrics server stopped")
			}
		}()
		cleanup = func() {
			srv.Close()
			db.Close()
		}
	}

	return e, cleanup, nil
}

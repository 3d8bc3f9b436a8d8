package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"cinelog/internal/audit"
	fantasyhandler "cinelog/internal/fantasy/handler"
	fantasyservice "cinelog/internal/fantasy/service"
	httpapi "cinelog/internal/http"
	identityhandler "cinelog/internal/identity/handler"
	identitymetrics "cinelog/internal/identity/metrics"
	identityservice "cinelog/internal/identity/service"
	userstore "cinelog/internal/identity/store/user"
	"cinelog/internal/platform/config"
	"cinelog/internal/platform/httpserver"
	"cinelog/internal/platform/logger"
	"cinelog/internal/platform/postgres"
	platformredis "cinelog/internal/platform/redis"
	reviewshandler "cinelog/internal/reviews/handler"
	reviewsmetrics "cinelog/internal/reviews/metrics"
	reviewsservice "cinelog/internal/reviews/service"
	"cinelog/internal/reviews/store"
	moviestore "cinelog/internal/reviews/store/movie"
	reviewstore "cinelog/internal/reviews/store/review"
	translationhandler "cinelog/internal/translation/handler"
	translationmetrics "cinelog/internal/translation/metrics"
	translationservice "cinelog/internal/translation/service"
	"cinelog/internal/translation/translator"
)

// movieStore and reviewStore join the per-service store interfaces so one
// variable can back every consumer regardless of which backend is picked.
type movieStore interface {
	reviewsservice.MovieStore
	fantasyservice.MovieStore
}

type reviewStore interface {
	reviewsservice.ReviewStore
	translationservice.ReviewStore
}

// main wires stores, services, and transport together and owns the process
// lifecycle. Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stores: Postgres when configured, otherwise seeded in-memory.
	var (
		movies  movieStore
		reviews reviewStore
		users   identityservice.UserStore
		health  func() error
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Error("schema migration failed", "error", err)
			os.Exit(1)
		}
		movies = moviestore.NewPostgres(db, cfg.MoviesTable)
		reviews = reviewstore.NewPostgres(db, cfg.ReviewsTable)
		users = userstore.NewPostgres(db, cfg.UsersTable)
		health = db.Ping
		log.Info("using postgres stores")
	} else {
		ms := moviestore.NewInMemory()
		rs := reviewstore.NewInMemory()
		store.SeedCatalog(ms, rs)
		movies, reviews, users = ms, rs, userstore.NewInMemory()
		log.Warn("DATABASE_URL not set, using seeded in-memory stores")
	}

	rdb, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// Audit events flow through a buffered worker so emitting never blocks
	// a request. Without AMQP configured events land in an in-memory
	// recorder, which is enough for local runs.
	var sink audit.Publisher = audit.NewRecorder()
	if cfg.AMQPURL != "" {
		amqpPub, err := audit.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Error("amqp connection failed", "error", err)
			os.Exit(1)
		}
		defer amqpPub.Close()
		sink = amqpPub
		log.Info("audit events publishing to amqp")
	}
	buffer := audit.NewBuffer(256)
	worker := audit.NewWorker(sink, buffer, log)

	var backend translationservice.Translator
	if cfg.TranslatorURL != "" {
		backend = translator.NewHTTPClient(cfg.TranslatorURL, cfg.TranslatorTimeout)
	} else {
		backend = translator.Static{}
		log.Warn("TRANSLATOR_URL not set, using static translator")
	}

	reviewSvc := reviewsservice.New(movies, reviews,
		reviewsservice.WithLogger(log),
		reviewsservice.WithMetrics(reviewsmetrics.New()),
		reviewsservice.WithAuditPublisher(buffer),
	)
	translationSvc := translationservice.New(reviews, backend, cfg.SourceLang, cfg.TargetLang,
		translationservice.WithLogger(log),
		translationservice.WithMetrics(translationmetrics.New()),
		translationservice.WithAuditPublisher(buffer),
	)
	identitySvc := identityservice.New(users,
		identityservice.WithLogger(log),
		identityservice.WithMetrics(identitymetrics.New()),
		identityservice.WithAuditPublisher(buffer),
		identityservice.WithBcryptCost(cfg.BcryptCost),
	)
	fantasySvc := fantasyservice.New(movies,
		fantasyservice.WithLogger(log),
		fantasyservice.WithAuditPublisher(buffer),
	)

	deps := httpapi.Deps{
		Reviews:       reviewshandler.New(reviewSvc, log),
		Identity:      identityhandler.New(identitySvc, log),
		Translation:   translationhandler.New(translationSvc, log),
		Fantasy:       fantasyhandler.New(fantasySvc, log),
		Logger:        log,
		AuthRateLimit: cfg.AuthRateLimit,
		AuthRateWin:   cfg.AuthRateWindow,
		Health:        health,
	}
	if rdb != nil {
		deps.Limiter = rdb.Client
	}

	srv := httpserver.New(cfg.Addr, httpapi.NewRouter(deps))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(gctx)
	})
	g.Go(func() error {
		log.Info("starting cinelog", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

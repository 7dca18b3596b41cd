package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/movimentai/internal/accounts"
	"github.com/2beens/movimentai/internal/admin"
	"github.com/2beens/movimentai/internal/assistant"
	"github.com/2beens/movimentai/internal/auth"
	"github.com/2beens/movimentai/internal/calendar"
	"github.com/2beens/movimentai/internal/config"
	"github.com/2beens/movimentai/internal/dashboard"
	"github.com/2beens/movimentai/internal/db"
	"github.com/2beens/movimentai/internal/execution"
	"github.com/2beens/movimentai/internal/exercises"
	"github.com/2beens/movimentai/internal/habits"
	"github.com/2beens/movimentai/internal/jobs"
	movimentaimcp "github.com/2beens/movimentai/internal/mcp"
	"github.com/2beens/movimentai/internal/middleware"
	"github.com/2beens/movimentai/internal/payments"
	"github.com/2beens/movimentai/internal/photos"
	"github.com/2beens/movimentai/internal/preferences"
	"github.com/2beens/movimentai/internal/profiles"
	"github.com/2beens/movimentai/internal/relay"
	"github.com/2beens/movimentai/internal/telemetry/metrics"
	"github.com/2beens/movimentai/internal/telemetry/tracing"
	"github.com/2beens/movimentai/internal/water"
	"github.com/2beens/movimentai/internal/workouts"
	"github.com/2beens/movimentai/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config  *config.Config
	secrets *config.Secrets
	now     pkg.Clock

	dbPool       *pgxpool.Pool
	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service
	photoStore   *photos.DiskStore
	executions   *execution.RedisStore
	scheduler    *jobs.Scheduler

	geminiClient *assistant.GeminiClient
	chatRelay    *relay.Relay
	workoutRelay *relay.Relay

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config  *config.Config
	Secrets *config.Secrets
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	secrets := params.Secrets

	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("load time zone %s: %w", cfg.Timezone, err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: secrets.HoneycombEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.EnsureSchema(ctx, dbPool); err != nil {
		return nil, err
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, "movimentai-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	photoStore, err := photos.NewDiskStore(cfg.PhotosRootPath)
	if err != nil {
		return nil, fmt.Errorf("new photo store: %w", err)
	}

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	executions := execution.NewRedisStore(rdb, cfg.ExecutionSessionTTLDuration())

	scheduler, err := jobs.NewScheduler(jobs.DefaultJobs(authService, executions)...)
	if err != nil {
		return nil, fmt.Errorf("new scheduler: %w", err)
	}

	if cfg.ChatRelayURL == "" {
		log.Debugln("chat relay disabled")
	}
	if cfg.WorkoutRelayURL == "" {
		log.Warnln("workout relay url not set, payment webhook will not trigger workout generation")
	}

	return &Server{
		config:  cfg,
		secrets: secrets,
		now:     pkg.ClockIn(location),

		dbPool:       dbPool,
		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),
		photoStore:   photoStore,
		executions:   executions,
		scheduler:    scheduler,

		geminiClient: assistant.NewGeminiClient(cfg.GeminiBaseURL, cfg.GeminiModel, secrets.GeminiAPIKey, tracedHttpClient),
		chatRelay:    relay.New("chat", cfg.ChatRelayURL, cfg.RelayTimeoutDuration(), tracedHttpClient, metricsManager),
		workoutRelay: relay.New("workout", cfg.WorkoutRelayURL, cfg.RelayTimeoutDuration(), tracedHttpClient, metricsManager),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	accountsRepo := accounts.NewRepo(s.dbPool)
	profilesRepo := profiles.NewRepo(s.dbPool)
	habitsRepo := habits.NewRepo(s.dbPool)
	waterRepo := water.NewRepo(s.dbPool)
	workoutsRepo := workouts.NewRepo(s.dbPool)
	calendarRepo := calendar.NewRepo(s.dbPool)

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "MovimentAI")
	}).Methods("GET").Name("root")

	// accounts live under /a, rate limited per client ip
	accountsRouter := r.PathPrefix("/a").Subrouter()
	accountsRouter.Use(middleware.RateLimit(reqRateLimiter, "accounts", s.config.LoginRateLimitAllowedPerMin, s.metricsManager))
	accounts.NewHandler(
		accountsRepo,
		s.authService,
		s.loginChecker,
		auth.Admin{
			Username:     s.secrets.AdminUsername,
			PasswordHash: s.secrets.AdminPasswordHash,
		},
	).SetupRoutes(accountsRouter)

	profilesHandler := profiles.NewHandler(profilesRepo, s.photoStore, s.now)
	profilesHandler.SetupRoutes(r)
	profilesHandler.SetupPublicRoutes(r)

	exercises.NewHandler().SetupRoutes(r)
	habits.NewHandler(habitsRepo, s.now).SetupRoutes(r)
	water.NewHandler(waterRepo, s.now).SetupRoutes(r)
	calendar.NewHandler(calendarRepo, s.now).SetupRoutes(r)
	workouts.NewHandler(workoutsRepo, s.now, s.metricsManager).SetupRoutes(r)

	executionService := execution.NewService(
		s.executions,
		workoutsRepo,
		execution.NewRecorder(calendarRepo, s.metricsManager),
		s.metricsManager,
		s.now,
	)
	execution.NewHandler(executionService).SetupRoutes(r)

	dashboard.NewHandler(
		dashboard.NewBuilder(habitsRepo, waterRepo, calendarRepo, workoutsRepo, profilesRepo, s.now),
	).SetupRoutes(r)

	preferences.NewHandler(preferences.NewRedisStore(s.redisClient)).SetupRoutes(r)

	// matches only /chat, so the limiter does not apply to other routes
	chatRouter := r.NewRoute().Subrouter()
	chatRouter.Use(middleware.RateLimit(reqRateLimiter, "chat", s.config.ChatRateLimitAllowedPerMin, s.metricsManager))
	assistant.NewHandler(
		assistant.NewResponder(s.geminiClient, s.metricsManager),
		s.chatRelay,
	).SetupRoutes(chatRouter)

	payments.NewHandler(
		accounts.NewProvisioner(accountsRepo),
		s.workoutRelay,
		s.secrets.PaymentWebhookSecret,
		s.metricsManager,
	).SetupRoutes(r)

	adminRouter := r.NewRoute().Subrouter()
	adminRouter.Use(middleware.AdminOnly())
	admin.NewHandler(accountsRepo, workoutsRepo, calendarRepo, s.executions, s.now).SetupRoutes(adminRouter)
	mcpServer := movimentaimcp.NewServer(workoutsRepo, calendarRepo)
	adminRouter.PathPrefix("/mcp").Handler(movimentaimcp.NewHTTPHandler(mcpServer)).Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.scheduler.Start()
	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.scheduler.Stop()

	// relays still in flight get their own timeout
	s.chatRelay.Wait()
	s.workoutRelay.Wait()
	log.Trace("relays drained ...")

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}

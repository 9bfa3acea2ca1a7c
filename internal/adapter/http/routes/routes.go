package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "bitcoinswitch/docs"
	"bitcoinswitch/internal/adapter/http/handlers"
	"bitcoinswitch/internal/adapter/persistence/repository"
	"bitcoinswitch/internal/config"
	"bitcoinswitch/internal/infrastructure/database"
	"bitcoinswitch/internal/infrastructure/listener"
	"bitcoinswitch/internal/infrastructure/logging"
	"bitcoinswitch/internal/infrastructure/metrics"
	"bitcoinswitch/internal/infrastructure/payments"
	"bitcoinswitch/internal/infrastructure/rates"
	"bitcoinswitch/internal/infrastructure/websocket"
	"bitcoinswitch/internal/usecase"
	"bitcoinswitch/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

var router = gin.New()

type assetBackend interface {
	interfaces.IRateOracle
	interfaces.IAssetInvoicer
}

// services are the background parts of the app that need an orderly stop.
type services struct {
	listener    *listener.InvoiceListener
	hub         *websocket.Hub
	redis       *goredis.Client
	stopSources context.CancelFunc
	sources     chan struct{}
}

// Run wires the service from the environment and serves until SIGINT or SIGTERM.
func Run() {
	log := logging.NewLoggerWithService("bitcoinswitch")
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	svc, err := getRoutes(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to startup the application")
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to startup the application")
		}
	}()
	log.WithField("port", cfg.Port).Info("[http] listening")

	<-ctx.Done()
	log.Info("[http] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("[http] graceful shutdown failed")
	}
	svc.close(log)
}

func getRoutes(ctx context.Context, cfg config.Config, log logging.Logger) (*services, error) {
	m := metrics.New(prometheus.DefaultRegisterer)

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.CreateTables {
		err := database.EnsureTables(ctx, ddb, log,
			database.TableSpec{Name: repository.DevicesTableName(), IndexName: repository.DevicesWalletIndex, IndexKey: "wallet"},
			database.TableSpec{Name: repository.PaymentsTableName(), IndexName: repository.PaymentsDeviceIndex, IndexKey: "device_id"},
		)
		if err != nil {
			return nil, err
		}
	}

	deviceRepo := repository.NewDeviceDynamoRepository(ddb)
	attemptRepo := repository.NewPaymentAttemptDynamoRepository(ddb)

	gateway, err := payments.NewLNbitsGateway(cfg.LNbitsURL, cfg.HTTPTimeout, cfg.PaymentGatewayMock, log)
	if err != nil {
		return nil, err
	}
	if cfg.PaymentGatewayMock {
		log.Warn("[payment][gateway] mock mode enabled, invoices are not payable")
	}

	var assets assetBackend = rates.UnavailableAssets{}
	if cfg.TaprootEnabled && !cfg.PaymentGatewayMock {
		assets = rates.NewTaprootRateClient(cfg.LNbitsURL, cfg.TaprootAPIKey, cfg.HTTPTimeout, log)
		log.Info("[rates][taproot] taproot assets enabled")
	}
	rateCache := rates.NewRateCache(rates.CacheOptions{TTL: cfg.RateCacheTTL, LoadTimeout: cfg.HTTPTimeout}, rates.CacheHooks{
		OnHit:  func(string) { m.RateCache.WithLabelValues("hit").Inc() },
		OnMiss: func(string) { m.RateCache.WithLabelValues("miss").Inc() },
	})
	oracle := rates.NewCachedRateOracle(assets, rateCache)
	reconciler := usecase.NewRateReconciler(oracle.Fresh(), cfg.RateValidity, cfg.RateTolerance, cfg.HTTPTimeout)

	hub := websocket.NewHub(log, m.HubConnections)

	quoteUseCase := usecase.NewQuoteUseCase(deviceRepo, attemptRepo, gateway, gateway, assets, oracle, reconciler, usecase.QuoteOptions{
		PublicBaseURL:      cfg.PublicBaseURL,
		MaxCommentLength:   cfg.MaxCommentLength,
		OracleTimeout:      cfg.HTTPTimeout,
		AssetPaymentExpiry: cfg.TaprootPaymentExpiry,
	}, log)
	deviceUseCase := usecase.NewDeviceUseCase(deviceRepo, attemptRepo, hub, cfg.PublicBaseURL, cfg.HTTPTimeout, log)
	settlementUseCase := usecase.NewSettlementUseCase(attemptRepo, deviceRepo, reconciler, hub, usecase.SettlementOptions{
		DispatchAttempts: cfg.DispatchAttempts,
		DispatchBackoff:  cfg.DispatchBackoff,
		SinkTimeout:      cfg.HTTPTimeout,
	}, log)

	invoiceListener := listener.NewInvoiceListener(settlementUseCase, m, log)
	// Stopped explicitly in close so webhooks accepted while draining still settle.
	invoiceListener.Start(context.WithoutCancel(ctx))

	svc := &services{listener: invoiceListener, hub: hub}
	if cfg.RedisURL != "" {
		if err := svc.startRedis(ctx, cfg, log); err != nil {
			invoiceListener.Stop()
			return nil, err
		}
	}

	if cfg.WebhookSecret == "" {
		log.Warn("[webhook][handler] WEBHOOK_SECRET not set, paid-invoice webhook is unauthenticated")
	}

	deviceHandler := handlers.NewDeviceHandler(deviceUseCase)
	lnurlHandler := handlers.NewLNURLHandler(quoteUseCase, m, log)
	webhookHandler := handlers.NewWebhookHandler(invoiceListener, cfg.WebhookSecret, log)
	websocketHandler := handlers.NewWebsocketHandler(hub, deviceRepo)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDeviceRoutes(v1, handlers.RequireWallet(gateway, log), deviceHandler)
	addSwitchRoutes(v1, lnurlHandler, webhookHandler, websocketHandler)

	return svc, nil
}

func (s *services) startRedis(ctx context.Context, cfg config.Config, log logging.Logger) error {
	client, err := listener.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	s.redis = client

	sourceCtx, cancel := context.WithCancel(ctx)
	s.stopSources = cancel
	s.sources = make(chan struct{})

	source := listener.NewRedisSource(client, cfg.RedisConfirmationsChannel, s.listener, log)
	go func() {
		defer close(s.sources)
		if err := source.Run(sourceCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("[listener][redis] source stopped")
		}
	}()
	return nil
}

func (s *services) close(log logging.Logger) {
	if s.stopSources != nil {
		s.stopSources()
		<-s.sources
	}
	s.listener.Stop()
	s.hub.Close()
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.WithError(err).Warn("[listener][redis] close failed")
		}
	}
}

func setMiddlewares(log logging.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("panic", recovered).Error("Recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clim8bit/weather-service/config"
	"clim8bit/weather-service/internal/api/v1/handlers"
	"clim8bit/weather-service/internal/db/cacheentry"
	"clim8bit/weather-service/internal/db/favorite"
	"clim8bit/weather-service/internal/db/preference"
	"clim8bit/weather-service/internal/db/recentsearch"
	"clim8bit/weather-service/internal/inmemorycache"
	"clim8bit/weather-service/internal/providers"
	"clim8bit/weather-service/internal/service"
	"clim8bit/weather-service/internal/tracing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()

	ctx, mainCtxStop := context.WithCancel(context.Background())

	shutdownTracing, err := tracing.Setup(conf.ServiceName, conf.ZipkinEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := initializeDatabase(conf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to access database handle")
	}

	var cache inmemorycache.Cache
	switch conf.CacheDriver {
	case config.CacheDriverDatabase:
		cache = cacheentry.NewStore(db)
	default:
		cache = inmemorycache.NewInMemoryCacheProvider(conf.CacheCleanupInterval)
	}
	log.Info().Str("driver", conf.CacheDriver).Dur("ttl", conf.CacheTTL).Msg("response cache ready")

	weatherProvider := providers.NewOpenWeatherService(providers.OpenWeatherConfig{
		BaseURL:            conf.OpenWeatherBaseURL,
		APIKeys:            conf.OpenWeatherAPIKeys,
		Timeout:            conf.HTTPTimeoutDuration(),
		CacheTTL:           conf.CacheTTL,
		BreakerMaxFailures: conf.BreakerMaxFailures,
		BreakerOpenTimeout: conf.BreakerOpenTimeout,
	}, inmemorycache.NewLoader(cache))

	favoriteRepo := favorite.NewRepository(db)
	recentRepo := recentsearch.NewRepository(db)
	preferenceRepo := preference.NewRepository(db)

	weatherService := service.NewWeatherService(weatherProvider, conf.DefaultCity)

	tracked := service.NewTrackedCitiesRefresher(
		weatherProvider,
		favoriteRepo,
		conf.TrackedCities,
		conf.TrackedRefreshInterval,
		conf.TrackedFetchTimeout,
	)
	if err := tracked.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start tracked cities refresher")
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Weather:        handlers.NewWeatherHandler(weatherService, tracked, conf.HTTPTimeoutDuration()),
		UserData:       handlers.NewUserDataHandler(favoriteRepo, recentRepo, preferenceRepo, conf.HTTPTimeoutDuration()),
		Database:       sqlDB,
		AllowedOrigins: conf.CORSAllowedOrigins,
	})

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           otelhttp.NewHandler(router, "http.server"),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		tracked.Stop()

		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}

		if err := shutdownTracing(ctx); err != nil {
			log.Error().Err(err).Msg("failed to flush traces")
		}

		if err := sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&favorite.Favorite{},
		&recentsearch.RecentSearch{},
		&preference.UserPreference{},
		&cacheentry.CacheEntry{},
	); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}

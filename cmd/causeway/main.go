package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/causewayhq/causeway/internal/config"
	"github.com/causewayhq/causeway/internal/infra/database"
	"github.com/causewayhq/causeway/internal/infra/repository"
	"github.com/causewayhq/causeway/internal/present/rest"
	"github.com/causewayhq/causeway/internal/present/rest/middleware"
	"github.com/causewayhq/causeway/internal/service"
	"github.com/causewayhq/causeway/internal/usecase"
)

func main() {
	godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if conf.Server.EnableTrace {
		cleanup, err := setupTraceProvider(conf.Server.TraceEndpoint)
		if err != nil {
			slog.Error("failed to setup trace provider", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer cleanup()
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		slog.Error("failed to connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = database.MigratePostgres(db)
	if err != nil {
		slog.Error("failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
	mc := database.NewMemcached(conf.Server.MemcachedAddr)

	stores := repository.NewStores(db)
	stores.Campaigns = repository.NewCachedCampaignRepository(stores.Campaigns, mc)
	uow := repository.NewUnitOfWork(db)

	auth := service.NewAuthService(conf.Auth.Secret, time.Duration(conf.Auth.TokenTTLMinutes)*time.Minute)
	codes := repository.NewCodeStore(rdb, time.Duration(conf.Auth.CodeTTLMinutes)*time.Minute)
	sender := service.NewLogCodeSender()
	events := service.NewEventService(rdb)

	identity := usecase.NewIdentityUsecase(stores.Users, auth, auth, codes, sender)
	vetting := usecase.NewVettingUsecase(stores, uow)
	campaign := usecase.NewCampaignUsecase(stores)
	donation := usecase.NewDonationUsecase(stores, uow)
	withdrawal := usecase.NewWithdrawalUsecase(stores, uow)

	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("causeway"))
	}

	authMiddleware := middleware.NewAuthMiddleware(auth, stores.Users)
	e.Use(authMiddleware.IdentifyCaller)

	handler := rest.NewHandler(identity, vetting, campaign, donation, withdrawal, events)
	handler.RegisterRoutes(e, authMiddleware)

	e.Logger.Fatal(e.Start(conf.Server.Addr))
}

func setupTraceProvider(endpoint string) (func(), error) {
	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String("causeway"),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(provider)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		provider.Shutdown(ctx)
	}, nil
}

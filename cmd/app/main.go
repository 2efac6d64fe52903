package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"orderdesk/cmd"
	_ "orderdesk/docs"
	httpadapter "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/sequencerepo"
	"orderdesk/internal/generated/servers"
	"orderdesk/internal/jobs"
	"orderdesk/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	sqlDB, gormDB := connectDB(configs)

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &sequencerepo.CounterDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	defer func() { _ = app.Close() }()

	startJobs(&app, configs)
	startWebServer(&app, configs, sqlDB, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		AppEnv:                goDotEnvVariable("APP_ENV"),
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderStatusTopic: goDotEnvVariable("KAFKA_ORDER_STATUS_TOPIC"),
		RetentionDays:         goDotEnvVariable("RETENTION_DAYS"),
		PurgeBatchSize:        goDotEnvVariable("PURGE_BATCH_SIZE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// connectDB opens the database through database/sql with the pq driver and
// hands the connection to gorm, so both layers share one pool.
func connectDB(configs cmd.Config) (*sql.DB, *gorm.DB) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	return sqlDB, gormDB
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) {
	retentionDays, err := strconv.Atoi(configs.RetentionDays)
	if err != nil || retentionDays <= 0 {
		retentionDays = 30
	}
	batchSize, err := strconv.Atoi(configs.PurgeBatchSize)
	if err != nil || batchSize <= 0 {
		batchSize = 100
	}

	jobLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreatePurgeDeletedOrdersCommandHandler(),
		time.Duration(retentionDays)*24*time.Hour,
		batchSize,
		jobLogger,
	)

	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, sqlDB *sql.DB, logger *zap.Logger) {
	e := echo.New()
	e.HideBanner = true

	serverMetrics := metrics.NewServerMetrics("api")
	e.Use(
		httpadapter.Observe(serverMetrics),
		httpadapter.RequestLogger(logger),
	)

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		logger,
		configs.AppEnv == "development",
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.GET("/health", func(c echo.Context) error {
		if err := sqlDB.PingContext(c.Request().Context()); err != nil {
			return c.String(http.StatusServiceUnavailable, "Unhealthy")
		}
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

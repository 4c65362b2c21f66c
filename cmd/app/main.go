package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"moveout/cmd"
	httpapi "moveout/internal/adapters/in/http"
	"moveout/internal/adapters/out/postgres/jobrepo"
	"moveout/internal/adapters/out/postgres/moverrepo"
	"moveout/internal/adapters/out/postgres/orderrepo"
	"moveout/internal/core/application/usecases/commands"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustConnectDB(configs)

	root := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		if err := root.Close(); err != nil {
			logger.Error("failed to close composition root", "error", err)
		}
	}()

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		KafkaBrokers:   strings.Split(goDotEnvVariable("KAFKA_BROKERS"), ","),
		StripeAPIKey:   goDotEnvVariable("STRIPE_API_KEY"),
		GeoServiceURL:  goDotEnvVariable("GEO_SERVICE_URL"),
		MoverShareRate: floatEnvVariable("MOVER_SHARE_RATE", commands.DefaultMoverShareRate),
		PerDiemRate:    floatEnvVariable("PER_DIEM_RATE", commands.DefaultPerDiemRate),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func floatEnvVariable(key string, fallback float64) float64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&jobrepo.JobDTO{},
		&moverrepo.MoverDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpapi.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateCreateReturnJobCommandHandler(),
		root.CreateRegisterMoverCommandHandler(),
		root.CreateAcceptJobCommandHandler(),
		root.CreateAcceptRouteCommandHandler(),
		root.CreateRequestArrivalConfirmationCommandHandler(),
		root.CreateConfirmHandoffCommandHandler(),
		root.CreateCompleteStorageDeliveryCommandHandler(),
		root.CreateCancelJobCommandHandler(),
		root.CreateGetAvailableJobsQueryHandler(),
		root.CreateGetMoverJobsQueryHandler(),
		root.CreateSuggestRouteQueryHandler(),
		root.Metrics(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courier/cmd"
	httpin "courier/internal/adapters/in/http"
	"courier/internal/adapters/out/postgres"
	"courier/internal/core/application/usecases/commands"

	_ "courier/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Courier Delivery API
//	@version		1.0
//	@description	Order placement, public barcode tracking, and delivery management.
//	@BasePath		/
//	@securityDefinitions.apikey	BearerAuth
//	@in				header
//	@name			Authorization

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("cannot migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	defer app.Close()

	seedAdmin(&app, configs)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("cannot start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:          goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderTopic:    goDotEnvVariable("KAFKA_ORDER_TOPIC"),
		KafkaDeliveryTopic: goDotEnvVariable("KAFKA_DELIVERY_TOPIC"),
		RedisAddr:          goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:      goDotEnvVariable("REDIS_PASSWORD"),
		RedisDB:            goDotEnvVariable("REDIS_DB"),
		TrackingCacheTTL:   goDotEnvVariable("TRACKING_CACHE_TTL"),
		JWTAccessSecret:    goDotEnvVariable("JWT_ACCESS_SECRET"),
		JWTRefreshSecret:   goDotEnvVariable("JWT_REFRESH_SECRET"),
		JWTAccessTTL:       goDotEnvVariable("JWT_ACCESS_TTL"),
		JWTRefreshTTL:      goDotEnvVariable("JWT_REFRESH_TTL"),
		AgentStatsSchedule: goDotEnvVariable("AGENT_STATS_SCHEDULE"),
		AdminEmail:         goDotEnvVariable("ADMIN_EMAIL"),
		AdminPassword:      goDotEnvVariable("ADMIN_PASSWORD"),
	}
	return config
}

// seedAdmin creates the first admin account. Registration only produces
// customers, so a fresh database would otherwise have no admin login.
func seedAdmin(app *cmd.CompositionRoot, configs cmd.Config) {
	if configs.AdminEmail == "" {
		return
	}

	seed, err := commands.NewBootstrapAdminCommand(configs.AdminEmail, configs.AdminPassword)
	if err != nil {
		log.Fatalf("invalid admin credentials: %v", err)
	}

	handler := app.CreateBootstrapAdminCommandHandler()
	if err := handler.Handle(context.Background(), seed); err != nil {
		log.Fatalf("cannot seed admin account: %v", err)
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("cannot connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := app.CreateHTTPServer()
	auth := httpin.NewAuthMiddleware(app.TokenService())
	server.RegisterRoutes(e, auth)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}

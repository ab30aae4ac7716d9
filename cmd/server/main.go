package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/config"
	"liyu1981.xyz/haccp-alert-service/pkg/db"
	haccpGrpc "liyu1981.xyz/haccp-alert-service/pkg/grpc"
	"liyu1981.xyz/haccp-alert-service/pkg/haccp"
	haccpHttp "liyu1981.xyz/haccp-alert-service/pkg/http"
	haccpMqtt "liyu1981.xyz/haccp-alert-service/pkg/mqtt"
	"liyu1981.xyz/haccp-alert-service/pkg/notify/email"
	"liyu1981.xyz/haccp-alert-service/pkg/notify/telegram"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal("Error loading .env file: ", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config, see .env.example: ", err)
	}

	dialector, err := db.DialectorFor(cfg)
	if err != nil {
		log.Fatal(err)
	}
	dbInstance := db.GetInstance(dialector)

	logger := common.GetLogger()
	defer common.SyncLogger()

	haccpCore := haccp.New(dbInstance)
	if err := haccpCore.Catalog.SeedDefaults(); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
	if err := haccpCore.Settings.SeedChannelSettings(cfg.ChannelSettings()); err != nil {
		log.Fatalf("failed to seed channel settings: %v", err)
	}

	mailer := email.NewClient()
	messenger := telegram.NewClient()
	dispatcher := haccp.NewDispatcher(mailer, messenger, haccpCore.Settings, cfg.NotifyTimeout)
	haccpCore.WithServices(haccp.ServiceOpts{Notifier: dispatcher})

	limiterStore := haccp.NewRateLimiterStore(cfg.DefaultRate, cfg.DefaultBurst)
	defaultLimiter := zap.String("default_limiter",
		fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst))

	var grpcServer *grpc.Server
	if cfg.GrpcHostPort != "" {
		healthServer := haccpGrpc.NewHealthServer(haccpCore, haccp.NewRateLimiterStore(cfg.DefaultRate, cfg.DefaultBurst))
		grpcServer = healthServer.Register()
		logger.Info("gRPC server created with:", defaultLimiter)

		listener, err := net.Listen("tcp", cfg.GrpcHostPort)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go func() {
			logger.Info("start gRPC server on " + cfg.GrpcHostPort)
			if err := grpcServer.Serve(listener); err != nil {
				logger.Error("grpc server failed to serve", zap.Error(err))
			}
		}()
	}

	ingestor := &haccpMqtt.Ingestor{
		Haccp:            haccpCore,
		RateLimiterStore: limiterStore,
		Topic:            cfg.MqttTopic,
		QoS:              haccpMqtt.DefaultQoS,
	}
	if cfg.MqttBroker != "" {
		if err := ingestor.Start(cfg.MqttBroker, cfg.MqttClientID); err != nil {
			log.Fatalf("failed to start mqtt ingestor: %v", err)
		}
		logger.Info("MQTT ingestor started", zap.String("broker", cfg.MqttBroker), zap.String("topic", cfg.MqttTopic))
	}

	if common.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rs := &haccpHttp.RestfulServer{
		Server:           gin.Default(),
		Haccp:            haccpCore,
		RateLimiterStore: limiterStore,
		Mailer:           mailer,
		Messenger:        messenger,
		ChannelTimeout:   cfg.NotifyTimeout,
	}
	rs.Setup()

	logger.Info("http server created with:", defaultLimiter)

	httpServer := &http.Server{
		Addr:    cfg.HttpHostPort,
		Handler: rs.Server,
	}

	go func() {
		logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	// no new readings may arrive once the dispatcher is drained
	ingestor.Stop()

	// in-flight alert notifications
	dispatcher.Wait()

	if err := dbInstance.Close(); err != nil {
		logger.Error("database close failed", zap.Error(err))
	}
}

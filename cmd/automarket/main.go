package main

import (
	"context"
	"fmt"

	"github.com/MikeRez0/automarket/internal/adapter/auth"
	"github.com/MikeRez0/automarket/internal/adapter/cache"
	"github.com/MikeRez0/automarket/internal/adapter/client/directory"
	"github.com/MikeRez0/automarket/internal/adapter/client/gateway"
	"github.com/MikeRez0/automarket/internal/adapter/config"
	"github.com/MikeRez0/automarket/internal/adapter/handler/http"
	"github.com/MikeRez0/automarket/internal/adapter/logger"
	"github.com/MikeRez0/automarket/internal/adapter/metrics"
	"github.com/MikeRez0/automarket/internal/adapter/notify"
	"github.com/MikeRez0/automarket/internal/adapter/storage"
	"github.com/MikeRez0/automarket/internal/adapter/storage/repository"
	"github.com/MikeRez0/automarket/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("order repo creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	attempts := cache.NewRedisCache(conf.Redis)

	gatewayClient, err := gateway.NewGatewayClient(conf.Gateway, attempts, log.Named("Gateway"))
	if err != nil {
		log.Error("gateway client creating error", zap.Error(err))
		return
	}
	directoryClient, err := directory.NewDirectoryClient(conf.Directory, log.Named("Directory"))
	if err != nil {
		log.Error("directory client creating error", zap.Error(err))
		return
	}
	notifier, err := notify.NewEmailNotifier(log.Named("Notify"))
	if err != nil {
		log.Error("notifier creating error", zap.Error(err))
		return
	}

	orderMetrics := metrics.NewOrderMetrics()

	svc, err := service.NewService(repo, tokenService, gatewayClient,
		directoryClient, notifier, orderMetrics, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, orderHandler, userHandler, paymentHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}

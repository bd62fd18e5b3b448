package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/melodex/goapi/base/ctx"
	"github.com/melodex/goapi/base/database/mongoclient"
	"github.com/melodex/goapi/base/database/redisclient"
	"github.com/melodex/goapi/base/log"
	"github.com/melodex/goapi/base/metrics"
	bValidator "github.com/melodex/goapi/base/validator"
	"github.com/melodex/goapi/domain"
	mmiddleware "github.com/melodex/goapi/middleware"
	"github.com/melodex/goapi/service/query"
	"github.com/melodex/goapi/service/redis"
	airdrop_delivery "github.com/melodex/goapi/stores/airdrop/delivery/http"
	airdrop_repository "github.com/melodex/goapi/stores/airdrop/repository"
	airdrop_usecase "github.com/melodex/goapi/stores/airdrop/usecase"
	escrow_repository "github.com/melodex/goapi/stores/escrow/repository"
	exchange_delivery "github.com/melodex/goapi/stores/exchange/delivery/http"
	exchange_repository "github.com/melodex/goapi/stores/exchange/repository"
	exchange_usecase "github.com/melodex/goapi/stores/exchange/usecase"
	hc_delivery "github.com/melodex/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/melodex/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/melodex/goapi/stores/healthcheck/usecase"
	marketplace_delivery "github.com/melodex/goapi/stores/marketplace/delivery/http"
	marketplace_repository "github.com/melodex/goapi/stores/marketplace/repository"
	marketplace_usecase "github.com/melodex/goapi/stores/marketplace/usecase"
	payment_repository "github.com/melodex/goapi/stores/payment/repository"
	registry_repository "github.com/melodex/goapi/stores/registry/repository"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// init registry chain adapter
	context.Info("init asset registry")
	engineAddress := domain.Address(viper.GetString("chain.engineAddress")).ToLower()
	chainRegistry, err := registry_repository.NewChainRegistry(context, &registry_repository.ChainRegistryCfg{
		RpcUrl:          viper.GetString("chain.rpcUrl"),
		ChainId:         viper.GetInt64("chain.chainId"),
		ContractAddress: viper.GetString("chain.contractAddress"),
		EngineAddress:   string(engineAddress),
		EngineKey:       viper.GetString("chain.engineKey"),
	})
	if err != nil {
		context.WithField("err", err).Panic("failed to init asset registry")
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	listingRepo := marketplace_repository.NewListingRepo(q)
	specialListingRepo := marketplace_repository.NewSpecialListingRepo(q)
	saleStateRepo := marketplace_repository.NewSaleStateRepo(q)
	holdingRepo := marketplace_repository.NewHoldingRepo(q)
	feeConfigRepo := marketplace_repository.NewFeeConfigRepo(q, redisCache)
	activityRepo := marketplace_repository.NewActivityRepo(q)
	counterRepo := marketplace_repository.NewCounterRepo(q)
	escrowRepo := escrow_repository.New(q)
	slotRepo := exchange_repository.NewSlotRepo(q)
	airdropRepo := airdrop_repository.NewAirdropRepo(q)
	claimRepo := airdrop_repository.NewClaimRepo(q)
	ledger := payment_repository.NewLedger(q)

	hc := hc_usecase.New(hcRepo)
	airdropUC := airdrop_usecase.New(&airdrop_usecase.AirdropUseCaseCfg{
		AirdropRepo:  airdropRepo,
		ClaimRepo:    claimRepo,
		EscrowRepo:   escrowRepo,
		ActivityRepo: activityRepo,
		CounterRepo:  counterRepo,
		Registry:     chainRegistry,
		Txn:          q,
		Engine:       engineAddress,
	})
	marketplaceUC := marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		ListingRepo:        listingRepo,
		SpecialListingRepo: specialListingRepo,
		SaleStateRepo:      saleStateRepo,
		HoldingRepo:        holdingRepo,
		FeeConfigRepo:      feeConfigRepo,
		ActivityRepo:       activityRepo,
		CounterRepo:        counterRepo,
		AirdropUC:          airdropUC,
		Registry:           chainRegistry,
		Ledger:             ledger,
		Txn:                q,
		PlatformOwner:      domain.Address(viper.GetString("platform.owner")),
		Treasury:           domain.Address(viper.GetString("platform.treasury")),
		Engine:             engineAddress,
	})
	exchangeUC := exchange_usecase.New(&exchange_usecase.ExchangeUseCaseCfg{
		SlotRepo:     slotRepo,
		EscrowRepo:   escrowRepo,
		ActivityRepo: activityRepo,
		CounterRepo:  counterRepo,
		Registry:     chainRegistry,
		Txn:          q,
		Engine:       engineAddress,
	})

	hc_delivery.New(e, hc)
	marketplace_delivery.New(e, marketplaceUC)
	exchange_delivery.New(e, exchangeUC)
	airdrop_delivery.New(e, airdropUC)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

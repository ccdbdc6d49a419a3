package application

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"petgame/internal/config"
	"petgame/internal/domain/service/account"
	"petgame/internal/domain/service/pet"
	"petgame/internal/domain/service/session"
	"petgame/internal/domain/service/trade"
	"petgame/internal/infrastructure/persistence"
	"petgame/internal/infrastructure/sessionstore"
	"petgame/internal/server"
	"petgame/internal/worker"
	"petgame/pkg/application/connectors"
	"petgame/pkg/application/modules"
	"petgame/pkg/logx"
	"petgame/pkg/middlewarex"
)

func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	rd := &connectors.Redis{
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	redisClient := rd.Client(ctx)
	defer rd.Close(ctx)

	// Repositories
	userRepo := persistence.NewUserRepository(db)
	petRepo := persistence.NewPetRepository(db)
	inventoryRepo := persistence.NewInventoryRepository(db)
	progressRepo := persistence.NewProgressRepository(db)
	offerRepo := persistence.NewOfferRepository(db)

	// Queue client
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DatabaseNumber,
	})
	defer asynqClient.Close() //nolint:errcheck

	// Services
	sessionService := session.NewService(sessionstore.NewRedisStore(redisClient, cfg.Auth.SessionTTL))
	accountService := account.NewService(userRepo, sessionService).WithBcryptCost(cfg.Auth.BcryptCost)
	petService := pet.NewService(
		petRepo,
		userRepo,
		inventoryRepo,
		progressRepo,
		worker.NewQuestRewardEnqueuer(asynqClient),
	)
	tradeService := trade.NewService(offerRepo, userRepo)

	// HTTP
	srv := server.NewServer(
		server.NewAuthServer(accountService),
		server.NewPetServer(petService),
		server.NewTradeServer(tradeService),
		sessionService,
	)

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.CORS,
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, cfg.Server.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.Server.LogFieldMaxLen),
		middlewarex.Recovery,
	)
	srv.RegisterRoutes(router)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.Server.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.Server.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.Server.AppName,
		Version:       cfg.Server.AppVersion,
		ListenAddress: cfg.Server.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.Server.MetricListenAddress}.Run(ctx, g)

	modules.AsynqServer{
		RedisAddress:  cfg.Redis.Address,
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DatabaseNumber,
	}.Run(
		ctx, g,
		modules.AsynqQueues{"default": 1},
		modules.AsynqHandler{
			Pattern: worker.TaskTypeQuestReward,
			Handle:  worker.NewQuestRewardHandler(progressRepo).ProcessTask,
		},
	)

	if cfg.Decay.Enabled {
		decay := worker.NewStatDecay(petRepo, cfg.Decay.Interval)

		if err := decay.Start(ctx); err != nil {
			return fmt.Errorf("decay.Start: %w", err)
		}
		defer decay.Stop()
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

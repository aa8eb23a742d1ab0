package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ChokeGuy/exchange-office/api/directory"
	"github.com/ChokeGuy/exchange-office/api/ratesync"
	"github.com/ChokeGuy/exchange-office/api/transfer"
	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	"github.com/ChokeGuy/exchange-office/engine"
	cf "github.com/ChokeGuy/exchange-office/pkg/config"
	dbmigrations "github.com/ChokeGuy/exchange-office/pkg/db-migrations"
	"github.com/ChokeGuy/exchange-office/pkg/logger"
	"github.com/ChokeGuy/exchange-office/pkg/rates"
	sv "github.com/ChokeGuy/exchange-office/server"
	"github.com/ChokeGuy/exchange-office/worker"
	"github.com/hibiken/asynq"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := cf.LoadConfig("./")

	if err != nil {
		log.Fatal().Msgf("cannot load config: %v", err)
	}

	logger.Setup(config.ENV)

	conn, err := sql.Open(config.DBDriver, config.DBSource)

	if err != nil {
		log.Fatal().Msgf("cannot connect to db: %v", err)
	}

	dbmigrations.RunDBMigration(config)

	store := db.NewStore(conn)

	redisOpt := asynq.RedisClientOpt{
		Addr: config.RedisAddress,
	}
	taskDistributor := worker.NewRedisTaskDistributor(redisOpt)

	dir := engine.NewDirectory(store, config.DirectoryCacheTTL)
	fetcher := rates.NewHTTPProvider(config.RateProviderUrl)
	transfers := engine.NewCoordinator(store, dir)
	rateSync := engine.NewRateSyncCoordinator(store, dir, fetcher, config.RateSyncTTL)

	server, err := sv.NewServer(store, &config, transfers, rateSync, taskDistributor)

	if err != nil {
		log.Fatal().Msgf("cannot create server: %v", err)
	}

	//Routes
	transferHandler := transfer.NewTransferHandler(server)
	transferHandler.MapRoutes()

	rateSyncHandler := ratesync.NewRateSyncHandler(server)
	rateSyncHandler.MapRoutes()

	directoryHandler := directory.NewDirectoryHandler(server)
	directoryHandler.MapRoutes()

	server.HttpServer = &http.Server{
		Addr:    config.HttpServerAddress,
		Handler: server.Router,
	}

	go worker.RunTaskProcessor(config, redisOpt, store)
	go runTaskScheduler(config, redisOpt)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal().Msgf("cannot start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Fatal().Msgf("cannot stop server: %v", err)
	}
}

// runTaskScheduler periodically enqueues the rate-sync expiry sweep.
func runTaskScheduler(config cf.Config, redisOpt asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: logger.TaskLogger(),
	})

	cronSpec := fmt.Sprintf("@every %s", config.CleanupInterval)
	task := asynq.NewTask(worker.TaskCleanupRateSync, nil, asynq.Queue(worker.QueueDefault))

	if _, err := scheduler.Register(cronSpec, task); err != nil {
		log.Fatal().Msgf("cannot register cleanup task: %v", err)
	}

	log.Info().Msg("start task scheduler")

	if err := scheduler.Run(); err != nil {
		log.Fatal().Err(err).Msg("fail to start task scheduler")
	}
}

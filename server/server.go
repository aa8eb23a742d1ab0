package server

import (
	"context"
	"net/http"
	"testing"

	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	"github.com/ChokeGuy/exchange-office/engine"
	pkg "github.com/ChokeGuy/exchange-office/pkg/config"
	"github.com/ChokeGuy/exchange-office/validations"
	"github.com/ChokeGuy/exchange-office/worker"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

// Server serves HTTP requests for the exchange back office.
type Server struct {
	Config          *pkg.Config
	Store           db.Store
	Router          *gin.Engine
	Transfers       *engine.Coordinator
	RateSync        *engine.RateSyncCoordinator
	TaskDistributor worker.TaskDistributor
	HttpServer      *http.Server
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(
	store db.Store,
	config *pkg.Config,
	transfers *engine.Coordinator,
	rateSync *engine.RateSyncCoordinator,
	taskDistributor worker.TaskDistributor,
) (*Server, error) {
	server := &Server{
		Store:           store,
		Config:          config,
		Transfers:       transfers,
		RateSync:        rateSync,
		TaskDistributor: taskDistributor,
	}

	router := gin.Default()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("currencycode", validations.ValidCurrencyCode)
		v.RegisterValidation("transfertype", validations.ValidTransferType)
		v.RegisterValidation("ratesource", validations.ValidRateSource)
	}

	server.Router = router
	return server, nil
}

// NewTestServer creates a new HTTP server for testing.
func NewTestServer(t *testing.T, store db.Store, cf *pkg.Config, taskDistributor worker.TaskDistributor) *Server {
	dir := engine.NewDirectory(store, cf.DirectoryCacheTTL)
	transfers := engine.NewCoordinator(store, dir)
	rateSync := engine.NewRateSyncCoordinator(store, dir, nil, cf.RateSyncTTL)

	server, err := NewServer(store, cf, transfers, rateSync, taskDistributor)
	require.NoError(t, err)

	return server
}

func (server *Server) Start() error {
	log.Info().Msgf("starting HTTP server on %s", server.Config.HttpServerAddress)
	if err := server.HttpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (server *Server) Stop(ctx context.Context) error {
	log.Info().Msg("gracefully stopping HTTP server")
	err := server.HttpServer.Shutdown(ctx)

	if err != nil {
		log.Error().Err(err).Msg("fail to stop HTTP server")
		return err
	}
	log.Info().Msg("HTTP server shutdown is complete")
	return nil
}

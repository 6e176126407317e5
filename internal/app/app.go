package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/wurt83ow/maintracker/docs" // connecting generated Swagger files
	"github.com/wurt83ow/maintracker/internal/apiservice"
	authz "github.com/wurt83ow/maintracker/internal/authorization"
	"github.com/wurt83ow/maintracker/internal/bdkeeper"
	"github.com/wurt83ow/maintracker/internal/config"
	"github.com/wurt83ow/maintracker/internal/controllers"
	"github.com/wurt83ow/maintracker/internal/filekeeper"
	"github.com/wurt83ow/maintracker/internal/logger"
	"github.com/wurt83ow/maintracker/internal/middleware"
	"github.com/wurt83ow/maintracker/internal/storage"
	"github.com/wurt83ow/maintracker/internal/workerpool"
	"go.uber.org/zap"
)

type Server struct {
	srv        *http.Server
	ctx        context.Context
	keeper     storage.Keeper
	pool       *workerpool.Pool
	apiService *apiservice.ApiService
	log        *logger.Logger
}

// NewServer creates a new Server instance with the provided context
func NewServer(ctx context.Context) *Server {
	server := new(Server)
	server.ctx = ctx
	return server
}

// Serve starts the server and blocks until the context is cancelled
func (server *Server) Serve() {
	// create and initialize a new option instance
	option := config.NewOptions()
	option.ParseFlags()

	// get a new logger
	nLogger, err := logger.NewLogger(option.LogLevel())
	if err != nil {
		log.Fatalln(err)
	}
	server.log = nLogger

	// initialize the keeper instance
	keeper, err := initializeKeeper(option, nLogger)
	if err != nil {
		nLogger.Error("Failed to initialize keeper", zap.Error(err))
		return
	}
	server.keeper = keeper

	// initialize the storage instance
	store := storage.NewStorage(keeper, nLogger)
	if err := store.PrepareEvents(server.ctx); err != nil {
		nLogger.Warn("Failed to assign ids to stored events", zap.Error(err))
	}

	if err := store.EnsureAdmin(server.ctx, option.AdminPassword()); err != nil {
		nLogger.Warn("Failed to create the admin account", zap.Error(err))
	}

	// create a new workerpool for concurrency task processing
	var allTask []*workerpool.Task
	server.pool = workerpool.NewPool(allTask, option.Concurrency, nLogger)

	// create a new NewJWTAuthz for user authorization
	jwtAuthz := authz.NewJWTAuthz(store, option.JWTSigningKey(), nLogger)

	// create a new controller to process incoming requests
	basecontr := controllers.NewBaseController(store, nLogger, jwtAuthz)

	// get a middleware for logging requests
	reqLog := middleware.NewReqLog(nLogger)

	// start the worker pool in the background
	go server.pool.RunBackground()

	// create a new controller for outgoing alerts
	extcontr := controllers.NewExtController(option.NotifyWebhookURL, nLogger)

	server.apiService = apiservice.NewApiService(extcontr, server.pool, store, nLogger,
		option.TaskExecutionInterval, option.NotifyHorizonDays)
	server.apiService.Start()

	// create router and mount routes
	r := chi.NewRouter()
	r.Use(reqLog.RequestLogger)
	r.Mount("/", basecontr.Route())

	// Add route for Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// configure and start the server
	server.srv = startServer(r, option.RunAddr())
	nLogger.Info("Running server", zap.String("address", option.RunAddr()))

	// Block execution until the root context is cancelled
	<-server.ctx.Done()

	// Perform graceful server shutdown
	server.Shutdown()
}

// initializeKeeper picks PostgreSQL when a dsn is configured and csv files otherwise
func initializeKeeper(option *config.Options, logger *logger.Logger) (storage.Keeper, error) {
	if option.DataBaseDSN() == "" {
		logger.Info("DataBaseDSN is empty, using csv files", zap.String("dir", option.DataDir()))
		return filekeeper.NewFileKeeper(option.DataDir(), logger)
	}

	kp := bdkeeper.NewBDKeeper(option.DataBaseDSN, logger)
	if kp == nil {
		return nil, errors.New("unable to connect to database")
	}

	return kp, nil
}

// startServer configures and starts an HTTP server with the provided router and address
func startServer(router chi.Router, address string) *http.Server {
	const (
		oneMegabyte = 1 << 20
		readTimeout = 3 * time.Second
	)

	server := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      readTimeout,
		IdleTimeout:       readTimeout,
		ReadTimeout:       readTimeout,
		MaxHeaderBytes:    oneMegabyte, // 1 MB
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalln(err)
		}
	}()

	return server
}

// Shutdown gracefully shuts down the server and its background workers
func (server *Server) Shutdown() {
	log.Printf("server stopped")

	const shutdownTimeout = 5 * time.Second
	ctxShutDown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)

	defer cancel()

	if server.srv != nil {
		if err := server.srv.Shutdown(ctxShutDown); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				log.Printf("server Shutdown Failed:%s", err)
			}
		}
	}

	if server.apiService != nil {
		server.apiService.Stop()
	}

	if server.pool != nil {
		server.pool.Stop()
	}

	if server.keeper != nil {
		server.keeper.Close()
	}

	if server.log != nil {
		server.log.Sync()
	}

	log.Println("server exited properly")
}

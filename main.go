package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dtjokroa/Cat-Mouse-213/api"
	gameapi "github.com/dtjokroa/Cat-Mouse-213/api/game"
	api_i "github.com/dtjokroa/Cat-Mouse-213/api/i"
	"github.com/dtjokroa/Cat-Mouse-213/config"
	logger "github.com/dtjokroa/Cat-Mouse-213/infrastruture/log"
	"github.com/dtjokroa/Cat-Mouse-213/service"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	gameSessionManager *service.GameSessionManager
	gameController     api_i.Controller
	router             *api.Router
	appLogger          *logger.Logger
)

func newLogger(name, color string) *logger.Logger {
	l, err := logger.New(name, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", name, err)
		os.Exit(1)
	}
	if err := l.SetLevel(config.Envs.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "setting %s log level: %v\n", name, err)
		os.Exit(1)
	}
	return l
}

func initSessionManager() {
	var err error
	gameSessionManager, err = service.NewGameSessionManager(&service.Config{
		MazeWidth:             config.Envs.MazeWidth,
		MazeHeight:            config.Envs.MazeHeight,
		CheeseGoal:            config.Envs.CheeseGoal,
		MaxGenerationAttempts: config.Envs.MaxGenerationAttempts,
		MaxSessions:           config.Envs.MaxSessions,
		Seed:                  config.Envs.RandomSeed,
		Logger:                newLogger("SESSION-MANAGER", config.ColorCyan),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Session manager initialized")
}

func initGameController() {
	var err error
	gameController, err = gameapi.NewGameController(gameapi.Config{
		Sessions: gameSessionManager,
		Logger:   newLogger("GAME-API", config.ColorMagenta),
		About:    config.Envs.AboutAuthor,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Game controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	httpLogger := newLogger("HTTP", config.ColorBlue)

	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{gameController},
		Middlewares: []gin.HandlerFunc{api.Recovery(httpLogger), api.RequestLogger(httpLogger)},
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger = newLogger("APP", config.ColorGreen)

	initSessionManager()
	initGameController()
	initRouter()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		appLogger.Info(fmt.Sprintf("Listening on %s:%v", config.Envs.HostIP, config.Envs.RESTPort))
		errs <- router.Run()
	}()

	select {
	case err := <-errs:
		if err != nil {
			appLogger.Error(fmt.Sprintf("Starting server: %v", err))
			os.Exit(1)
		}
	case <-ctx.Done():
		appLogger.Info("Shutting down")
	}

	// Closing the games ends open feeds before the server waits on them.
	gameSessionManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := router.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(fmt.Sprintf("Shutting down server: %v", err))
	}
}

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/dtjokroa/Cat-Mouse-213/api/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	middlewares []gin.HandlerFunc
	server      *http.Server
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
	Middlewares []gin.HandlerFunc // Applied to every route, in order
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	r := &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		middlewares: config.Middlewares,
	}
	r.server = &http.Server{
		Addr:    r.addr,
		Handler: r.Engine(),
	}
	return r
}

// Engine builds the gin engine with every controller registered under the base URL.
func (r *Router) Engine() *gin.Engine {
	router := gin.New()
	router.Use(r.middlewares...)

	api := router.Group(r.baseURL)
	{
		for _, c := range r.controllers {
			c.Register(api)
		}
	}
	return router
}

// Run serves HTTP until Shutdown is called. It returns nil after a clean shutdown.
// Calling Shutdown first makes Run return nil at once.
func (r *Router) Run() error {
	if err := r.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx expires.
func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}

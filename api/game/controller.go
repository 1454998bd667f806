package gameapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dtjokroa/Cat-Mouse-213/game"
	"github.com/dtjokroa/Cat-Mouse-213/service"
	"github.com/dtjokroa/Cat-Mouse-213/service/i"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const contextGameID = "gameID"

// GameController serves the game routes.
type GameController struct {
	sessions i.GameSessionManager
	logger   i.Logger
	about    string
	upgrader websocket.Upgrader
}

// Config holds the dependencies of a GameController.
type Config struct {
	Sessions i.GameSessionManager
	Logger   i.Logger
	About    string // Returned by GET /about
}

// NewGameController initializes a GameController.
func NewGameController(c Config) (*GameController, error) {
	if c.Sessions == nil {
		return nil, errors.New("game controller requires a session manager")
	}
	if c.Logger == nil {
		return nil, errors.New("game controller requires a logger")
	}

	return &GameController{
		sessions: c.Sessions,
		logger:   c.Logger,
		about:    c.About,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}, nil
}

// Register registers the game routes.
func (gc *GameController) Register(route *gin.RouterGroup) {
	route.GET("/about", gc.getAbout)

	games := route.Group("/games")
	{
		games.GET("", gc.list)
		games.POST("", gc.create)

		byID := games.Group("/:id", gameID)
		{
			byID.GET("", gc.get)
			byID.DELETE("", gc.end)
			byID.GET("/board", gc.board)
			byID.POST("/moves", gc.move)
			byID.POST("/cheatstate", gc.cheat)
			byID.GET("/feed", gc.feed)
		}
	}
}

// gameID parses the :id path parameter; anything but a positive integer is an unknown game.
func gameID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no game %q", ctx.Param("id"))})
		return
	}
	ctx.Set(contextGameID, id)
	ctx.Next()
}

func (gc *GameController) getAbout(ctx *gin.Context) {
	ctx.String(http.StatusOK, gc.about)
}

func (gc *GameController) list(ctx *gin.Context) {
	entries := gc.sessions.Sessions()
	response := make([]GameResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, newGameResponse(e.ID, e.State))
	}
	ctx.JSON(http.StatusOK, response)
}

func (gc *GameController) create(ctx *gin.Context) {
	id, state, err := gc.sessions.NewSession()
	if err != nil {
		gc.abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newGameResponse(id, state))
}

func (gc *GameController) get(ctx *gin.Context) {
	id := ctx.GetInt(contextGameID)
	state, err := gc.sessions.Session(id)
	if err != nil {
		gc.abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newGameResponse(id, state))
}

func (gc *GameController) end(ctx *gin.Context) {
	if err := gc.sessions.EndSession(ctx.GetInt(contextGameID)); err != nil {
		gc.abortWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (gc *GameController) board(ctx *gin.Context) {
	state, err := gc.sessions.Session(ctx.GetInt(contextGameID))
	if err != nil {
		gc.abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBoardResponse(state))
}

func (gc *GameController) move(ctx *gin.Context) {
	gc.command(ctx, gc.sessions.Move)
}

func (gc *GameController) cheat(ctx *gin.Context) {
	gc.command(ctx, gc.sessions.Cheat)
}

// command reads a raw command token from the body and applies it with apply.
func (gc *GameController) command(ctx *gin.Context, apply func(int, string) (game.State, error)) {
	id := ctx.GetInt(contextGameID)
	body, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := apply(id, commandToken(body))
	if err != nil {
		gc.abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, newGameResponse(id, state))
}

// commandToken accepts the token bare or as a JSON string.
func commandToken(body []byte) string {
	token := strings.TrimSpace(string(body))
	if len(token) >= 2 && strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) {
		token = token[1 : len(token)-1]
	}
	return token
}

func (gc *GameController) abortWithError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidMove), errors.Is(err, service.ErrUnknownCommand):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrTooManySessions):
		status = http.StatusServiceUnavailable
	default:
		gc.logger.Error(fmt.Sprintf("%s %s: %s", ctx.Request.Method, ctx.Request.URL.Path, err))
	}
	ctx.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

package gameapi

import (
	"fmt"
	"time"

	"github.com/dtjokroa/Cat-Mouse-213/game"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// feed upgrades to a websocket and pushes the game after every committed command.
func (gc *GameController) feed(ctx *gin.Context) {
	id := ctx.GetInt(contextGameID)

	updates, cancel, err := gc.sessions.Subscribe(id)
	if err != nil {
		gc.abortWithError(ctx, err)
		return
	}
	defer cancel()

	current, err := gc.sessions.Session(id)
	if err != nil {
		gc.abortWithError(ctx, err)
		return
	}

	conn, err := gc.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		gc.logger.Warning(fmt.Sprintf("feed %d: websocket upgrade: %s", id, err))
		return
	}
	defer conn.Close()
	gc.logger.Info(fmt.Sprintf("feed %d: client %s connected", id, conn.RemoteAddr()))

	closed := make(chan struct{})
	go readUntilClosed(conn, closed)

	if err := writeState(conn, id, current); err != nil {
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case state, ok := <-updates:
			if !ok {
				_ = conn.WriteControl(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game ended"),
					time.Now().Add(writeWait),
				)
				return
			}
			if err := writeState(conn, id, state); err != nil {
				gc.logger.Debug(fmt.Sprintf("feed %d: write: %s", id, err))
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-closed:
			gc.logger.Info(fmt.Sprintf("feed %d: client %s disconnected", id, conn.RemoteAddr()))
			return
		}
	}
}

func writeState(conn *websocket.Conn, id int, s game.State) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(FeedMessage{
		Game:  newGameResponse(id, s),
		Board: newBoardResponse(s),
	})
}

// readUntilClosed discards client messages and closes done once the connection fails.
func readUntilClosed(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

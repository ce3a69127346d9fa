package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS upgrades the request and subscribes the connection to the board
// given in the board_id query parameter.
func ServeWS(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		boardID := c.Query("board_id")
		if boardID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "board_id is required"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			zap.L().Error("websocket upgrade failed", zap.Error(err))
			return
		}

		client := NewClient(hub, conn, boardID)
		hub.Register(client)

		go client.WritePump()
		go client.ReadPump()
	}
}

package controllers

import (
	"net/http"
	"time"

	"github.com/davidgrezoski/vitaflow/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// keepAliveInterval is short enough to survive common idle-connection
// timeouts on mobile networks and reverse proxies.
const keepAliveInterval = 25 * time.Second

type RealtimeController struct {
	RT *services.RealtimeHub
}

func NewRealtimeController(rt *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{RT: rt}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// EventsWS streams gamification events (level-ups, achievements) for the
// lifetime of the connection. Inbound frames are drained only to detect the
// close; all writes, pings included, go through the client's serialized
// writer so they never race a broadcast.
func (rc *RealtimeController) EventsWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{UserID: uid, Conn: conn}
	rc.RT.Register(cl)

	go func() {
		t := time.NewTicker(keepAliveInterval)
		defer t.Stop()
		for range t.C {
			if err := cl.Ping(); err != nil {
				rc.RT.Unregister(cl)
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}

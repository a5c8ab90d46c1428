package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 5 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// statusFeed upgrades to a websocket and pushes a StatusResponse on connect
// and after every state change. Incoming messages are ignored; the feed ends
// when the client goes away or the server base context is canceled.
func statusFeed(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already replied with an HTTP error.
			return
		}
		defer conn.Close()
		wsClients.Inc()
		defer wsClients.Dec()

		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		log := zlog.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()
		log.Debug().Str("remote", r.RemoteAddr).Msg("ws client attached")

		go readPump(conn, cancel)

		since, err := writeStatus(conn, svc)
		if err != nil {
			return
		}
		changes := make(chan uint64)
		go func() {
			defer close(changes)
			for {
				v, err := svc.WaitForChange(ctx, since)
				if err != nil {
					return
				}
				select {
				case changes <- v:
					since = v
				case <-ctx.Done():
					return
				}
			}
		}()

		ping := time.NewTicker(wsPingPeriod)
		defer ping.Stop()

		for {
			select {
			case _, ok := <-changes:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(wsWriteWait))
					return
				}
				if _, err := writeStatus(conn, svc); err != nil {
					log.Debug().Err(err).Msg("ws write failed")
					cancel()
					return
				}
			case <-ping.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
					cancel()
					return
				}
			}
		}
	}
}

// writeStatus pushes the current status and returns the version it reflects.
func writeStatus(conn *websocket.Conn, svc Service) (uint64, error) {
	st := svc.Status()
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return st.Version, conn.WriteJSON(st)
}

// readPump drains client frames so control messages are processed, and
// cancels the feed once the connection fails.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(1 << 12)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

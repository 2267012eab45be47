// Package server exposes the game core over a websocket: one isolated
// session per connection, inbound JSON actions mapped 1:1 to core
// transitions, and a snapshot plus the emitted events written back after
// every transition. Auto-drop ticks come from a clock.Driver so the drop
// interval follows level-ups and stops on game over.
package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/core"
)

// GameServer upgrades websocket connections and runs one game session
// per connection. Each connection is owned by a single goroutine, so
// transitions on a session are never concurrent.
type GameServer struct {
	Upgrader *websocket.Upgrader
}

// NewGameServer returns a server with a default upgrader.
func NewGameServer() *GameServer {
	return &GameServer{
		Upgrader: &websocket.Upgrader{},
	}
}

// Handler returns the websocket endpoint. A client may pass ?seed=N to
// get a reproducible piece sequence.
func (gs *GameServer) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := gs.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.WithError(err).Warn("websocket upgrade failed")
			return
		}

		src := core.NewSource()
		if raw := r.URL.Query().Get("seed"); raw != "" {
			seed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				log.WithField("seed", raw).Warn("ignoring unparsable seed")
			} else {
				src = core.NewSeededSource(seed)
			}
		}

		go gs.play(conn, src, r.RemoteAddr)
	}
}

// play owns one connection's session from upgrade to close.
func (gs *GameServer) play(conn *websocket.Conn, src core.Source, remote string) {
	logger := log.WithField("remote", remote)
	logger.Info("session opened")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer conn.Close()

	driver := clock.New()
	go driver.Run(ctx)

	inbound := make(chan core.Action)
	go readActions(ctx, conn, inbound, logger)

	sess := core.NewSession()
	for {
		var act core.Action
		select {
		case a, ok := <-inbound:
			if !ok {
				logger.Info("session closed")
				return
			}
			act = a
		case t := <-driver.C:
			act = core.Tick(time.Since(t))
		}

		var events []core.Event
		sess, events = core.Apply(sess, act, src)

		// Rescheduling after every transition is what makes level-up
		// speedups and the game-over stop reach the timer.
		driver.Reschedule(sess.Interval)

		msg := ServerMessage{Snapshot: sess.Snapshot(), Events: events}
		if msg.Events == nil {
			msg.Events = []core.Event{}
		}
		if err := conn.WriteJSON(msg); err != nil {
			logger.WithError(err).Info("write failed, closing session")
			return
		}
	}
}

// readActions decodes inbound messages until the connection drops or
// ctx is cancelled. Unknown ops are logged and skipped rather than
// ending the session. The send is guarded on ctx so the reader cannot
// stay parked on a decoded action after play has returned.
func readActions(ctx context.Context, conn *websocket.Conn, out chan<- core.Action, logger *log.Entry) {
	defer close(out)
	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WithError(err).Warn("read failed")
			}
			return
		}
		act, err := msg.action()
		if err != nil {
			logger.WithError(err).Warn("dropping message")
			continue
		}
		select {
		case out <- act:
		case <-ctx.Done():
			return
		}
	}
}

package server_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/core"
	"github.com/plus3/blockfall/server"
)

func dial(t *testing.T, query string) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(server.NewGameServer().Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// send writes an action and reads replies until the one answering it
// arrives. Auto-drop tick replies can interleave at any point once a
// session is running, so anything else is skipped.
func send(t *testing.T, conn *websocket.Conn, op string, want core.EventKind) server.ServerMessage {
	t.Helper()
	require.NoError(t, conn.WriteJSON(server.ClientMessage{Op: op}))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	for {
		var msg server.ServerMessage
		require.NoError(t, conn.ReadJSON(&msg))
		if len(msg.Events) > 0 && msg.Events[0].Kind == want {
			return msg
		}
	}
}

func TestPlaySession(t *testing.T) {
	conn := dial(t, "?seed=7")

	msg := send(t, conn, "start", core.EventStarted)
	require.Len(t, msg.Events, 1)
	assert.True(t, msg.Snapshot.Started)
	assert.Equal(t, int64(500), msg.Snapshot.Interval)
	assert.Equal(t, 0, msg.Snapshot.Score)

	msg = send(t, conn, "moveLeft", core.EventMoved)
	assert.Equal(t, 2, msg.Snapshot.Active.X, "spawn column minus one")

	msg = send(t, conn, "hardDrop", core.EventHardDropped)
	assert.NotEqual(t, core.Piece{}, msg.Snapshot.Active)
}

func TestActionBeforeStartIsRejected(t *testing.T) {
	conn := dial(t, "")

	msg := send(t, conn, "softDrop", core.EventRejected)
	require.Len(t, msg.Events, 1)
	assert.Equal(t, core.ReasonNotRunning, msg.Events[0].Reason)
	assert.False(t, msg.Snapshot.Started)
}

func TestSeededSessionsMatch(t *testing.T) {
	a := dial(t, "?seed=99")
	b := dial(t, "?seed=99")

	snapA := send(t, a, "start", core.EventStarted).Snapshot
	snapB := send(t, b, "start", core.EventStarted).Snapshot
	assert.Equal(t, snapA.Active.Kind, snapB.Active.Kind)
	assert.Equal(t, snapA.Next, snapB.Next)
}

func TestQuietLockWritesEmptyEventArray(t *testing.T) {
	conn := dial(t, "?seed=3")
	send(t, conn, "start", core.EventStarted)

	// Soft-drop the first piece to the floor. The lock clears nothing on
	// an empty board and emits no events, but the reply must still carry
	// an events array rather than null.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for i := 0; i < 30; i++ {
		require.NoError(t, conn.WriteJSON(server.ClientMessage{Op: "softDrop"}))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg server.ServerMessage
		require.NoError(t, json.Unmarshal(raw, &msg))
		if len(msg.Events) == 0 {
			assert.Contains(t, string(raw), `"events":[]`)
			assert.Equal(t, 0, msg.Snapshot.Active.Y, "on-deck piece promoted after the lock")
			return
		}
	}
	t.Fatal("piece never locked")
}

func TestAutoDropTicks(t *testing.T) {
	conn := dial(t, "?seed=1")
	send(t, conn, "start", core.EventStarted)

	// No client input: the clock driver must push the piece down on its
	// own within the initial 500ms interval.
	var msg server.ServerMessage
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	require.NotEmpty(t, msg.Events)
	assert.Equal(t, core.EventDropped, msg.Events[0].Kind)
	assert.Equal(t, 1, msg.Snapshot.Active.Y)
}

package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// A keep-alive ping firing while a broadcast is in flight must not hit the
// connection from a second goroutine; both go through the client's
// serialized writer.
func TestPingDuringBroadcast(t *testing.T) {
	hub := NewRealtimeHub()
	registered := make(chan *WSClient, 1)

	up := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		cl := &WSClient{UserID: 7, Conn: conn}
		hub.Register(cl)
		registered <- cl
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Unregister(cl)
				return
			}
		}
	}))
	defer srv.Close()

	peer, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer peer.Close()

	cl := <-registered

	const events = 50
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < events; i++ {
			if err := cl.Ping(); err != nil {
				t.Errorf("ping failed: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < events; i++ {
			hub.Broadcast(7, map[string]any{"kind": "level_up", "level": i})
		}
	}()

	// reading also services the ping frames via the default ping handler
	peer.SetReadDeadline(time.Now().Add(5 * time.Second))
	for received := 0; received < events; received++ {
		if _, _, err := peer.ReadMessage(); err != nil {
			t.Fatalf("read failed after %d events: %v", received, err)
		}
	}
	wg.Wait()
}

func TestBroadcastReachesOnlyTargetUser(t *testing.T) {
	hub := NewRealtimeHub()

	up := websocket.Upgrader{}
	conns := make(chan *websocket.Conn, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		conns <- conn
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	target, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer target.Close()
	other, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer other.Close()

	hub.Register(&WSClient{UserID: 1, Conn: <-conns})
	hub.Register(&WSClient{UserID: 2, Conn: <-conns})

	hub.Broadcast(1, map[string]any{"kind": "achievement", "title": "Hidratação completa! 💧"})

	target.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, msg, err := target.ReadMessage(); err != nil {
		t.Fatalf("target read failed: %v", err)
	} else if !strings.Contains(string(msg), "achievement") {
		t.Errorf("unexpected payload: %s", msg)
	}

	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, msg, err := other.ReadMessage(); err == nil {
		t.Errorf("user 2 received user 1's event: %s", msg)
	}
}

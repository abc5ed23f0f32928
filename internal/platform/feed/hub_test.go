package feed

import (
	"context"
	"encoding/json"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial(%s) failed: %v", url, err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readJSON(t *testing.T, ws *websocket.Conn, v any) {
	t.Helper()

	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := ws.ReadJSON(v); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubHelloAndPublish(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	ws := dial(t, "ws"+strings.TrimPrefix(srv.URL, "http"))

	var hello HelloMsg
	readJSON(t, ws, &hello)
	if hello.Type != "hello" || hello.ID == "" {
		t.Errorf("hello = %+v", hello)
	}

	waitFor(t, "registration", func() bool { return hub.Count() == 1 })

	if err := hub.Publish(map[string]int{"score": 42}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	var frame map[string]int
	readJSON(t, ws, &frame)
	if frame["score"] != 42 {
		t.Errorf("frame = %v, expected score 42", frame)
	}
}

func TestHubFanOut(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	a := dial(t, url)
	b := dial(t, url)

	var hello HelloMsg
	readJSON(t, a, &hello)
	idA := hello.ID
	readJSON(t, b, &hello)
	if hello.ID == idA {
		t.Error("spectators should get distinct IDs")
	}

	waitFor(t, "both spectators", func() bool { return hub.Count() == 2 })
	hub.Publish(map[string]string{"t": "state"})

	for _, ws := range []*websocket.Conn{a, b} {
		var frame map[string]string
		readJSON(t, ws, &frame)
		if frame["t"] != "state" {
			t.Errorf("frame = %v", frame)
		}
	}
}

func TestHubRemovesDisconnected(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	ws := dial(t, "ws"+strings.TrimPrefix(srv.URL, "http"))
	waitFor(t, "registration", func() bool { return hub.Count() == 1 })

	ws.Close()
	waitFor(t, "removal", func() bool { return hub.Count() == 0 })

	// Publishing with nobody connected is fine
	if err := hub.Publish(struct{}{}); err != nil {
		t.Errorf("Publish failed: %v", err)
	}
}

func TestPublishEncodeError(t *testing.T) {
	hub := NewHub(nil)
	if err := hub.Publish(make(chan int)); err == nil {
		t.Error("Publish should fail for values JSON cannot encode")
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	hub := NewHub(nil)
	c := &client{id: "slow", send: make(chan []byte, sendBuffer)}
	hub.clients[c.id] = c

	done := make(chan struct{})
	go func() {
		for i := 0; i < sendBuffer*4; i++ {
			hub.Publish(i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
	if len(c.send) != sendBuffer {
		t.Errorf("queue = %d, expected %d", len(c.send), sendBuffer)
	}

	var first int
	json.Unmarshal(<-c.send, &first)
	if first != 0 {
		t.Errorf("first queued frame = %d, expected 0", first)
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- Serve(ctx, addr, hub) }()

	var ws *websocket.Conn
	waitFor(t, "server", func() bool {
		conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+Path, nil)
		if err != nil {
			return false
		}
		ws = conn
		return true
	})
	defer ws.Close()

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"specforge/internal/gateway/events"
	"specforge/internal/gateway/handler"
	projectrepo "specforge/internal/gateway/repository/project"
	"specforge/internal/gateway/server"
	"specforge/internal/llm"
)

func TestWatchReceivesGenerationEvents(t *testing.T) {
	store := projectrepo.NewMemoryStore()
	hub := events.NewHub()
	h := handler.New(store, llm.NewFakeClient(), hub, nil)
	srv := httptest.NewServer(server.Routes(h))
	defer srv.Close()

	created := decode[projectrepo.Project](t, doJSON(t, server.Routes(h), "POST", "/api/projects", map[string]string{"name": "P"}))

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/watch/" + created.ID
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	resp.Body.Close()

	rec := doJSON(t, server.Routes(h), "POST", "/api/projects/"+created.ID+"/generate", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("generate: status %d: %s", rec.Code, rec.Body.String())
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var started, completed events.Event
	if err := conn.ReadJSON(&started); err != nil {
		t.Fatalf("read started: %v", err)
	}
	if started.Type != events.TypeGenerationStarted {
		t.Fatalf("unexpected first event: %+v", started)
	}
	if err := conn.ReadJSON(&completed); err != nil {
		t.Fatalf("read completed: %v", err)
	}
	if completed.Type != events.TypeGenerationCompleted || completed.Version != "1.0.0" {
		t.Fatalf("unexpected second event: %+v", completed)
	}
}

func TestWatchUnknownProject(t *testing.T) {
	mux, _ := newTestMux(t)
	rec := doJSON(t, mux, "GET", "/api/watch/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"postboard/internal/models"
	"postboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", defaultInterval},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=60s", defaultInterval},
		{"interval_ms_too_large", "/ws?interval_ms=60000", defaultInterval},
		{"interval_invalid_string", "/ws?interval=bogus", defaultInterval},
		{"both_present_interval_wins", "/ws?interval=3s&interval_ms=150", 3 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration test ---

func TestWebSocket_Feed_InitialAndPeriodic(t *testing.T) {
	posts := &mockPosts{page: models.PostPage{
		Items: []models.Post{{ID: 2, Title: "T2", Author: "bob"}, {ID: 1, Title: "T1", Author: "alice"}},
		Page:  1, Limit: feedPageSize, Total: 2,
	}}
	s := &service.Service{Posts: posts}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws", h.wsFeed)

	srv := httptest.NewServer(r)
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	q := u.Query()
	q.Set("interval_ms", "20") // fast ticks for the test
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	type envelope struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}

	readEnvelope := func() envelope {
		t.Helper()
		_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			t.Fatalf("read envelope: %v", err)
		}
		return env
	}

	// Initial frame arrives before the first tick.
	env := readEnvelope()
	if env.Type != "feed" || env.Error != "" {
		t.Fatalf("unexpected initial envelope: %+v", env)
	}
	var page models.PostPage
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("unmarshal feed page: %v", err)
	}
	if page.Total != 2 || len(page.Items) != 2 || page.Items[0].ID != 2 {
		t.Fatalf("unexpected feed page: %+v", page)
	}

	// At least one periodic frame follows.
	env = readEnvelope()
	if env.Type != "feed" {
		t.Fatalf("unexpected periodic envelope: %+v", env)
	}

	if posts.pageCalls < 2 {
		t.Fatalf("expected at least 2 feed loads, got %d", posts.pageCalls)
	}
}

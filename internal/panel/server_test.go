package panel

import (
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
	"github.com/Carmen-Shannon/oxy-orrery/internal/controls"
	"github.com/Carmen-Shannon/oxy-orrery/internal/registry"
	"github.com/Carmen-Shannon/oxy-orrery/internal/state"
	"github.com/Carmen-Shannon/oxy-orrery/internal/world"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"golang.org/x/time/rate"
)

// chanPoster queues tasks so the test goroutine can run them, standing in for the frame goroutine.
type chanPoster chan func()

func (p chanPoster) Post(task func()) bool {
	p <- task
	return true
}

type fixture struct {
	poster chanPoster
	speeds *state.OrbitalSpeedTable
	view   *state.GlobalViewState
	panel  *controls.Panel
	server *Server
	http   *httptest.Server
}

func newFixture(t *testing.T, options ...ServerOption) *fixture {
	t.Helper()
	f := &fixture{
		poster: make(chanPoster, 64),
		speeds: state.NewOrbitalSpeedTable(registry.PlanetNames()),
		view:   state.NewGlobalViewState(),
	}
	sc := scene.NewScene("main")
	w := world.BuildWorld(sc, rand.New(rand.NewSource(1)), nil)
	f.panel = controls.BindControls(w, f.speeds, f.view, controls.WithScene(sc))

	options = append([]ServerOption{WithRegistry(prometheus.NewRegistry())}, options...)
	f.server = NewServer(f.poster, f.panel, options...)
	f.server.Publish(f.panel.Snapshot())
	f.http = httptest.NewServer(f.server.Handler())
	t.Cleanup(f.http.Close)
	return f
}

func (f *fixture) dial(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.http.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func (f *fixture) runTask(t *testing.T) {
	t.Helper()
	select {
	case task := <-f.poster:
		task()
	case <-time.After(2 * time.Second):
		t.Fatal("no task posted")
	}
}

func readState(t *testing.T, conn *websocket.Conn) StateMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg StateMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != TypeState {
		t.Fatalf("message type = %q", msg.Type)
	}
	return msg
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not reached")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestServeIndex(t *testing.T) {
	f := newFixture(t)
	resp, err := http.Get(f.http.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		t.Fatalf("status %d, content type %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	if !strings.Contains(string(body), "/ws") || !strings.Contains(string(body), "light") {
		t.Fatal("page should connect to /ws and support the light theme")
	}

	resp, err = http.Get(f.http.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown path status = %d", resp.StatusCode)
	}
}

func TestWebSocketRoundTrip(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t)

	initial := readState(t, conn)
	if len(initial.Controls) != 11 {
		t.Fatalf("controls = %d, want 11", len(initial.Controls))
	}
	waitFor(t, func() bool { return f.server.Clients() == 1 })

	if err := conn.WriteJSON(ClientMessage{Type: TypeSlider, ID: "speed:Earth", Value: 0.02}); err != nil {
		t.Fatal(err)
	}
	f.runTask(t)
	if got := f.speeds.Speed("Earth"); got != 0.02 {
		t.Fatalf("Earth speed = %v, want 0.02", got)
	}

	if err := conn.WriteJSON(ClientMessage{Type: TypePause}); err != nil {
		t.Fatal(err)
	}
	f.runTask(t)
	if !f.view.Paused() {
		t.Fatal("pause message not applied")
	}

	f.server.Publish(f.panel.Snapshot())
	updated := readState(t, conn)
	var earth, pause controls.ControlState
	for _, c := range updated.Controls {
		switch c.ID {
		case "speed:Earth":
			earth = c
		case controls.PauseID:
			pause = c
		}
	}
	if earth.Value != 0.02 || pause.Label != controls.ResumeLabel {
		t.Fatalf("snapshot not updated: earth=%+v pause=%+v", earth, pause)
	}

	ok := f.server.metrics.messages.WithLabelValues(TypeSlider, ResultOK)
	if testutil.ToFloat64(ok) != 1 {
		t.Fatalf("ok slider messages = %v", testutil.ToFloat64(ok))
	}

	conn.Close()
	waitFor(t, func() bool { return f.server.Clients() == 0 })
}

func TestRateLimit(t *testing.T) {
	f := newFixture(t, WithRateLimit(rate.Every(time.Hour), 2))
	conn := f.dial(t)
	readState(t, conn)

	for range 5 {
		if err := conn.WriteJSON(ClientMessage{Type: TypeTheme}); err != nil {
			t.Fatal(err)
		}
	}

	limited := f.server.metrics.messages.WithLabelValues(TypeTheme, ResultLimited)
	waitFor(t, func() bool { return testutil.ToFloat64(limited) == 3 })
	if len(f.poster) != 2 {
		t.Fatalf("posted = %d, want 2", len(f.poster))
	}
}

func TestInvalidMessages(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t)
	readState(t, conn)

	conn.WriteJSON(ClientMessage{Type: "launch"})
	conn.WriteJSON(ClientMessage{Type: TypeSlider, ID: "speed:Pluto", Value: 1})
	conn.WriteJSON(ClientMessage{Type: TypeSlider, ID: controls.PauseID, Value: 1})
	conn.WriteMessage(websocket.TextMessage, []byte("{not json"))
	conn.WriteMessage(websocket.TextMessage, []byte(""))

	waitFor(t, func() bool {
		return testutil.ToFloat64(f.server.metrics.messages.WithLabelValues("unknown", ResultInvalid)) == 3 &&
			testutil.ToFloat64(f.server.metrics.messages.WithLabelValues(TypeSlider, ResultInvalid)) == 2
	})
	if len(f.poster) != 0 {
		t.Fatal("invalid messages should not be posted")
	}
	if ok := testutil.ToFloat64(f.server.metrics.messages.WithLabelValues(TypeSlider, ResultOK)); ok != 0 {
		t.Fatalf("ok slider messages = %v, want 0", ok)
	}

	// the connection survives invalid input
	if err := conn.WriteJSON(ClientMessage{Type: TypeTheme}); err != nil {
		t.Fatal(err)
	}
	f.runTask(t)
	if !f.view.LightTheme() {
		t.Fatal("theme message after invalid input not applied")
	}
	if f.server.Clients() != 1 {
		t.Fatalf("clients = %d, want 1", f.server.Clients())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.dial(t)
	waitFor(t, func() bool { return f.server.Clients() == 1 })

	resp, err := http.Get(f.http.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "orrery_panel_clients 1") {
		t.Fatalf("metrics missing client gauge:\n%s", body)
	}
}

func TestSameHostOrigin(t *testing.T) {
	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://127.0.0.1:8080", true},
		{"http://evil.example", false},
		{"::bad", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "http://127.0.0.1:8080/ws", nil)
		if tt.origin != "" {
			r.Header.Set("Origin", tt.origin)
		}
		if got := sameHostOrigin(r); got != tt.want {
			t.Fatalf("origin %q: got %v, want %v", tt.origin, got, tt.want)
		}
	}
}

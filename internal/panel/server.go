// Package panel serves the browser control panel: an HTML page, a WebSocket carrying
// control changes both ways, and the Prometheus metrics endpoint.
package panel

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-orrery/internal/controls"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

//go:embed index.html
var indexHTML []byte

// Defaults for the server.
const (
	DefaultAddr      = "127.0.0.1:8080"
	DefaultRateLimit = 30
	DefaultRateBurst = 60
	clientSendBuffer = 16
	writeTimeout     = 5 * time.Second
	shutdownTimeout  = 2 * time.Second
	maxMessageBytes  = 4096
)

// Poster hands work to the goroutine that owns the controls.
type Poster interface {
	Post(task func()) bool
}

// Server is the web control panel. Inbound messages are posted to the frame goroutine;
// snapshots come back through Publish.
type Server struct {
	addr     string
	poster   Poster
	controls *controls.Panel

	limit rate.Limit
	burst int

	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
	metrics    *metrics

	upgrader websocket.Upgrader

	mu      *sync.Mutex
	clients map[*client]struct{}
	latest  []byte

	httpServer *http.Server
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewServer creates the panel server. It does not listen until ListenAndServe.
//
// Parameters:
//   - poster: where control changes are posted
//   - ctrls: the bound controls
//   - options: functional options
//
// Returns:
//   - *Server: the server
func NewServer(poster Poster, ctrls *controls.Panel, options ...ServerOption) *Server {
	s := &Server{
		addr:       DefaultAddr,
		poster:     poster,
		controls:   ctrls,
		limit:      DefaultRateLimit,
		burst:      DefaultRateBurst,
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
		mu:         &sync.Mutex{},
		clients:    make(map[*client]struct{}),
	}
	for _, opt := range options {
		opt(s)
	}
	s.metrics = newMetrics(s.registerer)
	s.upgrader = websocket.Upgrader{
		CheckOrigin: sameHostOrigin,
	}
	return s
}

// Handler returns the HTTP routes: / (page), /ws (controls) and /metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.serveIndex)
	mux.HandleFunc("GET /ws", s.serveWebSocket)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return mux
}

// ListenAndServe serves until ctx is cancelled.
//
// Parameters:
//   - ctx: cancelling it shuts the server down
//
// Returns:
//   - error: the listen error, or nil after a clean shutdown
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("panel listen on %s: %w", s.addr, err)
	}
	log.Printf("[Panel] serving on http://%s", ln.Addr())

	s.httpServer = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
		s.closeClients()
	}()

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("panel serve: %w", err)
	}
	return nil
}

// Publish broadcasts a control snapshot to every client. Clients that are too slow to keep
// up miss the update and get the next one. Safe to call from any goroutine.
//
// Parameters:
//   - snapshot: the control states
func (s *Server) Publish(snapshot []controls.ControlState) {
	data, err := json.Marshal(StateMessage{Type: TypeState, Controls: snapshot})
	if err != nil {
		log.Printf("[Panel] encode snapshot: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = data
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) serveIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) serveWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Panel] websocket upgrade: %v", err)
		return
	}
	conn.SetReadLimit(maxMessageBytes)

	c := &client{conn: conn, send: make(chan []byte, clientSendBuffer)}
	s.addClient(c)
	defer s.removeClient(c)

	done := make(chan struct{})
	go s.writeLoop(c, done)
	defer close(done)

	s.readLoop(c)
}

func (s *Server) addClient(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c] = struct{}{}
	if s.latest != nil {
		c.send <- s.latest
	}
	s.metrics.clients.Inc()
}

func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; !ok {
		return
	}
	delete(s.clients, c)
	c.conn.Close()
	s.metrics.clients.Dec()
}

func (s *Server) closeClients() {
	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()
	for _, c := range clients {
		s.removeClient(c)
	}
}

func (s *Server) writeLoop(c *client, done <-chan struct{}) {
	for {
		select {
		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.conn.Close()
				return
			}
		case <-done:
			return
		}
	}
}

func (s *Server) readLoop(c *client) {
	limiter := rate.NewLimiter(s.limit, s.burst)
	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			// an empty text frame decodes as io.ErrUnexpectedEOF
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
				s.metrics.messages.WithLabelValues("unknown", ResultInvalid).Inc()
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[Panel] websocket read: %v", err)
			}
			return
		}

		if !limiter.Allow() {
			s.metrics.messages.WithLabelValues(messageLabel(msg.Type), ResultLimited).Inc()
			continue
		}
		s.metrics.messages.WithLabelValues(messageLabel(msg.Type), s.dispatch(msg)).Inc()
	}
}

// dispatch posts msg to the frame goroutine and reports the outcome label.
func (s *Server) dispatch(msg ClientMessage) string {
	var task func()
	switch msg.Type {
	case TypeSlider:
		c, _ := s.controls.Control(msg.ID)
		if _, ok := c.(*controls.Slider); !ok {
			return ResultInvalid
		}
		id, v := msg.ID, msg.Value
		task = func() {
			if err := s.controls.SetSlider(id, v); err != nil {
				log.Printf("[Panel] %v", err)
			}
		}
	case TypePause:
		task = s.pressTask(controls.PauseID)
	case TypeTheme:
		task = s.pressTask(controls.ThemeID)
	default:
		return ResultInvalid
	}
	if !s.poster.Post(task) {
		return ResultInvalid
	}
	return ResultOK
}

func (s *Server) pressTask(id string) func() {
	return func() {
		if err := s.controls.PressButton(id); err != nil {
			log.Printf("[Panel] %v", err)
		}
	}
}

func messageLabel(t string) string {
	switch t {
	case TypeSlider, TypePause, TypeTheme:
		return t
	}
	return "unknown"
}

// sameHostOrigin accepts requests without an Origin header and those whose origin host
// matches the request host.
func sameHostOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

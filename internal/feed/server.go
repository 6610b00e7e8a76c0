package feed

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/chalkline-games/repquest/internal/config"
	"github.com/chalkline-games/repquest/internal/logger"
)

// Server accepts WebSocket feed clients and hands them to the hub.
type Server struct {
	config      config.FeedConfig
	hub         *Hub
	connLimiter *ConnLimiter
	httpServer  *http.Server
}

// NewServer creates a feed server for the given hub.
func NewServer(cfg config.FeedConfig, hub *Hub) *Server {
	s := &Server{
		config:      cfg,
		hub:         hub,
		connLimiter: NewConnLimiter(cfg),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/feed", s.handleUpgrade)
	s.httpServer = &http.Server{Addr: cfg.Addr, Handler: mux}

	return s
}

// Start listens on the configured address until Shutdown. Blocks, so
// callers run it on its own goroutine.
func (s *Server) Start() error {
	logger.Info("Feed server listening", "address", s.config.Addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops accepting clients and disconnects the current ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.httpServer.Shutdown(ctx)
}

// handleUpgrade upgrades an HTTP connection to a feed WebSocket.
func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	clientIP := getRealIP(r)

	if !s.connLimiter.TryAcquire(clientIP) {
		logger.Warning("Feed connection rejected - limit exceeded",
			"remote_addr", r.RemoteAddr,
			"client_ip", clientIP)
		http.Error(w, "Too many connections. Please try again later.", http.StatusTooManyRequests)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			allowed := s.config.IsOriginAllowed(origin, r.Host)
			if !allowed {
				logger.Warning("Feed connection rejected - origin not allowed",
					"origin", origin,
					"host", r.Host,
					"remote_addr", r.RemoteAddr)
			}
			return allowed
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Feed upgrade failed", "error", err)
		s.connLimiter.Release(clientIP)
		return
	}

	logger.Info("Feed client connected", "remote_addr", conn.RemoteAddr().String())
	s.hub.register(conn, func() {
		s.connLimiter.Release(clientIP)
		logger.Info("Feed client disconnected", "client_ip", clientIP)
	})
}

// getRealIP extracts the client IP, preferring the X-Forwarded-For and
// X-Real-IP headers set by reverse proxies.
func getRealIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			clientIP := strings.TrimSpace(ips[0])
			if clientIP != "" {
				return clientIP
			}
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	return extractIP(r.RemoteAddr)
}

package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/9910597111/BlindSketch/internal/game"
	"github.com/9910597111/BlindSketch/internal/websockets"
)

type Server struct {
	port           int
	allowedOrigins []string

	registry *game.Registry
	hub      *websockets.Hub
}

// NewServer builds the HTTP server from the environment: PORT (default
// 3001) and ALLOWED_ORIGINS (comma separated; empty means any origin).
func NewServer(registry *game.Registry, hub *websockets.Hub) *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 3001
	}

	var origins []string
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	s := &Server{
		port:           port,
		allowedOrigins: origins,
		registry:       registry,
		hub:            hub,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

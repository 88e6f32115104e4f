package server

import (
	"fmt"
	"net/http"
	"time"

	"astro-booking/internal/config"
	"astro-booking/internal/database"
	"astro-booking/internal/nasa"
)

type Server struct {
	port        int
	db          database.Service
	feed        *nasa.Client
	limiter     *visitorLimiter
	behindProxy bool

	countdownInterval time.Duration
	now               func() time.Time
}

// NewServer wires the API onto an http.Server listening on cfg.Port.
func NewServer(cfg config.Config, db database.Service, feed *nasa.Client) *http.Server {
	s := &Server{
		port:              cfg.Port,
		db:                db,
		feed:              feed,
		limiter:           newVisitorLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.RateLimitIdle),
		behindProxy:       cfg.BehindProxy,
		countdownInterval: cfg.CountdownInterval,
		now:               time.Now,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second, // countdown streams clear their own deadline
	}
}

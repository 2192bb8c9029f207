// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter is a fixed-window limiter keyed by client IP. Every response
// carries the standard RateLimit-* headers; exhausted clients get 429 with
// Retry-After until their window rolls over.
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	clients map[string]*windowCount
}

type windowCount struct {
	start time.Time
	count int
}

// NewRateLimiter returns a limiter allowing limit requests per window per
// client.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		clients: make(map[string]*windowCount),
	}
}

// pruneThreshold bounds the client map; expired windows are dropped once the
// map grows past it.
const pruneThreshold = 4096

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := GetClientIP(r)

		rl.mu.Lock()
		now := rl.now()
		wc := rl.clients[ip]
		if wc == nil || now.Sub(wc.start) >= rl.window {
			if len(rl.clients) >= pruneThreshold {
				rl.pruneLocked(now)
			}
			wc = &windowCount{start: now}
			rl.clients[ip] = wc
		}
		wc.count++
		count := wc.count
		reset := wc.start.Add(rl.window).Sub(now)
		rl.mu.Unlock()

		remaining := rl.limit - count
		if remaining < 0 {
			remaining = 0
		}
		resetSecs := int(reset.Round(time.Second).Seconds())
		if resetSecs < 1 {
			resetSecs = 1
		}

		h := w.Header()
		h.Set("RateLimit-Limit", strconv.Itoa(rl.limit))
		h.Set("RateLimit-Remaining", strconv.Itoa(remaining))
		h.Set("RateLimit-Reset", strconv.Itoa(resetSecs))

		if count > rl.limit {
			h.Set("Retry-After", strconv.Itoa(resetSecs))
			ErrorResponse(w, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) pruneLocked(now time.Time) {
	for ip, wc := range rl.clients {
		if now.Sub(wc.start) >= rl.window {
			delete(rl.clients, ip)
		}
	}
}

package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// KeyFunc define o "balde" de cada requisição
type KeyFunc func(c *gin.Context) string

// GlobalKey um único balde para todo o processo
func GlobalKey(*gin.Context) string { return "global" }

// ClientIPKey um balde por IP
func ClientIPKey(c *gin.Context) string { return c.ClientIP() }

// RateLimit janela deslizante: no máximo maxRequests por window em cada balde,
// excedendo responde 429.
func RateLimit(maxRequests int, window time.Duration, key KeyFunc, message string) gin.HandlerFunc {
	type entry struct {
		timestamps []time.Time
	}
	var (
		mu        sync.Mutex
		store     = make(map[string]*entry)
		lastSweep = time.Now()
	)
	// remove baldes vazios; chamado com mu travado
	sweep := func(now time.Time) {
		if now.Sub(lastSweep) < window {
			return
		}
		lastSweep = now
		cutoff := now.Add(-window)
		for k, e := range store {
			e.timestamps = prune(e.timestamps, cutoff)
			if len(e.timestamps) == 0 {
				delete(store, k)
			}
		}
	}

	return func(c *gin.Context) {
		k := key(c)
		now := time.Now()
		mu.Lock()
		sweep(now)
		e, ok := store[k]
		if !ok {
			e = &entry{}
			store[k] = e
		}
		e.timestamps = prune(e.timestamps, now.Add(-window))
		if len(e.timestamps) >= maxRequests {
			retryAfter := e.timestamps[0].Add(window).Sub(now)
			mu.Unlock()
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": message})
			return
		}
		e.timestamps = append(e.timestamps, now)
		remaining := maxRequests - len(e.timestamps)
		mu.Unlock()

		c.Header("RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("RateLimit-Remaining", strconv.Itoa(remaining))
		c.Next()
	}
}

// GlobalRateLimit limite compartilhado por todos os clientes
func GlobalRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return RateLimit(maxRequests, window, GlobalKey, "Muitas requisições, tente novamente mais tarde")
}

// LoginRateLimit limite de tentativas de login por IP
func LoginRateLimit(maxAttempts int, window time.Duration) gin.HandlerFunc {
	return RateLimit(maxAttempts, window, ClientIPKey, "Muitas tentativas de login, tente novamente mais tarde")
}

func prune(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

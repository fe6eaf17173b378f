package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/maryamazeem12/websitelive/internal/http/respond"
)

// Logging records one line per request. It also recovers anything that
// panics below it and turns it into a 500, so a misbehaving handler never
// takes the listener down.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				respond.Error(w, http.StatusInternalServerError, "internal server error")
				return
			}
			log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Truncate(time.Millisecond))
		}()
		next.ServeHTTP(w, r)
	})
}

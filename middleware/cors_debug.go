package middleware

import (
	"log"
	"net/http"
	"os"
)

// CORSDebugMiddleware logs origin/method details for cross-origin requests
// when CORS_DEBUG is set. It runs ahead of the CORS handler so rejected
// preflights still show up in the log.
func CORSDebugMiddleware(next http.Handler) http.Handler {
	enabled := os.Getenv("CORS_DEBUG") != ""
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if enabled && r.Header.Get("Origin") != "" {
			log.Printf("[CORS Debug] %s %s from Origin: %s", r.Method, r.URL.Path, r.Header.Get("Origin"))
			if r.Method == http.MethodOptions {
				log.Printf("[CORS Debug] Preflight requesting method %s headers %s",
					r.Header.Get("Access-Control-Request-Method"),
					r.Header.Get("Access-Control-Request-Headers"))
			}
		}
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net/http"
	"os"
	"strings"
)

// allowedOrigins is the CORS allow-list for the dataset server. The feed is
// public read-only data, so the default is permissive; WARN_CORS_ORIGINS
// (comma-separated) locks it down for deployments that embed the feed.
func allowedOrigins() map[string]struct{} {
	raw := os.Getenv("WARN_CORS_ORIGINS")
	if raw == "" {
		return nil
	}
	out := map[string]struct{}{}
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out[o] = struct{}{}
		}
	}
	return out
}

func CORSMiddleware(next http.Handler) http.Handler {
	allowed := allowedOrigins()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		permitted := allowed == nil && origin != ""
		if _, ok := allowed[origin]; ok {
			permitted = true
		}
		if permitted {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin") // important for caches
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

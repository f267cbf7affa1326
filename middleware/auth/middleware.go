package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/kokumai1113/task-app/config"
)

// Middleware creates HTTP middleware enforcing basic authentication.
// A nil or incomplete config yields a no-op middleware. Exempt paths
// are matched exactly and always pass through, so health probes keep
// working without credentials.
func Middleware(cfg *config.AuthConfig, exempt ...string) func(http.Handler) http.Handler {
	if !cfg.Enabled() {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	exemptPaths := make(map[string]struct{}, len(exempt))
	for _, path := range exempt {
		exemptPaths[path] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			username, password, ok := r.BasicAuth()
			if !ok || !credentialsMatch(cfg, username, password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="taskapp", charset="UTF-8"`)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// credentialsMatch compares both values in constant time to prevent
// timing attacks
func credentialsMatch(cfg *config.AuthConfig, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.BasicAuthUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.BasicAuthPass)) == 1
	return userOK && passOK
}
